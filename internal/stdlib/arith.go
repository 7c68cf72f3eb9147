package stdlib

import (
	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// numericFold accumulates both an int64 and a float64 running total in
// parallel across every argument, exactly as original_source's +/* do
// (MathFunctions.cpp), and reports which total to trust at the end: the
// float one if any argument was a float (§9's mixed-arithmetic
// contagion rule), the int one otherwise.
func numericFold(c *builtin.Call, start int64, combineInt func(acc, v int64) int64, combineFloat func(acc, v float64) float64) (value.Value, error) {
	isum := start
	fsum := float64(start)
	fp := false
	for i := 0; i < c.Len(); i++ {
		f, wasFloat, err := c.Number(i)
		if err != nil {
			return nil, err
		}
		if wasFloat {
			fp = true
		}
		isum = combineInt(isum, int64(f))
		fsum = combineFloat(fsum, f)
	}
	if fp {
		return value.Float(fsum), nil
	}
	return value.Integer(isum), nil
}

func addArithmetic(reg *builtin.Registry, trueVal value.Value) {
	reg.Add(&builtin.Builtin{Name: "+", MinArgs: 0, MaxArgs: -1, Fn: func(c *builtin.Call) (value.Value, error) {
		return numericFold(c, 0,
			func(acc, v int64) int64 { return acc + v },
			func(acc, v float64) float64 { return acc + v })
	}})
	reg.Add(&builtin.Builtin{Name: "*", MinArgs: 0, MaxArgs: -1, Fn: func(c *builtin.Call) (value.Value, error) {
		return numericFold(c, 1,
			func(acc, v int64) int64 { return acc * v },
			func(acc, v float64) float64 { return acc * v })
	}})
	reg.Add(&builtin.Builtin{Name: "-", MinArgs: 0, MaxArgs: -1, Fn: subtract})
	reg.Add(&builtin.Builtin{Name: "/", MinArgs: 1, MaxArgs: -1, Fn: divide})
	reg.Add(&builtin.Builtin{Name: "%", MinArgs: 2, MaxArgs: 2, Fn: modulo})
	reg.Add(&builtin.Builtin{Name: "1+", MinArgs: 1, MaxArgs: 1, Fn: oneStep(1)})
	reg.Add(&builtin.Builtin{Name: "1-", MinArgs: 1, MaxArgs: 1, Fn: oneStep(-1)})
	reg.Add(&builtin.Builtin{Name: "=", MinArgs: 1, MaxArgs: -1, Fn: numericEqual(trueVal)})
}

// subtract has no original_source counterpart (it defines + * / % but
// never -); it follows the same dual int64/float64 accumulation style,
// negating a lone argument and otherwise subtracting every argument
// after the first from it.
func subtract(c *builtin.Call) (value.Value, error) {
	f0, wasFloat0, err := c.Number(0)
	if err != nil {
		return nil, err
	}
	if c.Len() == 1 {
		if wasFloat0 {
			return value.Float(-f0), nil
		}
		return value.Integer(-int64(f0)), nil
	}
	isum := int64(f0)
	fsum := f0
	fp := wasFloat0
	for i := 1; i < c.Len(); i++ {
		f, wasFloat, err := c.Number(i)
		if err != nil {
			return nil, err
		}
		if wasFloat {
			fp = true
		}
		isum -= int64(f)
		fsum -= f
	}
	if fp {
		return value.Float(fsum), nil
	}
	return value.Integer(isum), nil
}

// divide ports MathFunctions.cpp's "/" exactly: the first argument
// primes both accumulators, every argument after it divides in, and a
// zero divisor of either type raises ArithError before the divide runs.
func divide(c *builtin.Call) (value.Value, error) {
	var isum int64
	var fsum float64
	fp := false
	for i := 0; i < c.Len(); i++ {
		f, wasFloat, err := c.Number(i)
		if err != nil {
			return nil, err
		}
		if wasFloat {
			if i > 0 && f == 0 {
				return nil, lerrors.NewArithError("Division by zero")
			}
			fp = true
		} else if i > 0 && int64(f) == 0 {
			return nil, lerrors.NewArithError("Division by zero")
		}
		if i == 0 {
			isum = int64(f)
			fsum = f
			continue
		}
		isum /= int64(f)
		fsum /= f
	}
	if fp {
		return value.Float(fsum), nil
	}
	return value.Integer(isum), nil
}

// modulo requires both arguments to be integers (§9); it is not
// variadic, matching MathFunctions.cpp's two-argument "%".
func modulo(c *builtin.Call) (value.Value, error) {
	a, err := c.Int(0)
	if err != nil {
		return nil, err
	}
	b, err := c.Int(1)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, lerrors.NewArithError("Division by zero")
	}
	return value.Integer(a % b), nil
}

func oneStep(delta int64) func(c *builtin.Call) (value.Value, error) {
	return func(c *builtin.Call) (value.Value, error) {
		f, wasFloat, err := c.Number(0)
		if err != nil {
			return nil, err
		}
		if wasFloat {
			return value.Float(f + float64(delta)), nil
		}
		return value.Integer(int64(f) + delta), nil
	}
}

// numericEqual checks every argument against the one before it, which
// original_source's "=" does too (MathFunctions.cpp): transitively that
// is exactly "all arguments numerically equal".
func numericEqual(trueVal value.Value) func(c *builtin.Call) (value.Value, error) {
	return func(c *builtin.Call) (value.Value, error) {
		var prev float64
		for i := 0; i < c.Len(); i++ {
			f, _, err := c.Number(i)
			if err != nil {
				return nil, err
			}
			if i > 0 && f != prev {
				return value.Nil, nil
			}
			prev = f
		}
		return trueVal, nil
	}
}
