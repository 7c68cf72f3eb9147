package stdlib

import (
	"strings"

	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// addStringFunctions ports StringFunctions.cpp's concat/substring,
// generalized to concat's full variadic form (original only takes two
// strings) and substring's negative-index wraparound.
func addStringFunctions(reg *builtin.Registry) {
	reg.Add(&builtin.Builtin{Name: "concat", MinArgs: 0, MaxArgs: -1, Fn: func(c *builtin.Call) (value.Value, error) {
		var b strings.Builder
		for i := 0; i < c.Len(); i++ {
			s, err := c.String(i)
			if err != nil {
				return nil, err
			}
			b.WriteString(s.String())
		}
		return value.NewString(b.String()), nil
	}})
	reg.Add(&builtin.Builtin{Name: "substring", MinArgs: 1, MaxArgs: 3, Fn: substring})
	reg.Add(&builtin.Builtin{Name: "string", MinArgs: 0, MaxArgs: -1, Fn: func(c *builtin.Call) (value.Value, error) {
		runes := make([]rune, c.Len())
		for i := range runes {
			r, err := c.Character(i)
			if err != nil {
				return nil, err
			}
			runes[i] = r
		}
		return value.NewString(string(runes)), nil
	}})
	reg.Add(&builtin.Builtin{Name: "make-string", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		n, err := c.Int(0)
		if err != nil {
			return nil, err
		}
		r, err := c.Character(1)
		if err != nil {
			return nil, err
		}
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = r
		}
		return value.NewString(string(runes)), nil
	}})
}

// substring mirrors StringFunctions.cpp's wraparound rule: a negative
// start or end counts back from the string's length.
func substring(c *builtin.Call) (value.Value, error) {
	s, err := c.String(0)
	if err != nil {
		return nil, err
	}
	runes := s.Runes
	n := len(runes)

	start := 0
	if c.Has(1) {
		i, err := c.Int(1)
		if err != nil {
			return nil, err
		}
		start = int(i)
		if start < 0 {
			start += n
		}
	}
	end := n
	if c.Has(2) {
		i, err := c.Int(2)
		if err != nil {
			return nil, err
		}
		end = int(i)
		if end < 0 {
			end += n
		}
	}
	if start < 0 || end > n || start > end {
		return nil, lerrors.NewError("Index out of range.")
	}
	return value.NewString(string(runes[start:end])), nil
}
