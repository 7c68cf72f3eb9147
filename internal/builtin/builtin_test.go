package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuukka/go-alisp/internal/value"
)

func TestInvokeChecksArity(t *testing.T) {
	b := &Builtin{
		Name:    "add1",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(c *Call) (value.Value, error) {
			n, err := c.Int(0)
			if err != nil {
				return nil, err
			}
			return value.Integer(n + 1), nil
		},
	}

	_, err := b.Invoke(nil)
	assert.Error(t, err)

	_, err = b.Invoke([]value.Value{value.Integer(1), value.Integer(2)})
	assert.Error(t, err)

	v, err := b.Invoke([]value.Value{value.Integer(41)})
	require.NoError(t, err)
	n, err := value.AsInt(v)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestCallTypedAccessorsReportWrongType(t *testing.T) {
	b := &Builtin{
		Name:    "car",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(c *Call) (value.Value, error) {
			cons, err := c.Cons(0)
			if err != nil {
				return nil, err
			}
			return cons.Car, nil
		},
	}

	_, err := b.Invoke([]value.Value{value.Integer(5)})
	assert.Error(t, err)
}

func TestUnboundedMaxArgs(t *testing.T) {
	b := &Builtin{
		Name:    "list",
		MinArgs: 0,
		MaxArgs: -1,
		Fn: func(c *Call) (value.Value, error) {
			args := make([]value.Value, c.Len())
			for i := range args {
				args[i] = c.Arg(i)
			}
			return value.List(args...), nil
		},
	}
	v, err := b.Invoke([]value.Value{value.Integer(1), value.Integer(2), value.Integer(3), value.Integer(4)})
	require.NoError(t, err)
	elems, ok := value.ToSlice(v)
	require.True(t, ok)
	assert.Len(t, elems, 4)
}

func TestRegistryInstallSetsFunctionSlot(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&Builtin{
		Name:    "double",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(c *Call) (value.Value, error) {
			n, err := c.Int(0)
			if err != nil {
				return nil, err
			}
			return value.Integer(n * 2), nil
		},
	})

	table := &fakeInstaller{symbols: map[string]*value.Symbol{}}
	reg.Install(table)

	sym := table.symbols["double"]
	require.NotNil(t, sym)
	fn := sym.Function()
	require.NotNil(t, fn)
	out, err := fn.Native([]value.Value{value.Integer(21)})
	require.NoError(t, err)
	n, err := value.AsInt(out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

type fakeInstaller struct {
	symbols map[string]*value.Symbol
}

func (f *fakeInstaller) Intern(name string) *value.Symbol {
	if s, ok := f.symbols[name]; ok {
		return s
	}
	s := value.NewSymbol(name)
	f.symbols[name] = s
	return s
}
