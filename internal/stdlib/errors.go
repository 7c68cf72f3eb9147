package stdlib

import (
	"fmt"
	"strings"

	"github.com/akuukka/go-alisp/internal/builtin"
	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// MessageSink is message's pluggable output target, ported from
// Machine.cpp's m_msgHandler: printing to stdout is just the default
// when nothing else has been wired up. The Machine facade swaps Handler
// in for SetMessageHandler (§6); stdlib has no notion of a REPL or a
// terminal of its own.
type MessageSink struct {
	Handler func(string)
}

func (s *MessageSink) emit(str string) {
	if s.Handler != nil {
		s.Handler(str)
		return
	}
	fmt.Println(str)
}

// addErrorFunctions ports Error.cpp's signal and Machine.cpp's message,
// directive handling included: %s and %d each consume one further
// argument in order, %% writes a literal %, and an unknown directive or
// an argument of the wrong type for its directive raises Error.
func addErrorFunctions(reg *builtin.Registry, sink *MessageSink) {
	reg.Add(&builtin.Builtin{Name: "signal", MinArgs: 2, MaxArgs: 2, Fn: func(c *builtin.Call) (value.Value, error) {
		sym, err := c.Sym(0)
		if err != nil {
			return nil, err
		}
		data := c.Arg(1)
		return nil, lerrors.NewSignaled(sym, data, signalMessage(sym, data))
	}})
	reg.Add(&builtin.Builtin{Name: "message", MinArgs: 1, MaxArgs: -1, Fn: func(c *builtin.Call) (value.Value, error) {
		format, err := c.String(0)
		if err != nil {
			return nil, err
		}
		str, err := expandMessage(format.String(), c)
		if err != nil {
			return nil, err
		}
		sink.emit(str)
		return value.NewString(str), nil
	}})
}

// signalMessage derives the display text for (signal sym data): the
// first string in data, if data is a list whose car is a string, else
// sym's own name (§7's printed-error rule).
func signalMessage(sym *value.Symbol, data value.Value) string {
	if cell, ok := data.(*value.Cons); ok {
		if s, ok := cell.Car.(*value.StringObj); ok {
			return s.String()
		}
	}
	return sym.Name()
}

// expandMessage walks format looking for % directives, consuming one
// argument from c (starting at index 1) per %s or %d, mirroring
// Machine.cpp's character-by-character scan exactly.
func expandMessage(format string, c *builtin.Call) (string, error) {
	var b strings.Builder
	argIdx := 1
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '%' {
			b.WriteRune(ch)
			continue
		}
		if i+1 >= len(runes) {
			return "", lerrors.NewError("Invalid format string")
		}
		switch runes[i+1] {
		case '%':
			b.WriteRune('%')
			i++
		case 's':
			s, err := c.String(argIdx)
			if err != nil {
				return "", lerrors.NewError("Format specifier doesn't match argument type")
			}
			argIdx++
			b.WriteString(s.String())
			i++
		case 'd':
			f, _, err := c.Number(argIdx)
			if err != nil {
				return "", lerrors.NewError("Format specifier doesn't match argument type")
			}
			argIdx++
			b.WriteString(fmt.Sprintf("%d", int64(f)))
			i++
		default:
			return "", lerrors.NewError("Invalid format string")
		}
	}
	return b.String(), nil
}
