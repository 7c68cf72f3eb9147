// Package reader turns source text into value.Value forms, implementing
// the grammar of SPEC_FULL.md §4.C: atoms, lists (proper and dotted),
// quote sugar, strings and character literals. It performs no symbol
// interning of its own; a bare name becomes an uninterned symbol
// reference that the evaluator resolves against a symtab.Table by name
// (§4.D), so that two reads of the same name do not collide unless the
// evaluator makes them so.
package reader

import (
	"strings"
	"unicode/utf8"

	"github.com/akuukka/go-alisp/internal/lerrors"
	"github.com/akuukka/go-alisp/internal/value"
)

// nameChars is the character class a bare atom token is read from. It
// intentionally includes '.', '?', '+', '-', '=', '*', '/' and '%' so
// that both ordinary identifiers (1+, string=, *scratch*) and the
// special single-character forms (the dotted-pair marker, character
// literals) fall out of the same maximal-munch scan.
func isNameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '.', '+', '-', '=', '*', '/', '%', '?', '!', '_', '<', '>', '&', ':':
		return true
	}
	return false
}

// Reader scans one rune stream and yields successive top-level forms.
type Reader struct {
	runes []rune
	pos   int
}

// New builds a Reader over src.
func New(src string) *Reader {
	return &Reader{runes: []rune(src)}
}

func (r *Reader) eof() bool { return r.pos >= len(r.runes) }

func (r *Reader) peek() rune {
	if r.eof() {
		return 0
	}
	return r.runes[r.pos]
}

func (r *Reader) advance() rune {
	c := r.runes[r.pos]
	r.pos++
	return c
}

func (r *Reader) skipWS() {
	for !r.eof() {
		c := r.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.advance()
		case c == ';':
			for !r.eof() && r.peek() != '\n' {
				r.advance()
			}
		default:
			return
		}
	}
}

// ReadForm reads the next top-level form, returning ok=false at end of
// input with no remaining non-whitespace text.
func (r *Reader) ReadForm() (v value.Value, ok bool, err error) {
	r.skipWS()
	if r.eof() {
		return nil, false, nil
	}
	v, err = r.readExpr()
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// ReadAll reads every top-level form in the source. Per §4.C, a source
// holding exactly one form yields it bare; a source holding more than
// one is wrapped in an implicit (progn form1 form2 ...), matching the
// "load a whole buffer as one body" behavior original_source treats
// the top level with.
func ReadAll(src string) (value.Value, error) {
	r := New(src)
	var forms []value.Value
	for {
		v, ok, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		forms = append(forms, v)
	}
	if len(forms) == 0 {
		return value.Nil, nil
	}
	if len(forms) == 1 {
		return forms[0], nil
	}
	prognSym := value.Value(NewUninternedSymbol("progn"))
	return value.List(append([]value.Value{prognSym}, forms...)...), nil
}

func (r *Reader) readExpr() (value.Value, error) {
	r.skipWS()
	if r.eof() {
		return nil, lerrors.NewSyntaxError("unexpected end of input")
	}
	switch r.peek() {
	case '(':
		return r.readList()
	case '\'':
		r.advance()
		inner, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		return value.List(value.Value(NewUninternedSymbol("quote")), inner), nil
	case '"':
		return r.readString()
	case ')':
		return nil, lerrors.NewSyntaxError("unexpected )")
	default:
		tok, err := r.readNameToken()
		if err != nil {
			return nil, err
		}
		return classify(tok)
	}
}

// readNameToken performs the maximal-munch scan over isNameChar.
func (r *Reader) readNameToken() (string, error) {
	start := r.pos
	for !r.eof() && isNameChar(r.peek()) {
		r.advance()
	}
	if r.pos == start {
		return "", lerrors.NewSyntaxError("unexpected character %q", string(r.peek()))
	}
	return string(r.runes[start:r.pos]), nil
}

// readList consumes the already-peeked '(' and everything up to and
// including the matching ')'. It detects the dotted-pair marker by
// reading each element's leading token generically and recognizing the
// single-character token "." only once at least one element has
// already been read, per §4.C's "a complete form is expected" rule.
func (r *Reader) readList() (value.Value, error) {
	r.advance() // '('
	var elems []value.Value
	for {
		r.skipWS()
		if r.eof() {
			return nil, lerrors.NewSyntaxError("unclosed list")
		}
		if r.peek() == ')' {
			r.advance()
			return value.List(elems...), nil
		}

		switch r.peek() {
		case '(':
			e, err := r.readList()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		case '\'':
			r.advance()
			inner, err := r.readExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, value.List(value.Value(NewUninternedSymbol("quote")), inner))
		case '"':
			e, err := r.readString()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		default:
			tok, err := r.readNameToken()
			if err != nil {
				return nil, err
			}
			if tok == "." && len(elems) > 0 {
				r.skipWS()
				if r.eof() {
					return nil, lerrors.NewSyntaxError("malformed dotted list")
				}
				tail, err := r.readExpr()
				if err != nil {
					return nil, err
				}
				r.skipWS()
				if r.eof() || r.peek() != ')' {
					return nil, lerrors.NewSyntaxError("malformed dotted list: expected ) after tail")
				}
				r.advance()
				return value.DottedList(tail, elems...), nil
			}
			v, err := classify(tok)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
	}
}

// readString reads a double-quoted literal. Per §4.C, there is no
// escape processing: the content between the quotes is taken verbatim,
// so a string cannot itself contain a literal '"'.
func (r *Reader) readString() (value.Value, error) {
	r.advance() // opening '"'
	var sb strings.Builder
	for {
		if r.eof() {
			return nil, lerrors.NewSyntaxError("unclosed string literal")
		}
		c := r.advance()
		if c == '"' {
			return value.NewString(sb.String()), nil
		}
		sb.WriteRune(c)
	}
}

// classify disambiguates a raw atom token per §4.C's four rules, in
// order: character literal, number, nil, uninterned symbol reference.
func classify(tok string) (value.Value, error) {
	if strings.HasPrefix(tok, "?") {
		content := tok[1:]
		if utf8.RuneCountInString(content) != 1 {
			return nil, lerrors.NewSyntaxError("malformed character literal: ?%s", content)
		}
		r, _ := utf8.DecodeRuneInString(content)
		return value.Character(r), nil
	}
	if isFloat, ok := classifyNumber(tok); ok {
		if isFloat {
			f, _ := parseFloat(tok)
			return value.Float(f), nil
		}
		n, _ := parseInt(tok)
		return value.Integer(n), nil
	}
	if tok == "nil" {
		return value.Nil, nil
	}
	return value.Value(NewUninternedSymbol(tok)), nil
}

// classifyNumber reports whether tok matches "an optional sign followed
// by digits with at most one dot and at least one digit" (§4.C rule 2),
// and if so whether it is a float (contains a dot) or an integer.
func classifyNumber(tok string) (isFloat, ok bool) {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	digits := 0
	dots := 0
	for ; i < len(tok); i++ {
		switch {
		case tok[i] >= '0' && tok[i] <= '9':
			digits++
		case tok[i] == '.':
			dots++
			if dots > 1 {
				return false, false
			}
		default:
			return false, false
		}
	}
	if digits == 0 {
		return false, false
	}
	return dots == 1, true
}

func parseInt(tok string) (int64, error) {
	neg := false
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		neg = tok[i] == '-'
		i++
	}
	var n int64
	for ; i < len(tok); i++ {
		n = n*10 + int64(tok[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

func parseFloat(tok string) (float64, error) {
	neg := false
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		neg = tok[i] == '-'
		i++
	}
	var whole, frac float64
	var fracDiv float64 = 1
	seenDot := false
	for ; i < len(tok); i++ {
		if tok[i] == '.' {
			seenDot = true
			continue
		}
		d := float64(tok[i] - '0')
		if !seenDot {
			whole = whole*10 + d
		} else {
			fracDiv *= 10
			frac = frac*10 + d
		}
	}
	f := whole + frac/fracDiv
	if neg {
		f = -f
	}
	return f, nil
}

// NewUninternedSymbol builds a fresh, never-interned symbol reference
// for the reader's own use (bare names and the quote desugaring). It is
// a thin wrapper so this package need not import internal/symtab, which
// in turn depends on internal/value but has no reason to depend back on
// the reader.
func NewUninternedSymbol(name string) *value.Symbol {
	return value.NewSymbol(name)
}
