package value

import "github.com/akuukka/go-alisp/internal/cycle"

// StringObj is a shared, reference-counted UTF-8 sequence. Indexing is
// by codepoint (invariant 2 of §3), so it is stored decoded as runes
// rather than as raw bytes.
type StringObj struct {
	cycle.Meta
	Runes []rune
}

func (*StringObj) Kind() Kind { return StringKind }

// NewString allocates a fresh, independently refcounted string.
func NewString(s string) *StringObj {
	o := &StringObj{Runes: []rune(s)}
	o.Init()
	return o
}

// String returns the Go string form of the value's content.
func (s *StringObj) String() string { return string(s.Runes) }

// Len returns the number of codepoints.
func (s *StringObj) Len() int { return len(s.Runes) }

func (s *StringObj) RefMeta() *cycle.Meta { return &s.Meta }

// Traverse is a no-op: a string holds no other shared values.
func (s *StringObj) Traverse(func(cycle.Node)) {}

func (s *StringObj) ClearLinks() { s.Runes = nil }
