package bio

import "strings"

// View is an immutable validated sequence in a single domain. Views
// are value types; every operation returns a new view and the symbols
// never change after construction.
type View struct {
	seq string
	dom Domain
	alp *Alphabet
}

// NewView validates a symbol string against an alphabet and wraps it.
// A nil alphabet selects the domain default. Validation is pure
// alphabet membership; there is no guessing which domain a string
// looks like.
func NewView(seq string, d Domain, a *Alphabet) (View, error) {
	if a == nil {
		a = DefaultAlphabet(d)
	}
	for i := 0; i < len(seq); i++ {
		if !a.Contains(Symbol(seq[i])) {
			return View{}, &AlphabetError{Symbol: Symbol(seq[i]), Pos: i, Alphabet: a}
		}
	}
	return View{seq: seq, dom: d, alp: a}, nil
}

// Len returns the number of symbols in the view.
func (v View) Len() int {
	return len(v.seq)
}

// String returns the view's symbols as a string.
func (v View) String() string {
	return v.seq
}

// At returns the symbol at position i. Like slice indexing it panics
// when i is out of bounds.
func (v View) At(i int) Symbol {
	return Symbol(v.seq[i])
}

// Symbols returns a copy of the view's symbols.
func (v View) Symbols() []Symbol {
	ss := make([]Symbol, len(v.seq))
	for i := 0; i < len(v.seq); i++ {
		ss[i] = Symbol(v.seq[i])
	}
	return ss
}

// Domain returns the view's domain.
func (v View) Domain() Domain {
	return v.dom
}

// Alphabet returns the view's alphabet.
func (v View) Alphabet() *Alphabet {
	if v.alp == nil {
		return DefaultAlphabet(v.dom)
	}
	return v.alp
}

// Equal reports whether two views carry the same domain and symbols.
func (v View) Equal(o View) bool {
	return v.dom == o.dom && v.seq == o.seq
}

// Slice returns the half-open subsequence [start, stop). Zero-width
// ranges are legal.
func (v View) Slice(start, stop int) (View, error) {
	if start < 0 || stop < start || stop > len(v.seq) {
		return View{}, &RangeError{Start: start, Stop: stop, Len: len(v.seq)}
	}
	return View{seq: v.seq[start:stop], dom: v.dom, alp: v.alp}, nil
}

// Pad returns a copy of the view with n gap symbols appended.
func (v View) Pad(n int) View {
	if n <= 0 {
		return v
	}
	gap := string(byte(v.Alphabet().Gap()))
	return View{seq: v.seq + strings.Repeat(gap, n), dom: v.dom, alp: v.Alphabet()}
}
