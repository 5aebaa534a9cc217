package bio

import (
	"errors"
	"fmt"
)

// Alphabet is an ordered set of symbols with a designated gap symbol
// and a designated unknown symbol. The order is part of the contract:
// numeric encodings use the position of a symbol within the alphabet.
type Alphabet struct {
	symbols string
	index   map[Symbol]int
	gap     Symbol
	unknown Symbol
}

// Default alphabets. NT holds the gap, the four bases, the IUPAC
// ambiguity codes, with N doubling as the unknown symbol. AA holds
// the gap, the stop, the twenty canonical residues and X as the
// unknown symbol.
var (
	NTAlphabet = mustAlphabet("-ACGTRYSWKMBDHVN", '-', 'N')
	AAAlphabet = mustAlphabet("-*ACDEFGHIKLMNPQRSTVWYX", '-', 'X')
)

// NewAlphabet creates an alphabet from an ordered symbol string. Every
// symbol must be unique; gap and unknown must be distinct members.
func NewAlphabet(symbols string, gap, unknown Symbol) (*Alphabet, error) {
	if len(symbols) < 2 {
		return nil, fmt.Errorf("alphabet needs at least two symbols, got %d", len(symbols))
	}
	if gap == unknown {
		return nil, errors.New("gap and unknown symbols must differ")
	}
	index := make(map[Symbol]int, len(symbols))
	for i := 0; i < len(symbols); i++ {
		s := Symbol(symbols[i])
		if _, ok := index[s]; ok {
			return nil, fmt.Errorf("duplicate symbol %q in alphabet", symbols[i])
		}
		index[s] = i
	}
	if _, ok := index[gap]; !ok {
		return nil, fmt.Errorf("gap symbol %q is not in the alphabet", byte(gap))
	}
	if _, ok := index[unknown]; !ok {
		return nil, fmt.Errorf("unknown symbol %q is not in the alphabet", byte(unknown))
	}
	return &Alphabet{symbols: symbols, index: index, gap: gap, unknown: unknown}, nil
}

func mustAlphabet(symbols string, gap, unknown Symbol) *Alphabet {
	a, err := NewAlphabet(symbols, gap, unknown)
	if err != nil {
		panic(err)
	}
	return a
}

// DefaultAlphabet returns the default alphabet for a domain. An
// explicit alphabet always wins over the default; nil arguments to
// view constructors resolve through here.
func DefaultAlphabet(d Domain) *Alphabet {
	if d == AA {
		return AAAlphabet
	}
	return NTAlphabet
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// String returns the alphabet symbols in order.
func (a *Alphabet) String() string {
	return a.symbols
}

// Symbols returns a copy of the alphabet symbols in order.
func (a *Alphabet) Symbols() []Symbol {
	s := make([]Symbol, len(a.symbols))
	for i := 0; i < len(a.symbols); i++ {
		s[i] = Symbol(a.symbols[i])
	}
	return s
}

// Gap returns the gap symbol.
func (a *Alphabet) Gap() Symbol {
	return a.gap
}

// Unknown returns the unknown symbol.
func (a *Alphabet) Unknown() Symbol {
	return a.unknown
}

// Contains tests alphabet membership.
func (a *Alphabet) Contains(s Symbol) bool {
	_, ok := a.index[s]
	return ok
}

// IndexOf returns the position of a symbol in the alphabet.
func (a *Alphabet) IndexOf(s Symbol) (int, error) {
	i, ok := a.index[s]
	if !ok {
		return 0, &AlphabetError{Symbol: s, Pos: -1, Alphabet: a}
	}
	return i, nil
}

// SymbolAt returns the symbol at the given position. It is the
// inverse of IndexOf.
func (a *Alphabet) SymbolAt(i int) (Symbol, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, &RangeError{Start: i, Stop: i + 1, Len: len(a.symbols)}
	}
	return Symbol(a.symbols[i]), nil
}
