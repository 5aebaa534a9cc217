package gencode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/seqlab/seqview/bio"
)

// CodonMap assigns a nucleotide triplet to every amino acid residue.
// It is an external input to back-translation: the caller chooses the
// codon usage, the conversion engine never invents one.
type CodonMap struct {
	triplets map[byte]string
}

// NewCodonMap validates a residue-to-codon assignment against an
// amino acid alphabet (nil means the default). The assignment must
// cover every residue except the gap and unknown symbols, which the
// conversion engine expands itself. Every codon must be three symbols
// from the default nucleotide alphabet.
func NewCodonMap(triplets map[byte]string, a *bio.Alphabet) (*CodonMap, error) {
	if a == nil {
		a = bio.DefaultAlphabet(bio.AA)
	}
	nt := bio.DefaultAlphabet(bio.NT)
	m := make(map[byte]string, len(triplets))
	for aa, codon := range triplets {
		if !a.Contains(bio.Symbol(aa)) {
			return nil, &bio.AlphabetError{Symbol: bio.Symbol(aa), Pos: -1, Alphabet: a}
		}
		if len(codon) != 3 {
			return nil, &bio.LengthMismatchError{Op: fmt.Sprintf("codon for residue %q", aa), Want: 3, Got: len(codon)}
		}
		for i := 0; i < 3; i++ {
			if !nt.Contains(bio.Symbol(codon[i])) {
				return nil, &bio.AlphabetError{Symbol: bio.Symbol(codon[i]), Pos: i, Alphabet: nt}
			}
		}
		m[aa] = codon
	}
	for i := 0; i < a.Len(); i++ {
		s, err := a.SymbolAt(i)
		if err != nil {
			return nil, err
		}
		if s == a.Gap() || s == a.Unknown() {
			continue
		}
		if _, ok := m[byte(s)]; !ok {
			return nil, fmt.Errorf("codon map misses residue %q", byte(s))
		}
	}
	return &CodonMap{triplets: m}, nil
}

// Triplet returns the codon assigned to a residue.
func (m *CodonMap) Triplet(aa byte) (string, bool) {
	codon, ok := m.triplets[aa]
	return codon, ok
}

// Len returns the number of mapped residues.
func (m *CodonMap) Len() int {
	return len(m.triplets)
}

// FromGeneticCode builds a deterministic codon map from a translation
// table: each residue gets the first codon of the TCAG enumeration
// which translates to it. The choice is arbitrary but stable, so
// back-translation stays reproducible.
func FromGeneticCode(gc *GeneticCode) *CodonMap {
	m := make(map[byte]string, 21)
	for i := 0; i < nCodons; i++ {
		codon := codonAt(i)
		aa := gc.letters[codon]
		if _, ok := m[aa]; !ok {
			m[aa] = codon
		}
	}
	return &CodonMap{triplets: m}
}

// ReadCodonMap reads a JSON codon map, e.g. {"M": "ATG", ...}, and
// validates it against the alphabet (nil means the default).
func ReadCodonMap(rd io.Reader, a *bio.Alphabet) (*CodonMap, error) {
	var raw map[string]string
	if err := json.NewDecoder(rd).Decode(&raw); err != nil {
		return nil, err
	}
	triplets := make(map[byte]string, len(raw))
	for aa, codon := range raw {
		if len(aa) != 1 {
			return nil, fmt.Errorf("codon map key %q is not a single residue", aa)
		}
		triplets[aa[0]] = codon
	}
	return NewCodonMap(triplets, a)
}
