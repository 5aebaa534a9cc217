package gencode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seqlab/seqview/bio"
)

// FrameError reports a nucleotide sequence whose length does not
// divide by three.
type FrameError struct {
	Len int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("sequence length %d doesn't divide by 3", e.Len)
}

// ErrNoCodonMap is returned when back-translation is requested
// without a codon map.
var ErrNoCodonMap = errors.New("back-translation requires a codon map")

// Translate converts a nucleotide view into an amino acid view using
// a genetic code table. Codons of three gaps become a gap; codons
// containing any symbol beyond the four bases become the unknown
// residue; stop codons become '*' per table. Only a broken reading
// frame is an error.
func Translate(v bio.View, gc *GeneticCode) (bio.View, error) {
	if v.Domain() != bio.NT {
		return bio.View{}, fmt.Errorf("translate: expected a %s view, got %s", bio.NT, v.Domain())
	}
	if v.Len()%3 != 0 {
		return bio.View{}, &FrameError{Len: v.Len()}
	}
	aa := bio.DefaultAlphabet(bio.AA)
	gapCodon := strings.Repeat(string(byte(v.Alphabet().Gap())), 3)

	var b strings.Builder
	b.Grow(v.Len() / 3)
	seq := v.String()
	for i := 0; i < len(seq); i += 3 {
		codon := seq[i : i+3]
		letter, ok := gc.Letter(codon)
		switch {
		case ok:
			b.WriteByte(letter)
		case codon == gapCodon:
			b.WriteByte(byte(aa.Gap()))
		default:
			b.WriteByte(byte(aa.Unknown()))
		}
	}
	return bio.NewView(b.String(), bio.AA, nil)
}

// BackTranslate converts an amino acid view into a nucleotide view
// using an externally supplied codon map. Gaps become three gaps and
// unknown residues become three unknown bases; the result is always
// exactly three times as long as the input.
func BackTranslate(v bio.View, m *CodonMap) (bio.View, error) {
	if v.Domain() != bio.AA {
		return bio.View{}, fmt.Errorf("back-translate: expected an %s view, got %s", bio.AA, v.Domain())
	}
	if m == nil {
		return bio.View{}, ErrNoCodonMap
	}
	alpha := v.Alphabet()
	nt := bio.DefaultAlphabet(bio.NT)
	gapCodon := strings.Repeat(string(byte(nt.Gap())), 3)
	unkCodon := strings.Repeat(string(byte(nt.Unknown())), 3)

	var b strings.Builder
	b.Grow(3 * v.Len())
	for i := 0; i < v.Len(); i++ {
		s := v.At(i)
		switch s {
		case alpha.Gap():
			b.WriteString(gapCodon)
		case alpha.Unknown():
			b.WriteString(unkCodon)
		default:
			codon, ok := m.Triplet(byte(s))
			if !ok {
				return bio.View{}, fmt.Errorf("no codon for residue %q in codon map", byte(s))
			}
			b.WriteString(codon)
		}
	}
	return bio.NewView(b.String(), bio.NT, nil)
}
