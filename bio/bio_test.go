package bio

import (
	"errors"
	"testing"
)

func TestDefaultAlphabets(tst *testing.T) {
	if NTAlphabet.Len() != 16 {
		tst.Error("Wrong nucleotide alphabet size:", NTAlphabet.Len())
	}
	if AAAlphabet.Len() != 23 {
		tst.Error("Wrong amino acid alphabet size:", AAAlphabet.Len())
	}
	if NTAlphabet.Gap() != '-' || NTAlphabet.Unknown() != 'N' {
		tst.Error("Wrong nucleotide gap or unknown symbol")
	}
	if AAAlphabet.Gap() != '-' || AAAlphabet.Unknown() != 'X' {
		tst.Error("Wrong amino acid gap or unknown symbol")
	}
	if DefaultAlphabet(NT) != NTAlphabet || DefaultAlphabet(AA) != AAAlphabet {
		tst.Error("Wrong default alphabet for domain")
	}
}

func TestAlphabetOrder(tst *testing.T) {
	for _, a := range []*Alphabet{NTAlphabet, AAAlphabet} {
		for i := 0; i < a.Len(); i++ {
			s, err := a.SymbolAt(i)
			if err != nil {
				tst.Error("Error getting symbol:", err)
			}
			j, err := a.IndexOf(s)
			if err != nil {
				tst.Error("Error getting index:", err)
			}
			if j != i {
				tst.Error("Index mismatch:", i, j)
			}
		}
		syms := a.Symbols()
		if len(syms) != a.Len() {
			tst.Error("Wrong symbol count:", len(syms))
		}
		for i, s := range syms {
			if byte(s) != a.String()[i] {
				tst.Error("Wrong symbol copy at", i)
			}
		}
		syms[0] = 'Z'
		if a.String()[0] == 'Z' {
			tst.Error("Symbols returned the backing data")
		}
	}
}

func TestAlphabetErrors(tst *testing.T) {
	_, err := NTAlphabet.IndexOf('E')
	var aerr *AlphabetError
	if !errors.As(err, &aerr) {
		tst.Error("Expected an alphabet error, got:", err)
	} else if aerr.Symbol != 'E' || aerr.Pos != -1 {
		tst.Error("Wrong alphabet error contents:", aerr)
	}

	_, err = NTAlphabet.SymbolAt(NTAlphabet.Len())
	var rerr *RangeError
	if !errors.As(err, &rerr) {
		tst.Error("Expected a range error, got:", err)
	}
}

func TestNewAlphabet(tst *testing.T) {
	// RNA with N doubling as the unknown symbol
	rna, err := NewAlphabet("-ACGUN", '-', 'N')
	if err != nil {
		tst.Error("Error creating alphabet:", err)
	}
	if rna.Len() != 6 || !rna.Contains('U') || rna.Contains('T') {
		tst.Error("Wrong custom alphabet:", rna)
	}

	if _, err := NewAlphabet("-", '-', '-'); err == nil {
		tst.Error("Expected error for a single-symbol alphabet")
	}
	if _, err := NewAlphabet("-AAC", '-', 'C'); err == nil {
		tst.Error("Expected error for duplicate symbols")
	}
	if _, err := NewAlphabet("-AC", '-', '-'); err == nil {
		tst.Error("Expected error for gap == unknown")
	}
	if _, err := NewAlphabet("ACGU", '-', 'N'); err == nil {
		tst.Error("Expected error for gap not in the alphabet")
	}
	if _, err := NewAlphabet("-ACGU", '-', 'N'); err == nil {
		tst.Error("Expected error for unknown not in the alphabet")
	}
}

func TestNewView(tst *testing.T) {
	v, err := NewView("ACGT-N", NT, nil)
	if err != nil {
		tst.Error("Error creating view:", err)
	}
	if v.Len() != 6 || v.String() != "ACGT-N" || v.Domain() != NT {
		tst.Error("Wrong view contents:", v.String())
	}
	if v.Alphabet() != NTAlphabet {
		tst.Error("Expected the default nucleotide alphabet")
	}
	if v.At(1) != 'C' {
		tst.Error("Wrong symbol at position 1:", v.At(1))
	}
	if SymbolString(v.Symbols()) != "ACGT-N" {
		tst.Error("Wrong symbols:", v.Symbols())
	}
}

// Validation is alphabet membership only; there is no guessing whether
// a string "looks like" DNA or protein.
func TestMembershipValidation(tst *testing.T) {
	// all four are IUPAC ambiguity codes, so this is a legal
	// nucleotide view even though it reads like a peptide
	if _, err := NewView("MSKG", NT, nil); err != nil {
		tst.Error("Expected MSKG to validate as nucleotides:", err)
	}

	_, err := NewView("ACGE", NT, nil)
	var aerr *AlphabetError
	if !errors.As(err, &aerr) {
		tst.Error("Expected an alphabet error, got:", err)
	} else if aerr.Symbol != 'E' || aerr.Pos != 3 {
		tst.Error("Wrong alphabet error contents:", aerr)
	}

	// the same string is fine as a protein
	if _, err := NewView("ACGE", AA, nil); err != nil {
		tst.Error("Expected ACGE to validate as amino acids:", err)
	}
}

func TestViewSlice(tst *testing.T) {
	v, err := NewView("ACGTAC", NT, nil)
	if err != nil {
		tst.Error("Error creating view:", err)
	}

	s, err := v.Slice(1, 4)
	if err != nil {
		tst.Error("Error slicing view:", err)
	}
	if s.String() != "CGT" || s.Domain() != NT {
		tst.Error("Wrong slice:", s.String())
	}
	if v.String() != "ACGTAC" {
		tst.Error("Slicing must not change the source view")
	}

	if e, err := v.Slice(3, 3); err != nil || e.Len() != 0 {
		tst.Error("Expected an empty slice:", e.String(), err)
	}

	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 7}} {
		_, err := v.Slice(r[0], r[1])
		var rerr *RangeError
		if !errors.As(err, &rerr) {
			tst.Error("Expected a range error for", r, "got:", err)
		}
	}
}

func TestViewPad(tst *testing.T) {
	v, err := NewView("ACG", NT, nil)
	if err != nil {
		tst.Error("Error creating view:", err)
	}
	p := v.Pad(3)
	if p.String() != "ACG---" {
		tst.Error("Wrong padded view:", p.String())
	}
	if v.String() != "ACG" {
		tst.Error("Padding must not change the source view")
	}
	if v.Pad(0).String() != "ACG" {
		tst.Error("Zero padding must be a no-op")
	}
}

func TestParseDomain(tst *testing.T) {
	for _, s := range []string{"nt", "NT", "dna", "DNA", "nucleotide"} {
		if d, err := ParseDomain(s); err != nil || d != NT {
			tst.Error("Expected nucleotide domain for", s)
		}
	}
	for _, s := range []string{"aa", "AA", "protein", "amino acid"} {
		if d, err := ParseDomain(s); err != nil || d != AA {
			tst.Error("Expected amino acid domain for", s)
		}
	}
	if _, err := ParseDomain("rna"); err == nil {
		tst.Error("Expected error for an unknown domain")
	}
}

func TestViewEqual(tst *testing.T) {
	a, _ := NewView("ACG", NT, nil)
	b, _ := NewView("ACG", NT, nil)
	c, _ := NewView("ACG", AA, nil)
	if !a.Equal(b) {
		tst.Error("Views with the same domain and symbols must be equal")
	}
	if a.Equal(c) {
		tst.Error("Views with different domains must not be equal")
	}
}
