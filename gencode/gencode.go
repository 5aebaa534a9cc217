// Package gencode provides the NCBI genetic code tables, codon maps
// and the translation primitives between nucleotide and protein
// views.
package gencode

import "fmt"

// nucs holds the bases in the NCBI table enumeration order. Codon i
// of a table is nucs[i/16] nucs[i/4%4] nucs[i%4].
const nucs = "TCAG"

// nCodons is the number of codons in a translation table.
const nCodons = 64

// GeneticCode is a single NCBI translation table. The 64 codons are
// enumerated in TCAG order; stop codons translate to '*'.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	letters   map[string]byte
	starts    map[string]bool
	stops     []string
}

// codonAt returns the i-th codon of the TCAG enumeration.
func codonAt(i int) string {
	return string([]byte{nucs[i/16], nucs[i/4%4], nucs[i%4]})
}

func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	if len(ncbieaa) != nCodons || len(sncbieaa) != nCodons {
		panic(fmt.Sprintf("genetic code %d: table length is not %d", id, nCodons))
	}
	gc := &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		letters:   make(map[string]byte, nCodons),
		starts:    make(map[string]bool),
	}
	for i := 0; i < nCodons; i++ {
		codon := codonAt(i)
		gc.letters[codon] = ncbieaa[i]
		if sncbieaa[i] == 'M' {
			gc.starts[codon] = true
		}
		if ncbieaa[i] == '*' {
			gc.stops = append(gc.stops, codon)
		}
	}
	return gc
}

// Letter returns the amino acid letter for an unambiguous uppercase
// codon; stop codons return '*'. The second value is false for
// anything which is not one of the 64 codons.
func (gc *GeneticCode) Letter(codon string) (byte, bool) {
	aa, ok := gc.letters[codon]
	return aa, ok
}

// IsStopCodon tests if the string is a stop codon in this table
// (DNA alphabet, capital letters).
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	return gc.letters[codon] == '*'
}

// IsStartCodon tests if the codon is a canonical or alternative start
// in this table.
func (gc *GeneticCode) IsStartCodon(codon string) bool {
	return gc.starts[codon]
}

// StopCodons returns the table's stop codons in TCAG enumeration
// order.
func (gc *GeneticCode) StopCodons() []string {
	res := make([]string, len(gc.stops))
	copy(res, gc.stops)
	return res
}

// String returns a short description of the table.
func (gc *GeneticCode) String() string {
	return fmt.Sprintf("genetic code %d (%s)", gc.ID, gc.Name)
}
