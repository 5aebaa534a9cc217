// Package bio provides sequence alphabets and validated immutable
// sequence views for nucleotide and protein data.
package bio

import "fmt"

// Domain identifies the molecule type of a sequence.
type Domain int

// Sequence domains.
const (
	NT Domain = iota // nucleotide
	AA               // amino acid
)

// String returns a human-readable domain name.
func (d Domain) String() string {
	switch d {
	case NT:
		return "nucleotide"
	case AA:
		return "amino acid"
	}
	return fmt.Sprintf("domain(%d)", int(d))
}

// ParseDomain returns a domain from its common string forms, e.g. a
// command-line argument.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "nt", "NT", "dna", "DNA", "nucleotide":
		return NT, nil
	case "aa", "AA", "protein", "amino acid":
		return AA, nil
	}
	return NT, fmt.Errorf("unknown sequence domain: %s", s)
}

// Symbol is a single base or residue character.
type Symbol byte

// SymbolString converts a symbol slice to its string form.
func SymbolString(ss []Symbol) string {
	b := make([]byte, len(ss))
	for i, s := range ss {
		b[i] = byte(s)
	}
	return string(b)
}
