package record

import (
	"fmt"
	"strings"

	"github.com/gonum/matrix/mat64"

	"github.com/seqlab/seqview/bio"
	"github.com/seqlab/seqview/numeric"
)

// Input is the closed set of forms a record can be built from.
// Textual forms (Text, Structured) are uppercased before validation;
// programmatic forms (Symbols, Indices, OneHot) are taken as given.
type Input interface {
	isInput()
}

// Text is a plain sequence string.
type Text string

// Symbols is an explicit symbol array.
type Symbols []bio.Symbol

// Indices is an index-encoded sequence.
type Indices []int

// OneHot is a one-hot encoded sequence.
type OneHot struct {
	M *mat64.Dense
}

// Structured is a record-shaped input carrying metadata along with
// the sequence text.
type Structured struct {
	ID          string
	Name        string
	Description string
	Seq         string
	Annotations map[string][]string
}

func (Text) isInput()       {}
func (Symbols) isInput()    {}
func (Indices) isInput()    {}
func (OneHot) isInput()     {}
func (Structured) isInput() {}

// New normalizes any input form into a record of the given domain. A
// nil alphabet selects the domain default. The dispatch is exhaustive
// over the closed input set.
func New(in Input, d bio.Domain, a *bio.Alphabet) (Record, error) {
	switch in := in.(type) {
	case Text:
		v, err := bio.NewView(strings.ToUpper(string(in)), d, a)
		if err != nil {
			return Record{}, err
		}
		return FromView(v), nil
	case Symbols:
		v, err := bio.NewView(bio.SymbolString(in), d, a)
		if err != nil {
			return Record{}, err
		}
		return FromView(v), nil
	case Indices:
		v, err := numeric.FromIndex(in, d, a)
		if err != nil {
			return Record{}, err
		}
		return FromView(v), nil
	case OneHot:
		if in.M == nil {
			v, err := bio.NewView("", d, a)
			if err != nil {
				return Record{}, err
			}
			return FromView(v), nil
		}
		v, err := numeric.FromOneHot(in.M, d, a)
		if err != nil {
			return Record{}, err
		}
		return FromView(v), nil
	case Structured:
		v, err := bio.NewView(strings.ToUpper(in.Seq), d, a)
		if err != nil {
			return Record{}, err
		}
		return FromView(v).WithMeta(Metadata{
			ID:          in.ID,
			Name:        in.Name,
			Description: in.Description,
			Annotations: in.Annotations,
		})
	}
	return Record{}, fmt.Errorf("unsupported input type %T", in)
}
