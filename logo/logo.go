// Package logo computes per-position symbol frequencies and
// information content of sequence collections, the data behind
// sequence-logo style summaries.
package logo

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"

	"github.com/seqlab/seqview/bio"
)

// Frequencies computes the per-position symbol distribution of a
// collection of equal-length views sharing one alphabet. The result
// has one row per position and one column per alphabet symbol; every
// row sums to 1.
func Frequencies(views []bio.View) (*mat64.Dense, error) {
	if len(views) == 0 {
		return nil, errors.New("no sequences")
	}
	n := views[0].Len()
	a := views[0].Alphabet()
	for i, v := range views {
		if v.Len() != n {
			return nil, &bio.LengthMismatchError{Op: fmt.Sprintf("sequence %d", i), Want: n, Got: v.Len()}
		}
		if v.Alphabet().String() != a.String() {
			return nil, fmt.Errorf("sequence %d: mixed alphabets", i)
		}
	}
	if n == 0 {
		return nil, errors.New("empty sequences")
	}

	m := mat64.NewDense(n, a.Len(), nil)
	for _, v := range views {
		for i := 0; i < n; i++ {
			// view symbols are alphabet members by construction
			j, _ := a.IndexOf(v.At(i))
			m.Set(i, j, m.At(i, j)+1)
		}
	}
	m.Scale(1/float64(len(views)), m)
	return m, nil
}

// Information returns the per-position information content in bits:
// the log2 of the alphabet size minus the positional entropy.
func Information(freq *mat64.Dense) []float64 {
	r, c := freq.Dims()
	info := make([]float64, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat64.Row(row, i, freq)
		h := 0.0
		for _, p := range row {
			if p > 0 {
				h -= p * math.Log2(p)
			}
		}
		info[i] = math.Log2(float64(c)) - h
	}
	return info
}

// Consensus returns the most frequent symbol of every position.
func Consensus(freq *mat64.Dense, a *bio.Alphabet) (string, error) {
	r, c := freq.Dims()
	if c != a.Len() {
		return "", fmt.Errorf("frequency width %d does not match alphabet size %d", c, a.Len())
	}
	b := make([]byte, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat64.Row(row, i, freq)
		s, err := a.SymbolAt(floats.MaxIdx(row))
		if err != nil {
			return "", err
		}
		b[i] = byte(s)
	}
	return string(b), nil
}
