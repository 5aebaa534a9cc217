// Package numeric converts sequence views to and from numeric
// representations: one-hot matrices and alphabet index vectors.
package numeric

import (
	"fmt"
	"math"
	"strings"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"

	"github.com/seqlab/seqview/bio"
)

// binTol is the tolerance for recognizing 0 and 1 entries when
// decoding one-hot data.
const binTol = 1e-9

// EncodingError reports numeric input which cannot be decoded into a
// sequence view. Pos is the offending row or vector position, or -1
// when the shape itself is wrong.
type EncodingError struct {
	Pos    int
	Reason string
}

func (e *EncodingError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("cannot decode: %s", e.Reason)
	}
	return fmt.Sprintf("cannot decode position %d: %s", e.Pos, e.Reason)
}

// OneHot encodes a view as a dense (length x alphabet size) matrix
// with a single 1 per row at the symbol's alphabet index. The empty
// view encodes as nil.
func OneHot(v bio.View) *mat64.Dense {
	if v.Len() == 0 {
		return nil
	}
	a := v.Alphabet()
	m := mat64.NewDense(v.Len(), a.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		// view symbols are alphabet members by construction
		j, _ := a.IndexOf(v.At(i))
		m.Set(i, j, 1)
	}
	return m
}

// Index encodes a view as a vector of alphabet indices.
func Index(v bio.View) []int {
	a := v.Alphabet()
	idx := make([]int, v.Len())
	for i := 0; i < v.Len(); i++ {
		j, _ := a.IndexOf(v.At(i))
		idx[i] = j
	}
	return idx
}

// FromOneHot decodes a one-hot matrix back into a view of the given
// domain and alphabet (nil means the default). Every row must be as
// wide as the alphabet and contain exactly one 1 with zeros
// elsewhere. A nil matrix decodes to the empty view; the nil
// *mat64.Dense which OneHot returns for the empty view counts as nil
// here too.
func FromOneHot(m mat64.Matrix, d bio.Domain, a *bio.Alphabet) (bio.View, error) {
	if a == nil {
		a = bio.DefaultAlphabet(d)
	}
	if dense, ok := m.(*mat64.Dense); m == nil || (ok && dense == nil) {
		return bio.NewView("", d, a)
	}
	r, c := m.Dims()
	if c != a.Len() {
		return bio.View{}, &EncodingError{Pos: -1, Reason: fmt.Sprintf("row width %d does not match alphabet size %d", c, a.Len())}
	}

	var b strings.Builder
	b.Grow(r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat64.Row(row, i, m)
		ones := 0
		for j, x := range row {
			switch {
			case math.Abs(x) <= binTol:
			case math.Abs(x-1) <= binTol:
				ones++
			default:
				return bio.View{}, &EncodingError{Pos: i, Reason: fmt.Sprintf("value %g in column %d is neither 0 nor 1", x, j)}
			}
		}
		if ones != 1 {
			return bio.View{}, &EncodingError{Pos: i, Reason: fmt.Sprintf("row has %d hot columns, want exactly 1", ones)}
		}
		s, err := a.SymbolAt(floats.MaxIdx(row))
		if err != nil {
			return bio.View{}, err
		}
		b.WriteByte(byte(s))
	}
	return bio.NewView(b.String(), d, a)
}

// FromIndex decodes an index vector back into a view of the given
// domain and alphabet (nil means the default).
func FromIndex(idx []int, d bio.Domain, a *bio.Alphabet) (bio.View, error) {
	if a == nil {
		a = bio.DefaultAlphabet(d)
	}
	b := make([]byte, len(idx))
	for i, j := range idx {
		s, err := a.SymbolAt(j)
		if err != nil {
			return bio.View{}, &EncodingError{Pos: i, Reason: fmt.Sprintf("index %d is outside the alphabet of size %d", j, a.Len())}
		}
		b[i] = byte(s)
	}
	return bio.NewView(string(b), d, a)
}
