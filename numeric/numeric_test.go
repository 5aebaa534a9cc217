package numeric

import (
	"errors"
	"strings"
	"testing"

	"github.com/gonum/matrix/mat64"

	"github.com/seqlab/seqview/bio"
)

func view(tst *testing.T, seq string, d bio.Domain) bio.View {
	v, err := bio.NewView(seq, d, nil)
	if err != nil {
		tst.Fatal("Error creating view:", err)
	}
	return v
}

func TestOneHot(tst *testing.T) {
	v := view(tst, "-ACGT", bio.NT)
	m := OneHot(v)
	r, c := m.Dims()
	if r != 5 || c != bio.NTAlphabet.Len() {
		tst.Error("Wrong one-hot dimensions:", r, c)
	}
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			sum += m.At(i, j)
		}
		if sum != 1 {
			tst.Error("Row", i, "sums to", sum)
		}
		if m.At(i, i) != 1 {
			tst.Error("Wrong hot column in row", i)
		}
	}
}

func TestOneHotEmpty(tst *testing.T) {
	if m := OneHot(view(tst, "", bio.NT)); m != nil {
		tst.Error("Expected nil matrix for the empty view")
	}
	v, err := FromOneHot(nil, bio.NT, nil)
	if err != nil || v.Len() != 0 {
		tst.Error("Expected the empty view for a nil matrix:", v.String(), err)
	}
	// the typed nil OneHot returns must decode like a plain nil
	v, err = FromOneHot(OneHot(view(tst, "", bio.NT)), bio.NT, nil)
	if err != nil || v.Len() != 0 {
		tst.Error("Expected the empty view decoding an empty encoding:", v.String(), err)
	}
}

func TestIndex(tst *testing.T) {
	idx := Index(view(tst, "-ACGT", bio.NT))
	want := []int{0, 1, 2, 3, 4}
	if len(idx) != len(want) {
		tst.Fatal("Wrong index length:", len(idx))
	}
	for i := range want {
		if idx[i] != want[i] {
			tst.Error("Wrong index at", i, ":", idx[i])
		}
	}
}

func TestOneHotRoundTrip(tst *testing.T) {
	for _, s := range []string{"ACGT-N", "MSKGE", ""} {
		d := bio.NT
		if s == "MSKGE" {
			d = bio.AA
		}
		v := view(tst, s, d)
		back, err := FromOneHot(OneHot(v), d, nil)
		if err != nil {
			tst.Error("Error decoding one-hot:", err)
		}
		if !back.Equal(v) {
			tst.Error("Round trip failed:", v.String(), "->", back.String())
		}
	}
}

func TestIndexRoundTrip(tst *testing.T) {
	v := view(tst, "MSKGE", bio.AA)
	back, err := FromIndex(Index(v), bio.AA, nil)
	if err != nil {
		tst.Error("Error decoding indices:", err)
	}
	if !back.Equal(v) {
		tst.Error("Round trip failed:", v.String(), "->", back.String())
	}
}

func TestFromOneHotErrors(tst *testing.T) {
	var eerr *EncodingError

	// wrong width
	_, err := FromOneHot(mat64.NewDense(1, 3, []float64{1, 0, 0}), bio.NT, nil)
	if !errors.As(err, &eerr) || eerr.Pos != -1 {
		tst.Error("Expected a shape error, got:", err)
	}

	n := bio.NTAlphabet.Len()

	// two hot columns
	data := make([]float64, n)
	data[1], data[2] = 1, 1
	_, err = FromOneHot(mat64.NewDense(1, n, data), bio.NT, nil)
	if !errors.As(err, &eerr) || eerr.Pos != 0 {
		tst.Error("Expected a row error, got:", err)
	}

	// no hot column
	_, err = FromOneHot(mat64.NewDense(1, n, make([]float64, n)), bio.NT, nil)
	if !errors.As(err, &eerr) || eerr.Pos != 0 {
		tst.Error("Expected a row error, got:", err)
	}

	// fractional entry
	data = make([]float64, 2*n)
	data[1] = 1
	data[n+3] = 0.5
	_, err = FromOneHot(mat64.NewDense(2, n, data), bio.NT, nil)
	if !errors.As(err, &eerr) || eerr.Pos != 1 {
		tst.Error("Expected an error for row 1, got:", err)
	}
}

func TestFromIndexErrors(tst *testing.T) {
	var eerr *EncodingError
	_, err := FromIndex([]int{0, 99}, bio.NT, nil)
	if !errors.As(err, &eerr) || eerr.Pos != 1 {
		tst.Error("Expected an encoding error at position 1, got:", err)
	}
	_, err = FromIndex([]int{-1}, bio.NT, nil)
	if !errors.As(err, &eerr) || eerr.Pos != 0 {
		tst.Error("Expected an encoding error at position 0, got:", err)
	}
}

func TestFromOneHotTolerance(tst *testing.T) {
	// values within the tolerance count as clean 0 and 1
	n := bio.NTAlphabet.Len()
	data := make([]float64, n)
	data[1] = 1 + 1e-12
	data[2] = 1e-12
	v, err := FromOneHot(mat64.NewDense(1, n, data), bio.NT, nil)
	if err != nil {
		tst.Error("Error decoding near-binary matrix:", err)
	}
	if v.String() != "A" {
		tst.Error("Wrong decoded view:", v.String())
	}
}

func BenchmarkOneHot(b *testing.B) {
	v, err := bio.NewView(strings.Repeat("-ACGTRYSWKMBDHVN", 64), bio.NT, nil)
	if err != nil {
		b.Error("Error: ", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		OneHot(v)
	}
}

func BenchmarkFromOneHot(b *testing.B) {
	v, err := bio.NewView(strings.Repeat("-ACGTRYSWKMBDHVN", 64), bio.NT, nil)
	if err != nil {
		b.Error("Error: ", err)
	}
	m := OneHot(v)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromOneHot(m, bio.NT, nil); err != nil {
			b.Error("Error: ", err)
		}
	}
}
