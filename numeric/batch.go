package numeric

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
	"github.com/pbenner/threadpool"

	"github.com/seqlab/seqview/bio"
)

// checkBatch verifies that all views share one domain and alphabet
// and returns the longest view length.
func checkBatch(views []bio.View) (maxLen int, err error) {
	for i, v := range views {
		if v.Domain() != views[0].Domain() || v.Alphabet().String() != views[0].Alphabet().String() {
			return 0, fmt.Errorf("view %d: mixed domains or alphabets in one batch", i)
		}
		if v.Len() > maxLen {
			maxLen = v.Len()
		}
	}
	return maxLen, nil
}

// OneHotBatch encodes a collection of views sharing one domain and
// alphabet. Shorter views are padded with gaps to the longest one, so
// all matrices have the same shape; result order follows input order.
// With threads > 1 the views are encoded on a worker pool.
func OneHotBatch(views []bio.View, threads int) ([]*mat64.Dense, error) {
	if len(views) == 0 {
		return nil, nil
	}
	maxLen, err := checkBatch(views)
	if err != nil {
		return nil, err
	}
	out := make([]*mat64.Dense, len(views))
	encode := func(i int) {
		out[i] = OneHot(views[i].Pad(maxLen - views[i].Len()))
	}
	if threads > 1 {
		pool := threadpool.New(threads, 100*threads)
		err := pool.RangeJob(0, len(views), func(i int, pool threadpool.ThreadPool, erf func() error) error {
			encode(i)
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		for i := range views {
			encode(i)
		}
	}
	return out, nil
}

// IndexBatch encodes a collection into a single (batch x longest
// length) matrix of alphabet indices, gap-padded on the right. A
// batch of empty views encodes as nil.
func IndexBatch(views []bio.View, threads int) (*mat64.Dense, error) {
	if len(views) == 0 {
		return nil, nil
	}
	maxLen, err := checkBatch(views)
	if err != nil {
		return nil, err
	}
	if maxLen == 0 {
		return nil, nil
	}
	m := mat64.NewDense(len(views), maxLen, nil)
	fill := func(i int) {
		idx := Index(views[i].Pad(maxLen - views[i].Len()))
		row := make([]float64, len(idx))
		for j, x := range idx {
			row[j] = float64(x)
		}
		m.SetRow(i, row)
	}
	if threads > 1 {
		pool := threadpool.New(threads, 100*threads)
		err := pool.RangeJob(0, len(views), func(i int, pool threadpool.ThreadPool, erf func() error) error {
			fill(i)
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		for i := range views {
			fill(i)
		}
	}
	return m, nil
}
