package main

import (
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/op/go-logging"
)

func init() {
	logging.SetLevel(logging.CRITICAL, "seqview")
}

func TestMatrixRows(tst *testing.T) {
	if rows := matrixRows(nil); rows != nil {
		tst.Error("rows of a nil matrix", rows)
	}
	m := mat64.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	rows := matrixRows(m)
	if len(rows) != 2 || len(rows[0]) != 3 {
		tst.Fatal("wrong shape", rows)
	}
	if rows[0][0] != 1 || rows[0][2] != 3 || rows[1][1] != 5 {
		tst.Error("wrong values", rows)
	}
}

func TestIntRow(tst *testing.T) {
	if row := intRow(nil, 0); row != nil {
		tst.Error("row of a nil matrix", row)
	}
	m := mat64.NewDense(2, 3, []float64{0, 1, 2, 3, 4, 5})
	row := intRow(m, 1)
	if len(row) != 3 || row[0] != 3 || row[2] != 5 {
		tst.Error("wrong values", row)
	}
}
