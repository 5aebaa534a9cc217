// seqlogo creates a stacked per-position frequency plot of an
// alignment and prints the consensus sequence.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/seqlab/seqview/bio"
	"github.com/seqlab/seqview/fasta"
	"github.com/seqlab/seqview/logo"
)

func main() {
	domain := flag.String("domain", "nt", "sequence domain (nt or aa)")
	out := flag.String("out", "logo.png", "output image file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("please specify an alignment in fasta format")
		os.Exit(1)
	}

	d, err := bio.ParseDomain(*domain)
	if err != nil {
		panic(err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		panic(err)
	}
	entries, err := fasta.Read(f)
	f.Close()
	if err != nil {
		panic(err)
	}

	views := make([]bio.View, len(entries))
	for i, e := range entries {
		views[i], err = bio.NewView(e.Seq, d, nil)
		if err != nil {
			panic(err)
		}
	}

	freq, err := logo.Frequencies(views)
	if err != nil {
		panic(err)
	}
	a := bio.DefaultAlphabet(d)
	cons, err := logo.Consensus(freq, a)
	if err != nil {
		panic(err)
	}
	fmt.Println(cons)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d sequences", len(views))
	p.Y.Label.Text = "frequency"

	positions, _ := freq.Dims()
	var prev *plotter.BarChart
	series := 0
	for j := 0; j < a.Len(); j++ {
		vals := make(plotter.Values, positions)
		seen := false
		for i := 0; i < positions; i++ {
			vals[i] = freq.At(i, j)
			if vals[i] > 0 {
				seen = true
			}
		}
		if !seen {
			continue
		}
		b, err := plotter.NewBarChart(vals, vg.Points(10))
		if err != nil {
			panic(err)
		}
		b.Color = plotutil.Color(series)
		b.LineStyle.Width = 0
		if prev != nil {
			b.StackOn(prev)
		}
		p.Add(b)
		s, err := a.SymbolAt(j)
		if err != nil {
			panic(err)
		}
		p.Legend.Add(string(byte(s)), b)
		prev = b
		series++
	}

	labels := make([]string, positions)
	for i := range labels {
		labels[i] = string(cons[i])
	}
	p.NominalX(labels...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, *out); err != nil {
		panic(err)
	}
}
