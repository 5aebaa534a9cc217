package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gonum/matrix/mat64"

	"github.com/seqlab/seqview/align"
	"github.com/seqlab/seqview/bio"
	"github.com/seqlab/seqview/fasta"
	"github.com/seqlab/seqview/gencode"
	"github.com/seqlab/seqview/logo"
	"github.com/seqlab/seqview/numeric"
	"github.com/seqlab/seqview/record"
	"github.com/seqlab/seqview/store"
)

// run dispatches the requested operation and collects the run summary.
func run(threads int) (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{Op: *op}

	var err error
	switch *op {
	case "translate":
		err = translateCmd(summary)
	case "backtranslate":
		err = backTranslateCmd(summary)
	case "slice":
		err = sliceCmd(summary)
	case "pad":
		err = padCmd(summary)
	case "onehot":
		err = oneHotCmd(summary, threads)
	case "index":
		err = indexCmd(summary, threads)
	case "freq":
		err = freqCmd(summary)
	case "align":
		err = alignCmd(summary)
	case "put":
		err = putCmd(summary)
	case "get":
		err = getCmd(summary)
	case "list":
		err = listCmd(summary)
	default:
		err = fmt.Errorf("unknown operation: %s", *op)
	}
	if err != nil {
		log.Fatal(err)
	}

	endTime := time.Now()

	deltaT := endTime.Sub(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

// readRecords loads all sequences from the input FASTA file and wraps
// them as records of the given domain.
func readRecords(d bio.Domain) ([]record.Record, error) {
	if *input == "" {
		return nil, fmt.Errorf("operation %s requires an input file", *op)
	}
	gcode, ok := gencode.GeneticCodes[*gcodeID]
	if !ok {
		return nil, fmt.Errorf("unknown genetic code id %d", *gcodeID)
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)

	f, err := os.Open(*input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := fasta.Read(f)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no sequences in %s", *input)
	}

	recs := make([]record.Record, len(entries))
	for i, e := range entries {
		id, desc := fasta.SplitHeader(e.Header)
		r, err := record.New(record.Structured{ID: id, Description: desc, Seq: e.Seq}, d, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", id, err)
		}
		recs[i] = r.WithGeneticCode(gcode)
	}
	log.Infof("Read %d %s sequences", len(recs), d)
	return recs, nil
}

// writeRecords writes the records' active views as FASTA to the output
// file or stdout.
func writeRecords(recs []record.Record) error {
	entries := make(fasta.Entries, len(recs))
	for i, r := range recs {
		m := r.Meta()
		header := m.ID
		if m.Description != "" {
			header += " " + m.Description
		}
		entries[i] = fasta.Entry{Header: header, Seq: r.String()}
	}

	f := os.Stdout
	if *outF != "" {
		var err error
		f, err = os.Create(*outF)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return fasta.Write(f, entries, *width)
}

// writeJSON writes v as JSON to the output file or stdout.
func writeJSON(v interface{}) error {
	f := os.Stdout
	if *outF != "" {
		var err error
		f, err = os.Create(*outF)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return json.NewEncoder(f).Encode(v)
}

// loadCodonMap reads the codon map file; without the flag the map
// derived from the genetic code is used.
func loadCodonMap() (*gencode.CodonMap, error) {
	if *cmapF == "" {
		gc, ok := gencode.GeneticCodes[*gcodeID]
		if !ok {
			return nil, fmt.Errorf("unknown genetic code id %d", *gcodeID)
		}
		log.Infof("Using the codon map derived from %s", gc)
		return gencode.FromGeneticCode(gc), nil
	}
	f, err := os.Open(*cmapF)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gencode.ReadCodonMap(f, nil)
}

func translateCmd(summary *RunSummary) error {
	recs, err := readRecords(bio.NT)
	if err != nil {
		return err
	}
	for i := range recs {
		recs[i], err = recs[i].Translated()
		if err != nil {
			return fmt.Errorf("%s: %v", recs[i].Meta().ID, err)
		}
	}
	summary.Sequences = len(recs)
	return writeRecords(recs)
}

func backTranslateCmd(summary *RunSummary) error {
	m, err := loadCodonMap()
	if err != nil {
		return err
	}
	recs, err := readRecords(bio.AA)
	if err != nil {
		return err
	}
	for i := range recs {
		recs[i], err = recs[i].WithCodonMap(m).BackTranslated()
		if err != nil {
			return fmt.Errorf("%s: %v", recs[i].Meta().ID, err)
		}
	}
	summary.Sequences = len(recs)
	return writeRecords(recs)
}

func sliceCmd(summary *RunSummary) error {
	d, err := bio.ParseDomain(*domainF)
	if err != nil {
		return err
	}
	recs, err := readRecords(d)
	if err != nil {
		return err
	}
	for i := range recs {
		stop := *sliceStop
		if stop < 0 {
			stop = recs[i].Len()
		}
		recs[i], err = recs[i].Slice(*sliceStart, stop)
		if err != nil {
			return fmt.Errorf("%s: %v", recs[i].Meta().ID, err)
		}
	}
	summary.Sequences = len(recs)
	return writeRecords(recs)
}

func padCmd(summary *RunSummary) error {
	d, err := bio.ParseDomain(*domainF)
	if err != nil {
		return err
	}
	recs, err := readRecords(d)
	if err != nil {
		return err
	}
	n := *padLength
	if n == 0 {
		for _, r := range recs {
			if r.Len() > n {
				n = r.Len()
			}
		}
		log.Infof("Padding to the longest sequence: %d", n)
	}
	for i := range recs {
		recs[i], err = recs[i].PadTo(n)
		if err != nil {
			return fmt.Errorf("%s: %v", recs[i].Meta().ID, err)
		}
	}
	summary.Sequences = len(recs)
	return writeRecords(recs)
}

// oneHotOut is the JSON form of one one-hot encoded sequence.
type oneHotOut struct {
	// ID is the record identifier.
	ID string `json:"id"`
	// Alphabet lists the column symbols in order.
	Alphabet string `json:"alphabet"`
	// Data holds one row per sequence position.
	Data [][]float64 `json:"data"`
}

func oneHotCmd(summary *RunSummary, threads int) error {
	d, err := bio.ParseDomain(*domainF)
	if err != nil {
		return err
	}
	recs, err := readRecords(d)
	if err != nil {
		return err
	}
	views := make([]bio.View, len(recs))
	for i, r := range recs {
		views[i] = r.View()
	}
	ms, err := numeric.OneHotBatch(views, threads)
	if err != nil {
		return err
	}
	out := make([]oneHotOut, len(ms))
	for i, m := range ms {
		out[i] = oneHotOut{
			ID:       recs[i].Meta().ID,
			Alphabet: views[i].Alphabet().String(),
			Data:     matrixRows(m),
		}
	}
	summary.Sequences = len(recs)
	return writeJSON(out)
}

// indexOut is the JSON form of one index encoded sequence.
type indexOut struct {
	// ID is the record identifier.
	ID string `json:"id"`
	// Indices are the alphabet indices, one per position.
	Indices []int `json:"indices"`
}

func indexCmd(summary *RunSummary, threads int) error {
	d, err := bio.ParseDomain(*domainF)
	if err != nil {
		return err
	}
	recs, err := readRecords(d)
	if err != nil {
		return err
	}
	views := make([]bio.View, len(recs))
	for i, r := range recs {
		views[i] = r.View()
	}
	m, err := numeric.IndexBatch(views, threads)
	if err != nil {
		return err
	}
	out := make([]indexOut, len(recs))
	for i := range recs {
		out[i] = indexOut{ID: recs[i].Meta().ID, Indices: intRow(m, i)}
	}
	summary.Sequences = len(recs)
	return writeJSON(out)
}

// matrixRows converts a dense matrix to a row slice.
func matrixRows(m *mat64.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	rows, _ := m.Dims()
	data := make([][]float64, rows)
	for i := range data {
		data[i] = mat64.Row(nil, i, m)
	}
	return data
}

// intRow extracts row i of the index matrix as ints.
func intRow(m *mat64.Dense, i int) []int {
	if m == nil {
		return nil
	}
	row := mat64.Row(nil, i, m)
	idx := make([]int, len(row))
	for j, x := range row {
		idx[j] = int(x)
	}
	return idx
}

// freqOut is the JSON form of a per-position frequency profile.
type freqOut struct {
	// Alphabet lists the column symbols in order.
	Alphabet string `json:"alphabet"`
	// Consensus is the most frequent symbol per position.
	Consensus string `json:"consensus"`
	// Information is the information content per position in bits.
	Information []float64 `json:"information"`
	// Frequencies holds one row of symbol frequencies per position.
	Frequencies [][]float64 `json:"frequencies"`
}

func freqCmd(summary *RunSummary) error {
	d, err := bio.ParseDomain(*domainF)
	if err != nil {
		return err
	}
	recs, err := readRecords(d)
	if err != nil {
		return err
	}
	views := make([]bio.View, len(recs))
	for i, r := range recs {
		views[i] = r.View()
	}
	freq, err := logo.Frequencies(views)
	if err != nil {
		return err
	}
	a := views[0].Alphabet()
	cons, err := logo.Consensus(freq, a)
	if err != nil {
		return err
	}
	out := freqOut{
		Alphabet:    a.String(),
		Consensus:   cons,
		Information: logo.Information(freq),
		Frequencies: matrixRows(freq),
	}
	summary.Sequences = len(views)
	return writeJSON(out)
}

func alignCmd(summary *RunSummary) error {
	d, err := bio.ParseDomain(*domainF)
	if err != nil {
		return err
	}
	recs, err := readRecords(d)
	if err != nil {
		return err
	}
	aligner := align.New(*toolF, (*toolArgs)...)
	aligner.Timeout = *timeoutF
	log.Infof("Aligning %d sequences with %s", len(recs), *toolF)
	recs, err = aligner.Records(context.Background(), recs)
	if err != nil {
		return err
	}
	summary.Sequences = len(recs)
	return writeRecords(recs)
}

// openDB opens the record database given by the db flag.
func openDB() (*store.DB, error) {
	if *dbF == "" {
		return nil, fmt.Errorf("operation %s requires a database file (--db)", *op)
	}
	return store.Open(*dbF)
}

func putCmd(summary *RunSummary) error {
	d, err := bio.ParseDomain(*domainF)
	if err != nil {
		return err
	}
	recs, err := readRecords(d)
	if err != nil {
		return err
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	ids := make([]string, len(recs))
	for i, r := range recs {
		if err := db.Put(r); err != nil {
			return fmt.Errorf("%s: %v", r.Meta().ID, err)
		}
		ids[i] = r.Meta().ID
	}
	log.Noticef("Stored %d records", len(recs))
	summary.Sequences = len(recs)
	summary.Records = ids
	return nil
}

func getCmd(summary *RunSummary) error {
	if *input == "" {
		return errors.New("operation get requires a record id")
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	r, err := db.Get(*input)
	if err != nil {
		return err
	}
	summary.Sequences = 1
	summary.Records = []string{*input}
	return writeRecords([]record.Record{r})
}

func listCmd(summary *RunSummary) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	ids, err := db.List()
	if err != nil {
		return err
	}

	f := os.Stdout
	if *outF != "" {
		f, err = os.Create(*outF)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	for _, id := range ids {
		fmt.Fprintln(f, id)
	}
	summary.Records = ids
	return nil
}
