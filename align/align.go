// Package align runs an external multiple sequence aligner over
// sequence collections. The alignment algorithm lives in the external
// tool; this package only manages its input and output.
package align

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/op/go-logging"

	"github.com/seqlab/seqview/fasta"
	"github.com/seqlab/seqview/record"
)

var log = logging.MustGetLogger("align")

// DefaultTimeout bounds a single aligner run.
const DefaultTimeout = 10 * time.Minute

// Aligner invokes an external alignment tool, e.g. mafft. The tool
// must accept a FASTA file as its last argument and print the aligned
// FASTA to standard output.
type Aligner struct {
	// Path is the tool binary, resolved through PATH when relative.
	Path string
	// Args are extra arguments placed before the input file.
	Args []string
	// Timeout bounds one run; DefaultTimeout when zero.
	Timeout time.Duration
}

// New returns an aligner for the given tool path and extra arguments.
func New(path string, args ...string) *Aligner {
	return &Aligner{Path: path, Args: args}
}

// Align writes the entries to a temporary FASTA file, runs the tool
// and parses the aligned FASTA from its standard output. The entry
// order is preserved by the usual aligner convention.
func (a *Aligner) Align(ctx context.Context, entries fasta.Entries) (fasta.Entries, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	timeout := a.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tmp, err := os.CreateTemp("", "align-*.fasta")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if err := fasta.Write(tmp, entries, 0); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	args := append(append([]string{}, a.Args...), tmp.Name())
	log.Infof("running %s %v", a.Path, args)
	cmd := exec.CommandContext(ctx, a.Path, args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s timed out after %v", a.Path, timeout)
		}
		return nil, fmt.Errorf("%s: %v: %s", a.Path, err, stderr.String())
	}

	aligned, err := fasta.Read(&out)
	if err != nil {
		return nil, err
	}
	if len(aligned) != len(entries) {
		return nil, fmt.Errorf("aligner returned %d sequences, expected %d", len(aligned), len(entries))
	}
	return aligned, nil
}

// Records aligns the active views of a record collection. All records
// must share one active domain. Aligned sequences re-enter through
// normalization as new records; identity metadata, genetic code and
// codon map carry over, counterpart views do not (the gap structure
// changed).
func (a *Aligner) Records(ctx context.Context, recs []record.Record) ([]record.Record, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	d := recs[0].Active()
	entries := make(fasta.Entries, len(recs))
	for i, r := range recs {
		if r.Active() != d {
			return nil, fmt.Errorf("record %d: mixed active domains in one alignment", i)
		}
		header := r.Meta().ID
		if header == "" {
			header = fmt.Sprintf("seq%d", i)
		}
		entries[i] = fasta.Entry{Header: header, Seq: r.String()}
	}

	aligned, err := a.Align(ctx, entries)
	if err != nil {
		return nil, err
	}

	out := make([]record.Record, len(aligned))
	for i, e := range aligned {
		meta := recs[i].Meta()
		nr, err := record.New(record.Structured{
			ID:          meta.ID,
			Name:        meta.Name,
			Description: meta.Description,
			Seq:         e.Seq,
		}, d, recs[i].View().Alphabet())
		if err != nil {
			return nil, err
		}
		out[i] = nr.WithGeneticCode(recs[i].GeneticCode()).WithCodonMap(recs[i].CodonMap())
	}
	return out, nil
}
