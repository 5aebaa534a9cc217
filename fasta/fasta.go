// Package fasta reads and writes sequences in FASTA format.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Entry is a single FASTA record: the header line without the '>'
// prefix and the sequence with whitespace removed.
type Entry struct {
	Header string
	Seq    string
}

// Entries is an ordered FASTA file content.
type Entries []Entry

// Read parses FASTA entries from a reader. Sequence lines are
// uppercased and joined; blank lines are skipped.
func Read(rd io.Reader) (Entries, error) {
	entries := make(Entries, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			entries = append(entries, Entry{Header: strings.TrimSpace(line[1:])})
		} else {
			if len(entries) == 0 {
				return nil, errors.New("sequence data before the first header")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			entries[len(entries)-1].Seq += line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// SplitHeader splits a FASTA header into the ID (the first word) and
// the description (the rest).
func SplitHeader(header string) (id, desc string) {
	parts := strings.SplitN(header, " ", 2)
	id = parts[0]
	if len(parts) > 1 {
		desc = strings.TrimSpace(parts[1])
	}
	return id, desc
}

// Wrap breaks a sequence into lines of n characters or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns the entry in FASTA format.
func (e Entry) String() string {
	return ">" + e.Header + "\n" + Wrap(e.Seq, 80)
}

// Write writes entries in FASTA format, wrapping sequence lines at
// width characters (80 when width <= 0).
func Write(w io.Writer, entries Entries, width int) error {
	if width <= 0 {
		width = 80
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, ">%s\n%s", e.Header, Wrap(e.Seq, width)); err != nil {
			return err
		}
	}
	return nil
}
