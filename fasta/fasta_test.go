package fasta

import (
	"bytes"
	"strings"
	"testing"
)

const smallFasta = ">seq1 first protein coding region\r\n" +
	"ATG TCT\r\n" +
	"aaaggt\n" +
	"\n" +
	">seq2\n" +
	"ATGTCTAAAGGTGAA\n"

func TestRead(tst *testing.T) {
	entries, err := Read(strings.NewReader(smallFasta))
	if err != nil {
		tst.Fatal("reading fasta:", err)
	}
	if len(entries) != 2 {
		tst.Fatal("wrong number of entries", len(entries))
	}
	if entries[0].Header != "seq1 first protein coding region" {
		tst.Error("wrong header", entries[0].Header)
	}
	if entries[0].Seq != "ATGTCTAAAGGT" {
		tst.Error("sequence not uppercased and joined", entries[0].Seq)
	}
	if entries[1].Header != "seq2" {
		tst.Error("wrong header", entries[1].Header)
	}
	if entries[1].Seq != "ATGTCTAAAGGTGAA" {
		tst.Error("wrong sequence", entries[1].Seq)
	}
}

func TestReadEmpty(tst *testing.T) {
	entries, err := Read(strings.NewReader(""))
	if err != nil {
		tst.Error("unexpected error", err)
	}
	if len(entries) != 0 {
		tst.Error("entries from empty input", entries)
	}
}

func TestReadNoHeader(tst *testing.T) {
	_, err := Read(strings.NewReader("ATGTCT\n>seq1\nATG\n"))
	if err == nil {
		tst.Error("no error for sequence data before the first header")
	}
}

func TestSplitHeader(tst *testing.T) {
	id, desc := SplitHeader("seq1 first protein coding region")
	if id != "seq1" || desc != "first protein coding region" {
		tst.Error("wrong split", id, desc)
	}
	id, desc = SplitHeader("seq2")
	if id != "seq2" || desc != "" {
		tst.Error("wrong split without description", id, desc)
	}
	id, desc = SplitHeader("seq3   ")
	if id != "seq3" || desc != "" {
		tst.Error("trailing blanks not trimmed", id, desc)
	}
}

func TestWrap(tst *testing.T) {
	if s := Wrap("ATGTCTA", 3); s != "ATG\nTCT\nA\n" {
		tst.Error("wrong wrapping", s)
	}
	if s := Wrap("ATGTCT", 3); s != "ATG\nTCT\n" {
		tst.Error("wrong wrapping at an exact multiple", s)
	}
	if s := Wrap("", 3); s != "" {
		tst.Error("wrapped empty sequence is not empty", s)
	}
}

func TestEntryString(tst *testing.T) {
	e := Entry{Header: "seq1 test", Seq: "ATGTCT"}
	if e.String() != ">seq1 test\nATGTCT\n" {
		tst.Error("wrong fasta rendering", e.String())
	}
}

func TestWriteRoundTrip(tst *testing.T) {
	entries := Entries{
		{Header: "seq1 first", Seq: strings.Repeat("ATGTC", 30)},
		{Header: "seq2", Seq: "ATG"},
	}
	var buf bytes.Buffer
	if err := Write(&buf, entries, 10); err != nil {
		tst.Fatal("writing fasta:", err)
	}
	back, err := Read(&buf)
	if err != nil {
		tst.Fatal("reading fasta back:", err)
	}
	if len(back) != len(entries) {
		tst.Fatal("wrong number of entries", len(back))
	}
	for i := range entries {
		if back[i] != entries[i] {
			tst.Error("entry changed in the round trip", back[i], entries[i])
		}
	}
}

func TestWriteDefaultWidth(tst *testing.T) {
	entries := Entries{{Header: "seq1", Seq: strings.Repeat("A", 100)}}
	var buf bytes.Buffer
	if err := Write(&buf, entries, 0); err != nil {
		tst.Fatal("writing fasta:", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 || len(lines[1]) != 80 {
		tst.Error("sequence not wrapped at the default width", lines)
	}
}
