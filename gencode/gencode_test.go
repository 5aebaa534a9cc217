package gencode

import "testing"

func TestTables(tst *testing.T) {
	if len(GeneticCodes) != 27 {
		tst.Error("Wrong number of genetic codes:", len(GeneticCodes))
	}
	for id, gc := range GeneticCodes {
		if gc.ID != id {
			tst.Error("Table id mismatch:", id, gc.ID)
		}
		if len(gc.letters) != nCodons {
			tst.Error("Wrong table size for id", id)
		}
	}
	gc := GeneticCodes[1]
	if gc.Name != "Standard" || gc.ShortName != "SGC0" {
		tst.Error("Wrong standard code names:", gc.Name, gc.ShortName)
	}
}

func TestCodonEnumeration(tst *testing.T) {
	if codonAt(0) != "TTT" || codonAt(35) != "ATG" || codonAt(63) != "GGG" {
		tst.Error("Wrong codon enumeration:", codonAt(0), codonAt(35), codonAt(63))
	}
}

func TestLetter(tst *testing.T) {
	gc := GeneticCodes[1]
	for _, c := range [][2]string{
		{"TTT", "F"},
		{"ATG", "M"},
		{"TGG", "W"},
		{"GGG", "G"},
		{"TAA", "*"},
	} {
		aa, ok := gc.Letter(c[0])
		if !ok || aa != c[1][0] {
			tst.Error("Wrong translation for", c[0], "got", string(aa))
		}
	}
	if _, ok := gc.Letter("AT-"); ok {
		tst.Error("Expected no letter for a partial codon")
	}
	if _, ok := gc.Letter("atg"); ok {
		tst.Error("Expected no letter for a lowercase codon")
	}
}

func TestStops(tst *testing.T) {
	gc := GeneticCodes[1]
	stops := gc.StopCodons()
	if len(stops) != 3 || stops[0] != "TAA" || stops[1] != "TAG" || stops[2] != "TGA" {
		tst.Error("Wrong standard stop codons:", stops)
	}
	if !gc.IsStopCodon("TGA") || gc.IsStopCodon("TGG") {
		tst.Error("Wrong stop codon classification")
	}

	// the vertebrate mitochondrial code reassigns TGA and the AGR codons
	mt := GeneticCodes[2]
	if aa, _ := mt.Letter("TGA"); aa != 'W' {
		tst.Error("Expected TGA to be tryptophan in table 2, got", string(aa))
	}
	if !mt.IsStopCodon("AGA") || !mt.IsStopCodon("AGG") {
		tst.Error("Expected AGR stop codons in table 2")
	}
}

func TestStarts(tst *testing.T) {
	gc := GeneticCodes[1]
	for _, c := range []string{"TTG", "CTG", "ATG"} {
		if !gc.IsStartCodon(c) {
			tst.Error("Expected start codon:", c)
		}
	}
	if gc.IsStartCodon("TTT") {
		tst.Error("TTT must not be a start codon")
	}
}

func TestTableString(tst *testing.T) {
	if GeneticCodes[1].String() != "genetic code 1 (Standard)" {
		tst.Error("Wrong description:", GeneticCodes[1].String())
	}
}
