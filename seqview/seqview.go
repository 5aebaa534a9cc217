/*

Seqview converts biological sequences between their nucleotide and
amino acid representations and between text and numeric encodings.

The basic usage of seqview looks like this:

	seqview translate cds.fst

, this will translate the coding sequences using the standard genetic
code and print the protein sequences as FASTA.

Back-translation needs a codon map:

	seqview backtranslate protein.fst --cmap map.json

Records can be kept in a catalog between runs:

	seqview put cds.fst --db catalog.db
	seqview get seq1 --db catalog.db

To see all the options run:

	seqview --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/op/go-logging"

	"gopkg.in/alecthomas/kingpin.v2"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("seqview")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("seqview", "biological sequence representation converter").Version(version)

	// operation and input
	op = app.Arg("op", "operation to perform "+
		"(translate: nucleotide to amino acid, "+
		"backtranslate: amino acid to nucleotide using a codon map, "+
		"slice: extract a half-open range, "+
		"pad: extend sequences with gaps, "+
		"onehot: one-hot encode, "+
		"index: encode as alphabet indices, "+
		"freq: per-position frequencies and consensus, "+
		"align: run an external aligner, "+
		"put: store records in a database, "+
		"get: load one record from a database, "+
		"list: list stored record ids"+
		")").Required().
		Enum("translate", "backtranslate", "slice", "pad", "onehot",
			"index", "freq", "align", "put", "get", "list")
	input = app.Arg("input", "input FASTA file (record id for get, unused for list)").String()

	// conversion parameters
	gcodeID = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()
	cmapF   = app.Flag("cmap", "codon map file in JSON (residue to codon) for back-translation").ExistingFile()
	domainF = app.Flag("domain", "input sequence domain (nt or aa)").Default("nt").String()

	// slice and pad parameters
	sliceStart = app.Flag("start", "slice start position, zero based").Default("0").Int()
	sliceStop  = app.Flag("stop", "slice stop position, exclusive; -1 means the sequence end").Default("-1").Int()
	padLength  = app.Flag("length", "pad target length; 0 means the longest input sequence").Default("0").Int()

	// alignment parameters
	toolF    = app.Flag("tool", "external aligner binary").Default("mafft").String()
	toolArgs = app.Flag("targ", "extra argument passed to the aligner (can be repeated)").Strings()
	timeoutF = app.Flag("timeout", "external aligner timeout").Default("10m").Duration()

	// database parameters
	dbF = app.Flag("db", "record database file (put, get and list)").String()

	// technical
	nThreads   = app.Flag("nt", "number of threads to use").Int()
	cpuProfile = app.Flag("cpuprofile", "write cpu profile to file").String()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	outF     = app.Flag("out", "write the result to a file instead of stdout").String()
	width    = app.Flag("width", "FASTA line width").Default("80").Int()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "seqview")
	logging.SetLevel(level, "align")
	logging.SetLevel(level, "store")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	runtime.GOMAXPROCS(*nThreads)

	effectiveNThreads := runtime.GOMAXPROCS(0)
	log.Infof("Using threads: %d.\n", effectiveNThreads)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	summary := run(effectiveNThreads)
	summary.NThreads = effectiveNThreads
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
