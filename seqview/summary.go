package main

// RunSummary stores summary information for one seqview invocation.
type RunSummary struct {
	// Version stores seqview version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Op is the operation performed.
	Op string `json:"op"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// Sequences is the number of sequences processed.
	Sequences int `json:"sequences,omitempty"`
	// Records is the list of record ids touched by a database operation.
	Records []string `json:"records,omitempty"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
