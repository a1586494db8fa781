// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // input NE file
	Output string // output dump file, stdout if empty
	Batch  string // batch pattern, e.g. *.exe
}

// Flags contains behavior options.
type Flags struct {
	SegmentData bool // hex-dump raw segment data bytes
	Debug       bool // enable debug logging
	Quiet       bool // quiet mode
}

// Program options of the dumper.
type Program struct {
	Parameters
	Flags
}
