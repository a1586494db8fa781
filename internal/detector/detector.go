// Package detector handles executable format detection.
package detector

import (
	"encoding/binary"

	"github.com/retroenv/retrogolib/log"
)

// Format is a detected executable format.
type Format string

// Detectable executable formats.
const (
	FormatNE      Format = "ne"      // DOS stub with New Executable header
	FormatMZ      Format = "mz"      // plain DOS executable, no NE header
	FormatUnknown Format = "unknown" // no DOS stub magic
)

const (
	dosSignature  = 0x5A4D
	neSignature   = 0x454E
	lfanewOffset  = 0x3C
	dosHeaderSize = 64
)

// Detector handles executable format detection from the file contents.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect sniffs the executable format of a buffer without running the full
// decoder: it only checks the DOS stub magic and the NE marker behind the
// stub's e_lfanew field. Used for log output and friendlier error messages,
// the decoder revalidates everything.
func (d *Detector) Detect(data []byte) Format {
	format := detect(data)
	d.logger.Debug("Detected executable format",
		log.String("format", string(format)))
	return format
}

func detect(data []byte) Format {
	if len(data) < dosHeaderSize ||
		binary.LittleEndian.Uint16(data) != dosSignature {

		return FormatUnknown
	}

	neOffset := int(binary.LittleEndian.Uint32(data[lfanewOffset:]))
	if neOffset < 0 || neOffset > len(data)-2 ||
		binary.LittleEndian.Uint16(data[neOffset:]) != neSignature {

		return FormatMZ
	}
	return FormatNE
}
