// Package nefile decodes the on-disk structures of 16-bit New Executable
// (NE) files from an in-memory buffer.
package nefile

import "encoding/binary"

// FieldKind describes the primitive type of a layout field.
type FieldKind uint8

// Supported layout field primitives, all multi-byte values little-endian.
const (
	Uint8 FieldKind = iota
	Uint16
	Uint32
	Blob
)

// Field is one named field of a fixed structure layout.
type Field struct {
	Kind FieldKind
	Name string
	Size int // byte count, only used for Blob fields
}

// Layout is a declarative description of a fixed-size on-disk structure:
// an ordered list of fields decoded at increasing byte offsets with no
// implicit padding or alignment.
type Layout struct {
	Name   string
	Fields []Field
}

// Size returns the total byte size of the layout.
func (l Layout) Size() int {
	size := 0
	for _, field := range l.Fields {
		size += field.size()
	}
	return size
}

func (f Field) size() int {
	switch f.Kind {
	case Uint8:
		return 1
	case Uint16:
		return 2
	case Uint32:
		return 4
	default:
		return f.Size
	}
}

// Record is a decoded structure instance. Fields are accessible by name and
// keep their declaration order for dump output. FileOffset records where in
// the file the structure was read from, for diagnostics only.
type Record struct {
	Layout     Layout
	FileOffset int

	values map[string]uint32
	blobs  map[string][]byte
}

// Uint returns the value of a named integer field.
// Missing names return zero, layouts are static and verified by tests.
func (r Record) Uint(name string) uint32 {
	return r.values[name]
}

// Bytes returns the raw content of a named blob field.
func (r Record) Bytes(name string) []byte {
	return r.blobs[name]
}

// decodeRecord applies a layout to raw data starting at the first byte of
// the structure. It returns ErrInsufficientData wrapped with the file offset
// if the slice is shorter than the layout.
func decodeRecord(layout Layout, data []byte, fileOffset int) (Record, error) {
	if len(data) < layout.Size() {
		return Record{}, formatError(ErrInsufficientData, fileOffset)
	}

	record := Record{
		Layout:     layout,
		FileOffset: fileOffset,
		values:     make(map[string]uint32, len(layout.Fields)),
		blobs:      map[string][]byte{},
	}

	offset := 0
	for _, field := range layout.Fields {
		switch field.Kind {
		case Uint8:
			record.values[field.Name] = uint32(data[offset])
		case Uint16:
			record.values[field.Name] = uint32(binary.LittleEndian.Uint16(data[offset:]))
		case Uint32:
			record.values[field.Name] = binary.LittleEndian.Uint32(data[offset:])
		case Blob:
			record.blobs[field.Name] = data[offset : offset+field.Size]
		}
		offset += field.size()
	}

	return record, nil
}
