package nefile

// File is the decoded representation of a New Executable. It is built once
// by New from an immutable input buffer and is read-only afterwards, safe
// for concurrent read use without synchronization.
type File struct {
	DOSHeader        DOSHeader
	NEHeader         NEHeader
	NEHeaderOffset   int
	ImportedNames    []string
	ModuleReferences []uint16
	Segments         []SegmentEntry

	relocations [][]RelocationEntry
	data        []byte
}

// New parses a New Executable from the full file contents. Any magic
// mismatch or bounds violation aborts the whole decode, there is no
// partial result. The buffer is retained for SegmentData.
func New(data []byte) (*File, error) {
	dosHeader, neHeader, neOffset, err := parseHeaders(data)
	if err != nil {
		return nil, err
	}

	importedNames, err := parseImportedNames(data, neOffset, neHeader)
	if err != nil {
		return nil, err
	}

	moduleReferences, err := parseModuleReferences(data, neOffset, neHeader)
	if err != nil {
		return nil, err
	}

	segments, err := parseSegmentTable(data, neOffset, neHeader)
	if err != nil {
		return nil, err
	}

	relocations, err := parseRelocations(data, neHeader, segments)
	if err != nil {
		return nil, err
	}

	return &File{
		DOSHeader:        dosHeader,
		NEHeader:         neHeader,
		NEHeaderOffset:   neOffset,
		ImportedNames:    importedNames,
		ModuleReferences: moduleReferences,
		Segments:         segments,
		relocations:      relocations,
		data:             data,
	}, nil
}

// Relocations returns the relocation table of segment index and whether the
// segment carries one. The second return is false for segments without the
// RELOC_DATA flag.
func (f *File) Relocations(index int) ([]RelocationEntry, bool) {
	table := f.relocations[index]
	return table, table != nil
}

// SegmentOffset returns the absolute file offset of the raw data of segment
// index, computed from the stored aligned offset each call.
func (f *File) SegmentOffset(index int) int {
	return f.Segments[index].Offset() << f.NEHeader.Alignment()
}

// SegmentData returns the raw data bytes of segment index, re-sliced from
// the original buffer on demand.
func (f *File) SegmentData(index int) ([]byte, error) {
	return slice(f.data, f.SegmentOffset(index), f.Segments[index].Length())
}
