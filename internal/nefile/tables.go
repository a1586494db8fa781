package nefile

import "encoding/binary"

var segmentEntryLayout = Layout{
	Name: "IMAGE_SEGMENT_HEADER",
	Fields: []Field{
		{Uint16, "Offset", 0},
		{Uint16, "Length", 0},
		{Uint16, "Flags", 0},
		{Uint16, "MinAllocSize", 0},
	},
}

// SegmentEntry is one decoded 8 byte segment table record. The logical
// segment number is the index of the entry in the segment table.
type SegmentEntry struct {
	Record
}

// Offset returns the segment data offset in alignment units. The byte
// offset in the file is Offset << NEHeader.Alignment.
func (s SegmentEntry) Offset() int {
	return int(s.Uint("Offset"))
}

// Length returns the byte length of the segment data in the file.
func (s SegmentEntry) Length() int {
	return int(s.Uint("Length"))
}

// Flags returns the raw segment flag bitmask.
func (s SegmentEntry) Flags() uint16 {
	return uint16(s.Uint("Flags"))
}

// MinAllocSize returns the minimum allocation size of the segment.
func (s SegmentEntry) MinAllocSize() int {
	return int(s.Uint("MinAllocSize"))
}

// parseImportedNames decodes the imported-name table: Pascal-style strings,
// one length byte followed by that many payload bytes. The table starts one
// byte past the stored offset, entry 0 of the table is reserved. The loop
// runs exactly count times, the table has no terminator.
func parseImportedNames(data []byte, neOffset int, header NEHeader) ([]string, error) {
	cursor := neOffset + header.ImportTableOffset() + 1
	count := header.ModuleTableEntryCount()

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lengthByte, err := slice(data, cursor, 1)
		if err != nil {
			return nil, err
		}
		n := int(lengthByte[0])

		payload, err := slice(data, cursor+1, n)
		if err != nil {
			return nil, err
		}
		names = append(names, string(payload))
		cursor += n + 1
	}
	return names, nil
}

// parseModuleReferences decodes the module-reference table, an array of
// little-endian 2 byte indices into the imported-name table.
func parseModuleReferences(data []byte, neOffset int, header NEHeader) ([]uint16, error) {
	start := neOffset + header.ModuleReferenceTableOffset()
	count := header.ModuleTableEntryCount()

	table, err := slice(data, start, count*2)
	if err != nil {
		return nil, err
	}

	references := make([]uint16, count)
	for i := range references {
		references[i] = binary.LittleEndian.Uint16(table[i*2:])
	}
	return references, nil
}

// parseSegmentTable decodes the segment table in file order.
func parseSegmentTable(data []byte, neOffset int, header NEHeader) ([]SegmentEntry, error) {
	start := neOffset + header.SegmentTableOffset()
	count := header.SegmentTableEntryCount()
	entrySize := segmentEntryLayout.Size()

	segments := make([]SegmentEntry, 0, count)
	for i := 0; i < count; i++ {
		entryOffset := start + entrySize*i
		entryData, err := slice(data, entryOffset, entrySize)
		if err != nil {
			return nil, err
		}
		record, err := decodeRecord(segmentEntryLayout, entryData, entryOffset)
		if err != nil {
			return nil, err
		}
		segments = append(segments, SegmentEntry{Record: record})
	}
	return segments, nil
}
