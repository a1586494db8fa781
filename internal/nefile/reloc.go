package nefile

import "encoding/binary"

var relocationEntryLayout = Layout{
	Name: "IMAGE_RELOC_DATA",
	Fields: []Field{
		{Uint8, "AddressType", 0},
		{Uint8, "RelocType", 0},
		{Uint16, "Offset", 0},
		{Uint16, "Target1", 0},
		{Uint16, "Target2", 0},
	},
}

// RelocationEntry is one decoded 8 byte relocation record of a segment.
type RelocationEntry struct {
	Record
}

// AddressType returns the address type of the fix-up location.
func (r RelocationEntry) AddressType() uint8 {
	return uint8(r.Uint("AddressType"))
}

// RelocType returns the relocation type.
func (r RelocationEntry) RelocType() uint8 {
	return uint8(r.Uint("RelocType"))
}

// Offset returns the fix-up offset within the segment.
func (r RelocationEntry) Offset() int {
	return int(r.Uint("Offset"))
}

// Target1 returns the first relocation target field.
func (r RelocationEntry) Target1() uint16 {
	return uint16(r.Uint("Target1"))
}

// Target2 returns the second relocation target field.
func (r RelocationEntry) Target2() uint16 {
	return uint16(r.Uint("Target2"))
}

// parseRelocations decodes the per-segment relocation tables. The returned
// slice is index-aligned with the segment table: segments without the
// RELOC_DATA flag get a nil slot. For flagged segments the relocation data
// starts right after the segment's raw data with a 2 byte entry count.
func parseRelocations(data []byte, header NEHeader, segments []SegmentEntry) ([][]RelocationEntry, error) {
	entrySize := relocationEntryLayout.Size()
	tables := make([][]RelocationEntry, len(segments))

	for i, segment := range segments {
		if segment.Flags()&SegmentFlagRelocData == 0 {
			continue
		}

		segmentOffset := segment.Offset() << header.Alignment()
		countOffset := segmentOffset + segment.Length()
		countData, err := slice(data, countOffset, 2)
		if err != nil {
			return nil, err
		}
		count := int(binary.LittleEndian.Uint16(countData))

		table := make([]RelocationEntry, 0, count)
		for j := 0; j < count; j++ {
			entryOffset := countOffset + 2 + entrySize*j
			entryData, err := slice(data, entryOffset, entrySize)
			if err != nil {
				return nil, err
			}
			record, err := decodeRecord(relocationEntryLayout, entryData, entryOffset)
			if err != nil {
				return nil, err
			}
			table = append(table, RelocationEntry{Record: record})
		}
		tables[i] = table
	}

	return tables, nil
}
