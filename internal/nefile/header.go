package nefile

// Binary signatures of the DOS stub and the NE header.
const (
	dosSignature = 0x5A4D // "MZ"
	neSignature  = 0x454E // "NE"
)

var dosHeaderLayout = Layout{
	Name: "IMAGE_DOS_HEADER",
	Fields: []Field{
		{Uint16, "e_magic", 0},
		{Uint16, "e_cblp", 0},
		{Uint16, "e_cp", 0},
		{Uint16, "e_crlc", 0},
		{Uint16, "e_cparhdr", 0},
		{Uint16, "e_minalloc", 0},
		{Uint16, "e_maxalloc", 0},
		{Uint16, "e_ss", 0},
		{Uint16, "e_sp", 0},
		{Uint16, "e_csum", 0},
		{Uint16, "e_ip", 0},
		{Uint16, "e_cs", 0},
		{Uint16, "e_lfarlc", 0},
		{Uint16, "e_ovno", 0},
		{Blob, "e_res", 8},
		{Uint16, "e_oemid", 0},
		{Uint16, "e_oeminfo", 0},
		{Blob, "e_res2", 20},
		{Uint32, "e_lfanew", 0},
	},
}

var neSignatureLayout = Layout{
	Name: "IMAGE_NE_SIGNATURE",
	Fields: []Field{
		{Uint16, "Signature", 0},
	},
}

var neHeaderLayout = Layout{
	Name: "IMAGE_NE_HEADER",
	Fields: []Field{
		{Uint16, "Signature", 0},
		{Uint8, "LinkerVersion", 0},
		{Uint8, "LinkerRevision", 0},
		{Uint16, "EntryTableOffset", 0},
		{Uint16, "EntryTableSize", 0},
		{Uint32, "FileLoadCRC", 0},
		{Uint8, "ProgramFlags", 0},
		{Uint8, "ApplicationFlags", 0},
		{Uint16, "AutoDataSegmentIndex", 0},
		{Uint16, "InitialLocalHeapSize", 0},
		{Uint16, "InitialStackSize", 0},
		{Uint16, "InitialIP", 0},
		{Uint16, "InitialCS", 0},
		{Uint16, "InitialSP", 0},
		{Uint16, "InitialSS", 0},
		{Uint16, "SegmentTableEntryCount", 0},
		{Uint16, "ModuleTableEntryCount", 0},
		{Uint16, "NonresidentNameTableSize", 0},
		{Uint16, "SegmentTableOffset", 0},
		{Uint16, "ResourceTableOffset", 0},
		{Uint16, "ResidentNameTableOffset", 0},
		{Uint16, "ModuleReferenceTableOffset", 0},
		{Uint16, "ImportTableOffset", 0},
		{Uint32, "NonResidentTableOffset", 0},
		{Uint16, "MovableEntryPointCount", 0},
		{Uint16, "Alignment", 0},
		{Uint16, "ReservedSegmentCount", 0},
		{Uint8, "TargetOS", 0},
		{Uint8, "MiscFlags", 0},
		{Uint16, "FastLoadOffset", 0},
		{Uint16, "FastLoadSize", 0},
		{Uint16, "Reserved", 0},
		{Uint8, "WindowsRevision", 0},
		{Uint8, "WindowsVersion", 0},
	},
}

// DOSHeader is the decoded 64 byte DOS stub header.
type DOSHeader struct {
	Record
}

// Magic returns the DOS executable signature field.
func (h DOSHeader) Magic() uint16 {
	return uint16(h.Uint("e_magic"))
}

// NEHeaderOffset returns the file offset of the NE header (e_lfanew).
func (h DOSHeader) NEHeaderOffset() int {
	return int(h.Uint("e_lfanew"))
}

// NEHeader is the decoded 64 byte NE header. All table offsets stored in it
// are relative to the NE header's own file offset, not to file start.
type NEHeader struct {
	Record
}

// SegmentTableEntryCount returns the number of segment table entries.
func (h NEHeader) SegmentTableEntryCount() int {
	return int(h.Uint("SegmentTableEntryCount"))
}

// ModuleTableEntryCount returns the number of module table entries, which is
// also the entry count of the imported-name and module-reference tables.
func (h NEHeader) ModuleTableEntryCount() int {
	return int(h.Uint("ModuleTableEntryCount"))
}

// SegmentTableOffset returns the segment table offset relative to the NE header.
func (h NEHeader) SegmentTableOffset() int {
	return int(h.Uint("SegmentTableOffset"))
}

// ModuleReferenceTableOffset returns the module-reference table offset
// relative to the NE header.
func (h NEHeader) ModuleReferenceTableOffset() int {
	return int(h.Uint("ModuleReferenceTableOffset"))
}

// ImportTableOffset returns the imported-name table offset relative to the NE header.
func (h NEHeader) ImportTableOffset() int {
	return int(h.Uint("ImportTableOffset"))
}

// Alignment returns the segment alignment shift exponent: segment table
// offsets are stored in units of 1<<Alignment bytes.
func (h NEHeader) Alignment() uint {
	return uint(h.Uint("Alignment"))
}

// parseHeaders decodes the DOS stub header, locates and validates the NE
// signature and decodes the NE header. It returns both headers and the
// absolute file offset of the NE header.
func parseHeaders(data []byte) (DOSHeader, NEHeader, int, error) {
	dosRecord, err := decodeRecord(dosHeaderLayout, data, 0)
	if err != nil {
		return DOSHeader{}, NEHeader{}, 0, err
	}
	dosHeader := DOSHeader{Record: dosRecord}
	if dosHeader.Magic() != dosSignature {
		return DOSHeader{}, NEHeader{}, 0, formatError(ErrBadDOSMagic, 0)
	}

	neOffset := dosHeader.NEHeaderOffset()
	signatureData, err := slice(data, neOffset, neSignatureLayout.Size())
	if err != nil {
		return DOSHeader{}, NEHeader{}, 0, err
	}
	signature, err := decodeRecord(neSignatureLayout, signatureData, neOffset)
	if err != nil {
		return DOSHeader{}, NEHeader{}, 0, err
	}

	switch signature.Uint("Signature") {
	case 0:
		return DOSHeader{}, NEHeader{}, 0, formatError(ErrMissingNESignature, neOffset)
	case neSignature:
	default:
		return DOSHeader{}, NEHeader{}, 0, formatError(ErrBadNESignature, neOffset)
	}

	headerData, err := slice(data, neOffset, neHeaderLayout.Size())
	if err != nil {
		return DOSHeader{}, NEHeader{}, 0, formatError(ErrMissingNEHeader, neOffset)
	}
	neRecord, err := decodeRecord(neHeaderLayout, headerData, neOffset)
	if err != nil {
		return DOSHeader{}, NEHeader{}, 0, formatError(ErrMissingNEHeader, neOffset)
	}

	return dosHeader, NEHeader{Record: neRecord}, neOffset, nil
}
