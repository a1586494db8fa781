package dump

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/retroenv/negodump/internal/nefile"
	"github.com/retroenv/retrogolib/assert"
)

// buildTestNE creates a minimal 1-segment NE file with the DATA and
// ALLOCATED flags set and one relocation entry.
func buildTestNE(t *testing.T) []byte {
	t.Helper()

	data := make([]byte, 154)
	putUint16 := func(offset int, value uint16) {
		binary.LittleEndian.PutUint16(data[offset:], value)
	}

	putUint16(0, 0x5A4D)                           // e_magic "MZ"
	binary.LittleEndian.PutUint32(data[0x3C:], 64) // e_lfanew

	putUint16(64, 0x454E)  // NE signature
	putUint16(64+28, 1)    // SegmentTableEntryCount
	putUint16(64+30, 1)    // ModuleTableEntryCount
	putUint16(64+34, 64)   // SegmentTableOffset -> file 128
	putUint16(64+40, 72)   // ModuleReferenceTableOffset -> file 136
	putUint16(64+42, 74)   // ImportTableOffset -> file 138
	putUint16(64+50, 4)    // Alignment, 16 byte sectors

	// segment table: offset sector 8 -> file 128... use sector 9 (file 144)
	putUint16(128, 9)
	putUint16(130, 0)                                  // zero length data
	putUint16(132, 0x0003|nefile.SegmentFlagRelocData) // DATA, ALLOCATED, RELOC_DATA
	putUint16(134, 16)

	putUint16(136, 1) // module reference

	data[138] = 0 // reserved leading byte
	data[139] = 6
	copy(data[140:], "KERNEL")

	// relocation data at 9<<4 + 0 = 144
	putUint16(144, 1)
	data[146] = 3
	data[147] = 1
	putUint16(148, 0x0010)
	putUint16(150, 0x0001)
	putUint16(152, 0x002A)

	return data
}

func TestWrite(t *testing.T) {
	file, err := nefile.New(buildTestNE(t))
	assert.NoError(t, err)

	var buf bytes.Buffer
	writer := New(file, &buf, Options{})
	assert.NoError(t, writer.Write())

	output := buf.String()

	t.Run("header records", func(t *testing.T) {
		assert.True(t, strings.Contains(output, "[IMAGE_DOS_HEADER]"))
		assert.True(t, strings.Contains(output, "e_magic:"))
		assert.True(t, strings.Contains(output, "0x5A4D"))
		assert.True(t, strings.Contains(output, "[IMAGE_NE_HEADER]"))
		assert.True(t, strings.Contains(output, "SegmentTableEntryCount:"))
	})

	t.Run("tables", func(t *testing.T) {
		assert.True(t, strings.Contains(output, "[Imported name table]"))
		assert.True(t, strings.Contains(output, "KERNEL"))
		assert.True(t, strings.Contains(output, "[Module reference table]"))
	})

	t.Run("segments with decoded flags", func(t *testing.T) {
		assert.True(t, strings.Contains(output, "[IMAGE_SEGMENT_HEADER]"))
		assert.True(t, strings.Contains(output, "Flags: DATA, ALLOCATED, RELOC_DATA"))
		assert.True(t, strings.Contains(output, "File pos: 00000090"))
	})

	t.Run("relocation entries", func(t *testing.T) {
		assert.True(t, strings.Contains(output, "Reloc data count: 1"))
		assert.True(t, strings.Contains(output, "[IMAGE_RELOC_DATA]"))
		assert.True(t, strings.Contains(output, "AddressType:"))
	})
}

func TestWriteSegmentData(t *testing.T) {
	file, err := nefile.New(buildTestNE(t))
	assert.NoError(t, err)

	var buf bytes.Buffer
	writer := New(file, &buf, Options{SegmentData: true})
	assert.NoError(t, writer.Write())

	assert.True(t, strings.Contains(buf.String(), "Data:"))
}
