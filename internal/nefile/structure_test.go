package nefile

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var testLayout = Layout{
	Name: "TEST_STRUCT",
	Fields: []Field{
		{Uint8, "ByteField", 0},
		{Uint16, "WordField", 0},
		{Uint32, "DwordField", 0},
		{Blob, "Reserved", 3},
	},
}

func TestLayoutSize(t *testing.T) {
	assert.Equal(t, 10, testLayout.Size())
	assert.Equal(t, 64, dosHeaderLayout.Size())
	assert.Equal(t, 64, neHeaderLayout.Size())
	assert.Equal(t, 8, segmentEntryLayout.Size())
	assert.Equal(t, 8, relocationEntryLayout.Size())
}

func TestDecodeRecord(t *testing.T) {
	data := []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0xAA, 0xBB, 0xCC,
	}

	record, err := decodeRecord(testLayout, data, 0x40)
	assert.NoError(t, err)

	assert.Equal(t, uint32(0x01), record.Uint("ByteField"))
	assert.Equal(t, uint32(0x0302), record.Uint("WordField"))
	assert.Equal(t, uint32(0x07060504), record.Uint("DwordField"))
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, record.Bytes("Reserved"))
	assert.Equal(t, 0x40, record.FileOffset)
}

func TestDecodeRecordInsufficientData(t *testing.T) {
	data := make([]byte, testLayout.Size()-1)

	_, err := decodeRecord(testLayout, data, 0x80)
	assert.True(t, errors.Is(err, ErrInsufficientData))

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 0x80, formatErr.Offset)
}

func TestDecodeRecordIgnoresTrailingBytes(t *testing.T) {
	data := make([]byte, testLayout.Size()+5)
	data[0] = 0x7F

	record, err := decodeRecord(testLayout, data, 0)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x7F), record.Uint("ByteField"))
}
