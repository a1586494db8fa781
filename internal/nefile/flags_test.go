package nefile

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRetrieveFlags(t *testing.T) {
	flags := RetrieveFlags(SegmentFlags, "NE_SEGFLAGS_")
	assert.Len(t, flags, len(SegmentFlags))

	// declaration order and stripped prefix are preserved
	assert.Equal(t, FlagName{"DATA", 0x0001}, flags[0])
	assert.Equal(t, FlagName{"ALLOCATED", 0x0002}, flags[1])
	assert.Equal(t, FlagName{"32BIT", 0x2000}, flags[len(flags)-1])

	t.Run("non-matching prefix", func(t *testing.T) {
		assert.Len(t, RetrieveFlags(SegmentFlags, "NE_RESFLAGS_"), 0)
	})
}

func TestFlagNames(t *testing.T) {
	tests := []struct {
		name string
		mask uint16
		want []string
	}{
		{"no bits set", 0x0000, nil},
		{"data and allocated", 0x0003, []string{"DATA", "ALLOCATED"}},
		{"shared bit expands to both names", 0x0080, []string{"EXECUTEONLY", "READONLY"}},
		{"reloc data", 0x0100, []string{"RELOC_DATA"}},
		{"all documented bits", 0x3BFF, []string{
			"DATA", "ALLOCATED", "LOADED", "ITERATED", "MOVEABLE", "SHAREABLE",
			"PRELOAD", "EXECUTEONLY", "READONLY", "RELOC_DATA", "SELFLOAD",
			"DISCARDABLE", "32BIT",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := FlagNames(SegmentFlags, "NE_SEGFLAGS_", tt.mask)
			assert.Equal(t, tt.want, names)
		})
	}
}
