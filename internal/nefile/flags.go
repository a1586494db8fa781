package nefile

import "strings"

// Segment flag bits tested by the decoder.
const (
	SegmentFlagRelocData = 0x0100
)

// FlagName is one named flag bit. Tables of FlagName keep the declaration
// order of the format documentation, consumers rely on that order.
type FlagName struct {
	Name  string
	Value uint16
}

// SegmentFlags lists all documented segment flag bits in declaration order.
// READONLY shares its bit with EXECUTEONLY, the meaning depends on the
// segment being code or data.
var SegmentFlags = []FlagName{
	{"NE_SEGFLAGS_DATA", 0x0001},
	{"NE_SEGFLAGS_ALLOCATED", 0x0002},
	{"NE_SEGFLAGS_LOADED", 0x0004},
	{"NE_SEGFLAGS_ITERATED", 0x0008},
	{"NE_SEGFLAGS_MOVEABLE", 0x0010},
	{"NE_SEGFLAGS_SHAREABLE", 0x0020},
	{"NE_SEGFLAGS_PRELOAD", 0x0040},
	{"NE_SEGFLAGS_EXECUTEONLY", 0x0080},
	{"NE_SEGFLAGS_READONLY", 0x0080},
	{"NE_SEGFLAGS_RELOC_DATA", SegmentFlagRelocData},
	{"NE_SEGFLAGS_SELFLOAD", 0x0800},
	{"NE_SEGFLAGS_DISCARDABLE", 0x1000},
	{"NE_SEGFLAGS_32BIT", 0x2000},
}

// RetrieveFlags filters a flag table by name prefix and strips the prefix
// from the returned names, preserving declaration order.
func RetrieveFlags(flags []FlagName, prefix string) []FlagName {
	var matched []FlagName
	for _, flag := range flags {
		if strings.HasPrefix(flag.Name, prefix) {
			matched = append(matched, FlagName{
				Name:  flag.Name[len(prefix):],
				Value: flag.Value,
			})
		}
	}
	return matched
}

// FlagNames expands a bitmask into the names of all set flags of the table,
// prefix-stripped and in declaration order.
func FlagNames(flags []FlagName, prefix string, mask uint16) []string {
	var names []string
	for _, flag := range RetrieveFlags(flags, prefix) {
		if mask&flag.Value != 0 {
			names = append(names, flag.Name)
		}
	}
	return names
}
