// Package dump writes decoded NE file structures in a human readable form.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/negodump/internal/nefile"
)

const segmentFlagPrefix = "NE_SEGFLAGS_"

// Options of the dump writer.
type Options struct {
	SegmentData bool // hex-dump the raw data bytes of every segment
}

// Writer writes the decoded structures of one NE file.
type Writer struct {
	file    *nefile.File
	options Options
	writer  io.Writer
}

// New creates a new dump writer for a decoded file.
func New(file *nefile.File, writer io.Writer, options Options) *Writer {
	return &Writer{
		file:    file,
		options: options,
		writer:  writer,
	}
}

// Write dumps all decoded structures of the file.
func (w *Writer) Write() error {
	if err := w.writeRecord(w.file.DOSHeader.Record); err != nil {
		return err
	}
	if err := w.writeRecord(w.file.NEHeader.Record); err != nil {
		return err
	}
	if err := w.writeImportedNames(); err != nil {
		return err
	}
	if err := w.writeModuleReferences(); err != nil {
		return err
	}
	return w.writeSegments()
}

// writeRecord dumps all fields of a decoded structure in declaration order.
func (w *Writer) writeRecord(record nefile.Record) error {
	if err := w.printf("[%s] file offset: 0x%X\n", record.Layout.Name, record.FileOffset); err != nil {
		return err
	}
	for _, field := range record.Layout.Fields {
		var err error
		if field.Kind == nefile.Blob {
			err = w.printf("  %-28s % X\n", field.Name+":", record.Bytes(field.Name))
		} else {
			err = w.printf("  %-28s 0x%X\n", field.Name+":", record.Uint(field.Name))
		}
		if err != nil {
			return err
		}
	}
	return w.printf("\n")
}

func (w *Writer) writeImportedNames() error {
	if err := w.printf("[Imported name table]\n"); err != nil {
		return err
	}
	if err := w.printf("  %s\n", strings.Join(w.file.ImportedNames, ", ")); err != nil {
		return err
	}
	return w.printf("\n")
}

func (w *Writer) writeModuleReferences() error {
	if err := w.printf("[Module reference table]\n"); err != nil {
		return err
	}
	for i, reference := range w.file.ModuleReferences {
		if err := w.printf("  %d: 0x%04X\n", i, reference); err != nil {
			return err
		}
	}
	return w.printf("\n")
}

func (w *Writer) writeSegments() error {
	if err := w.printf("[NE Segments]\n\n"); err != nil {
		return err
	}

	for i, segment := range w.file.Segments {
		if err := w.writeRecord(segment.Record); err != nil {
			return err
		}

		flags := nefile.FlagNames(nefile.SegmentFlags, segmentFlagPrefix, segment.Flags())
		if err := w.printf("  Flags: %s\n", strings.Join(flags, ", ")); err != nil {
			return err
		}
		if err := w.printf("  File pos: %08X\n", w.file.SegmentOffset(i)); err != nil {
			return err
		}

		if err := w.writeRelocations(i); err != nil {
			return err
		}

		if w.options.SegmentData {
			if err := w.writeSegmentData(i); err != nil {
				return err
			}
		}

		if err := w.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRelocations(index int) error {
	table, ok := w.file.Relocations(index)
	if !ok {
		return nil
	}

	if err := w.printf("  Reloc data count: %d\n", len(table)); err != nil {
		return err
	}
	for _, entry := range table {
		if err := w.writeRecord(entry.Record); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeSegmentData(index int) error {
	data, err := w.file.SegmentData(index)
	if err != nil {
		return fmt.Errorf("reading segment %d data: %w", index, err)
	}
	return w.printf("  Data: % X\n", data)
}

func (w *Writer) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.writer, format, args...); err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}
	return nil
}
