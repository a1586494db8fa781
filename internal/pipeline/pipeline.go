// Package pipeline orchestrates the dump workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/negodump/internal/detector"
	"github.com/retroenv/negodump/internal/dump"
	"github.com/retroenv/negodump/internal/loader"
	"github.com/retroenv/negodump/internal/nefile"
	"github.com/retroenv/negodump/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete dump workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new dump pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete dump pipeline: load the file, decode all NE
// structures and write the dump.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*nefile.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("executing pipeline: %w", err)
	}

	data, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading file: %w", err)
	}

	switch p.detector.Detect(data) {
	case detector.FormatMZ:
		p.logger.Warn("File has a DOS stub but no NE marker",
			log.String("file", opts.Input))
	case detector.FormatUnknown:
		p.logger.Warn("File does not look like a DOS executable",
			log.String("file", opts.Input))
	}

	file, err := nefile.New(data)
	if err != nil {
		return nil, fmt.Errorf("decoding NE file: %w", err)
	}

	p.logger.Info("Decoded NE file",
		log.String("file", opts.Input),
		log.Int("segments", len(file.Segments)),
		log.Int("modules", len(file.ImportedNames)),
	)

	dumpOptions := dump.Options{
		SegmentData: opts.SegmentData,
	}
	if err := dump.New(file, writer, dumpOptions).Write(); err != nil {
		return nil, fmt.Errorf("writing dump: %w", err)
	}

	return file, nil
}
