package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mespinosa/fuelcap/constants"
	"github.com/mespinosa/fuelcap/internal/extract"
	"github.com/mespinosa/fuelcap/internal/layout"
)

// RegionReader reads raw text out of one crop region of an opened
// invoice photo. Implemented by ocr.Image; stubbed in tests.
type RegionReader interface {
	ReadRegion(ctx context.Context, region layout.Region) (string, error)
}

// Builder assembles one invoice Record from region reads.
type Builder struct {
	regions   layout.Layout
	extractor *extract.Extractor
	logger    *slog.Logger
}

func NewBuilder(regions layout.Layout, extractor *extract.Extractor, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if regions == nil {
		regions = layout.Default()
	}
	if extractor == nil {
		extractor = extract.New("")
	}
	return &Builder{regions: regions, extractor: extractor, logger: logger}
}

// Build reads every field region once and normalizes each result.
// A reader failure aborts the whole record: a partially read invoice is
// worse than a retried one.
func (b *Builder) Build(ctx context.Context, reader RegionReader) (Record, error) {
	rec := make(Record, len(constants.Fields))

	for _, field := range constants.Fields {
		region, ok := b.regions[field]
		if !ok {
			return nil, fmt.Errorf("no region configured for field %q", field)
		}

		raw, err := reader.ReadRegion(ctx, region)
		if err != nil {
			return nil, fmt.Errorf("read region for %q: %w", field, err)
		}

		rec[field] = b.extractor.Clean(field, raw)
	}

	b.logger.Debug("record.built",
		"numero_embarque", rec.NumeroEmbarque(),
		"empty_fields", countEmpty(rec),
	)
	return rec, nil
}

func countEmpty(rec Record) int {
	n := 0
	for _, f := range constants.Fields {
		if rec[f] == "" {
			n++
		}
	}
	return n
}
