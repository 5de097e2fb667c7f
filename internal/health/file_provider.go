// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package health

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/models"
)

// fileProvider reads health samples from a JSON export file of the form
//
//	{ "samples": [ { "type": "steps", "value": 1200, "unit": "count",
//	                 "start": "...", "end": "...", "source_device": "..." } ] }
//
// The file is re-read on every query so a running client picks up appended
// data without a restart.
type fileProvider struct {
	path   string
	logger *logger.Logger
}

// NewFileProvider returns a [Provider] backed by the JSON export at path.
func NewFileProvider(path string, logger *logger.Logger) Provider {
	return &fileProvider{path: path, logger: logger}
}

// RequestAuthorization implements [Provider]. The file provider has no
// permission dialog: access is granted whenever the export file is readable.
func (f *fileProvider) RequestAuthorization(ctx context.Context, types []string) (bool, error) {
	granted, err := f.HasPermissions(ctx, types)
	if err != nil {
		return false, err
	}
	return granted != nil && *granted, nil
}

// HasPermissions implements [Provider]. It reports true when the export file
// exists and is readable, false when it does not exist, and nil with an error
// for any other stat failure.
func (f *fileProvider) HasPermissions(_ context.Context, _ []string) (*bool, error) {
	granted := false

	if _, err := os.Stat(f.path); err != nil {
		if os.IsNotExist(err) {
			return &granted, nil
		}
		return nil, fmt.Errorf("stat health export %s: %w", f.path, err)
	}

	granted = true
	return &granted, nil
}

// QueryData implements [Provider]. It parses the export with gjson so that
// unknown fields and unrelated top-level keys in the document are ignored.
// Samples with an unparsable timestamp are skipped with a warning rather
// than failing the whole query.
func (f *fileProvider) QueryData(_ context.Context, types []string, from, to time.Time) ([]models.HealthSample, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read health export %s: %w", f.path, err)
	}

	wanted := make(map[string]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	var samples []models.HealthSample
	gjson.GetBytes(raw, "samples").ForEach(func(_, node gjson.Result) bool {
		sampleType := node.Get("type").String()
		if _, ok := wanted[sampleType]; !ok {
			return true
		}

		start, err := time.Parse(time.RFC3339, node.Get("start").String())
		if err != nil {
			f.logger.Warn().
				Err(err).
				Str("func", "fileProvider.QueryData").
				Str("type", sampleType).
				Msg("skipping sample with unparsable start time")
			return true
		}
		if start.Before(from) || !start.Before(to) {
			return true
		}

		end := start
		if rawEnd := node.Get("end").String(); rawEnd != "" {
			if parsed, err := time.Parse(time.RFC3339, rawEnd); err == nil {
				end = parsed
			}
		}

		samples = append(samples, models.HealthSample{
			Type:         sampleType,
			Value:        node.Get("value").Float(),
			Unit:         node.Get("unit").String(),
			Start:        start,
			End:          end,
			SourceDevice: node.Get("source_device").String(),
		})
		return true
	})

	return samples, nil
}
