// Package export serialises the filtered investment table for download.
package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/aristath/investlab/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrUnknownTarget indicates an export target that is not offered.
var ErrUnknownTarget = errors.New("unknown export target")

// DefaultFileName is the download name used when none is configured
const DefaultFileName = "portfolio_data.csv"

// Target identifies one of the export actions
type Target string

const (
	TargetPowerPoint Target = "powerpoint"
	TargetWord       Target = "word"
)

// Targets lists the export actions in display order
var Targets = []Target{TargetPowerPoint, TargetWord}

// Label returns the button label of the target
func (t Target) Label() string {
	switch t {
	case TargetPowerPoint:
		return "Download PowerPoint"
	case TargetWord:
		return "Download Word"
	}
	return string(t)
}

// ParseTarget validates a target name
func ParseTarget(s string) (Target, error) {
	for _, t := range Targets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// File is a rendered export
type File struct {
	ID          string
	Target      Target
	FileName    string
	ContentType string
	Rows        int
	Data        []byte
}

// Exporter renders export files
type Exporter struct {
	fileName string
	log      zerolog.Logger
}

// NewExporter creates a new exporter. An empty fileName falls back to DefaultFileName.
func NewExporter(fileName string, log zerolog.Logger) *Exporter {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Exporter{
		fileName: fileName,
		log:      log.With().Str("service", "export").Logger(),
	}
}

// Export renders the dataset for a target.
// Every target currently produces the same CSV payload under the same file name;
// real presentation and document encoders are not implemented.
func (e *Exporter) Export(target Target, ds domain.Dataset) (*File, error) {
	if _, err := ParseTarget(string(target)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ds); err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", target, err)
	}

	f := &File{
		ID:          uuid.New().String(),
		Target:      target,
		FileName:    e.fileName,
		ContentType: "text/csv",
		Rows:        len(ds),
		Data:        buf.Bytes(),
	}

	e.log.Info().
		Str("export_id", f.ID).
		Str("target", string(target)).
		Int("rows", f.Rows).
		Int("bytes", len(f.Data)).
		Msg("Rendered export")

	return f, nil
}
