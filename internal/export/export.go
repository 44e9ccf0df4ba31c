// Package export writes the summary tables of a pipeline run as JSON or YAML.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/pipeline"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", eris.Errorf("export: unknown format %q (want json or yaml)", s)
}

// Document is the exported shape. Rolling and DeliveryRows have one entry
// per ball and are only filled when requested.
type Document struct {
	DatasetHash   string              `json:"dataset_hash" yaml:"dataset_hash"`
	GeneratedAt   string              `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	Deliveries    int                 `json:"deliveries" yaml:"deliveries"`
	BoundarySet   int                 `json:"boundary_set" yaml:"boundary_set"`
	Years         []int               `json:"years" yaml:"years"`
	Outcomes      []model.OutcomeRow  `json:"outcomes" yaml:"outcomes"`
	DotBalls      []model.DotBallRow  `json:"dot_balls" yaml:"dot_balls"`
	Trends        []model.TrendRow    `json:"trends" yaml:"trends"`
	Next3Averages []model.Next3AvgRow `json:"next3_averages" yaml:"next3_averages"`
	Rolling       []model.RollingRow  `json:"rolling,omitempty" yaml:"rolling,omitempty"`
	DeliveryRows  []model.DeliveryRow `json:"delivery_rows,omitempty" yaml:"delivery_rows,omitempty"`
}

// Options controls what goes into a Document.
type Options struct {
	IncludeRolling    bool
	IncludeDeliveries bool
	Timestamp         bool // stamp generated_at; off keeps output byte-stable
}

// Build assembles a Document from a pipeline result.
func Build(res *pipeline.Result, opts Options) Document {
	doc := Document{
		DatasetHash:   res.Hash,
		Deliveries:    len(res.Deliveries),
		BoundarySet:   len(res.Boundaries),
		Years:         res.Years,
		Outcomes:      res.Outcomes,
		DotBalls:      res.DotBalls,
		Trends:        res.Trends,
		Next3Averages: res.Next3,
	}
	if opts.IncludeRolling {
		doc.Rolling = res.Rolling
	}
	if opts.IncludeDeliveries {
		doc.DeliveryRows = make([]model.DeliveryRow, len(res.Deliveries))
		for i, d := range res.Deliveries {
			doc.DeliveryRows[i] = d.Row()
		}
	}
	if opts.Timestamp {
		doc.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return doc
}

// Write encodes doc to w.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(doc), "export: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return eris.Wrap(err, "export: encode yaml")
		}
		return eris.Wrap(enc.Close(), "export: flush yaml")
	}
	return eris.Errorf("export: unknown format %q", format)
}
