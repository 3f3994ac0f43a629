// Package dashboard assembles everything one dashboard render needs from a set
// of filter criteria.
package dashboard

import (
	"fmt"

	"github.com/aristath/investlab/internal/domain"
	"github.com/aristath/investlab/internal/modules/charts"
	"github.com/aristath/investlab/internal/modules/export"
	"github.com/aristath/investlab/internal/modules/screening"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DatasetProvider supplies the investment table
type DatasetProvider interface {
	GetAll() domain.Dataset
	Categories() []domain.Category
}

// ExportOption describes one export action
type ExportOption struct {
	Target export.Target `json:"target" msgpack:"target"`
	Label  string        `json:"label" msgpack:"label"`
}

// Options describes the controls and their bounds
type Options struct {
	Categories       []domain.Category        `json:"categories" msgpack:"categories"`
	TimeHorizons     []domain.TimeHorizon     `json:"time_horizons" msgpack:"time_horizons"`
	MinInvestmentMax int                      `json:"min_investment_max" msgpack:"min_investment_max"`
	MinReturnMax     float64                  `json:"min_return_max" msgpack:"min_return_max"`
	MaxRiskMax       int                      `json:"max_risk_max" msgpack:"max_risk_max"`
	Defaults         screening.FilterCriteria `json:"defaults" msgpack:"defaults"`
	Exports          []ExportOption           `json:"exports" msgpack:"exports"`
}

// Snapshot is one full dashboard render
type Snapshot struct {
	ID               string                      `json:"id" msgpack:"id"`
	Criteria         screening.FilterCriteria    `json:"criteria" msgpack:"criteria"`
	CategoryFiltered domain.Dataset              `json:"category_filtered" msgpack:"category_filtered"`
	Constrained      domain.Dataset              `json:"constrained" msgpack:"constrained"`
	Stats            screening.SummaryStatistics `json:"stats" msgpack:"stats"`
	Metrics          []Metric                    `json:"metrics" msgpack:"metrics"`
	Charts           charts.Charts               `json:"charts" msgpack:"charts"`
}

// Service builds dashboard snapshots and exports
type Service struct {
	provider DatasetProvider
	charts   *charts.Service
	exporter *export.Exporter
	log      zerolog.Logger
}

// NewService creates a new dashboard service
func NewService(
	provider DatasetProvider,
	chartsService *charts.Service,
	exporter *export.Exporter,
	log zerolog.Logger,
) *Service {
	return &Service{
		provider: provider,
		charts:   chartsService,
		exporter: exporter,
		log:      log.With().Str("service", "dashboard").Logger(),
	}
}

// DefaultCriteria returns the initial control state
func (s *Service) DefaultCriteria() screening.FilterCriteria {
	return screening.DefaultCriteria(s.provider.Categories())
}

// Options returns the control metadata
func (s *Service) Options() Options {
	exports := make([]ExportOption, 0, len(export.Targets))
	for _, t := range export.Targets {
		exports = append(exports, ExportOption{Target: t, Label: t.Label()})
	}

	return Options{
		Categories:       s.provider.Categories(),
		TimeHorizons:     domain.TimeHorizons,
		MinInvestmentMax: screening.MinInvestmentLimit,
		MinReturnMax:     screening.MinReturnLimit,
		MaxRiskMax:       screening.MaxRiskLimit,
		Defaults:         s.DefaultCriteria(),
		Exports:          exports,
	}
}

// Snapshot validates the criteria and recomputes the whole dashboard from the
// static table
func (s *Service) Snapshot(criteria screening.FilterCriteria) (*Snapshot, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	res := screening.Run(s.provider.GetAll(), criteria)

	snap := &Snapshot{
		ID:               uuid.New().String(),
		Criteria:         criteria,
		CategoryFiltered: res.CategoryFiltered,
		Constrained:      res.Constrained,
		Stats:            res.Stats,
		Metrics:          buildMetrics(res.Stats),
		Charts:           s.charts.Build(res.CategoryFiltered),
	}

	s.log.Debug().
		Str("snapshot_id", snap.ID).
		Int("categories", len(criteria.Categories)).
		Int("working_set", len(snap.CategoryFiltered)).
		Int("constrained", len(snap.Constrained)).
		Msg("Built dashboard snapshot")

	return snap, nil
}

// Export renders the constrained table for an export target
func (s *Service) Export(target export.Target, criteria screening.FilterCriteria) (*export.File, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	res := screening.Run(s.provider.GetAll(), criteria)

	f, err := s.exporter.Export(target, res.Constrained)
	if err != nil {
		return nil, fmt.Errorf("failed to export constrained table: %w", err)
	}
	return f, nil
}
