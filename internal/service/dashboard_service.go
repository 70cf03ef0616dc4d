// Package service runs the dashboard pipeline: load -> filter -> per-view
// branch -> aggregate -> render model.
package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/signaldeck/signaldeck-backend-go/internal/filter"
	"github.com/signaldeck/signaldeck-backend-go/internal/models"
)

// DatasetProvider supplies immutable datasets per region, typically the
// keyed dataset cache.
type DatasetProvider interface {
	Get(region models.Region) (*models.Dataset, error)
	Reload(region models.Region) (*models.Dataset, error)
}

// DashboardService handles business logic for the dashboard views.
type DashboardService struct {
	datasets DatasetProvider
	log      *zap.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(datasets DatasetProvider, log *zap.Logger) *DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardService{
		datasets: datasets,
		log:      log,
	}
}

// Dashboard processes one request to completion. A missing region file
// propagates as *dataset.MissingDataError; an empty filter result is
// terminal for the render cycle and comes back as a notice-only model with
// no aggregation attempted.
func (s *DashboardService) Dashboard(req models.DashboardRequest) (*models.RenderModel, error) {
	ds, err := s.datasets.Get(req.Region)
	if err != nil {
		return nil, err
	}

	filtered, err := filter.Apply(ds, req.Filter)
	if err != nil {
		var empty *filter.EmptyResultError
		if errors.As(err, &empty) {
			s.log.Info("filters matched no records",
				zap.String("region", string(req.Region)),
				zap.Float64("minScore", req.Filter.MinScore),
			)
			return &models.RenderModel{
				Region: req.Region,
				View:   req.View,
				Notice: empty.Error(),
			}, nil
		}
		return nil, err
	}

	model := &models.RenderModel{
		Region:  req.Region,
		View:    req.View,
		Metrics: summaryMetrics(filtered.Records),
	}

	switch req.View {
	case models.ViewInstitutional:
		buildInstitutional(model, filtered.Records)
	case models.ViewAdvanced:
		buildAdvanced(model, filtered.Records)
	default:
		buildFounder(model, filtered.Records, req.Query)
	}

	return model, nil
}

// Sectors lists the distinct sectors of a region's dataset for the filter
// controls.
func (s *DashboardService) Sectors(region models.Region) ([]string, error) {
	ds, err := s.datasets.Get(region)
	if err != nil {
		return nil, err
	}
	return ds.Sectors(), nil
}

// ReloadRegion drops and reloads a region's dataset, returning its new size.
func (s *DashboardService) ReloadRegion(region models.Region) (int, error) {
	ds, err := s.datasets.Reload(region)
	if err != nil {
		return 0, err
	}
	return len(ds.Records), nil
}
