package dashboard

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_services.go -package=mocks

import (
	"fmt"

	"github.com/relvacode/iso8601"

	"aquaview.xyz/water-quality-service/pkg/models"
	"aquaview.xyz/water-quality-service/pkg/registry"
	"aquaview.xyz/water-quality-service/pkg/source"
)

// IOverview renders the station summary: one tile per registry parameter,
// valued from the dataset's lead record, plus the static info panel.
type IOverview interface {
	GetTiles() ([]Tile, error)
	GetInfoPanel() InfoPanel
}

// IGraphs renders time series for a caller-held selection of parameter keys.
// The selection travels with every request; these methods never store it.
type IGraphs interface {
	DefaultSelection() []models.ParameterKey
	NormalizeSelection(keys []models.ParameterKey) []models.ParameterKey
	Toggle(selection []models.ParameterKey, key models.ParameterKey) ([]models.ParameterKey, error)
	GetChart(selection []models.ParameterKey) (*ChartData, error)
}

// IReadings renders one dated record at a time, addressed by a cursor index
// that clamps at the dataset bounds.
type IReadings interface {
	GetPage(index int) (*ReadingPage, error)
}

// Dashboard holds the immutable snapshot served for the lifetime of the
// process: the readings in date order and the parameter registry, both taken
// from the data source exactly once at startup.
type Dashboard struct {
	Registry registry.Registry

	Overview IOverview
	Graphs   IGraphs
	Readings IReadings

	readings []models.Reading
}

type ServiceOpts struct {
	Overview IOverview
	Graphs   IGraphs
	Readings IReadings
}

// NewDashboard pulls the snapshot from the source and validates it. Call
// WithServices afterwards to wire the view services.
func NewDashboard(src source.DataSource) (*Dashboard, error) {
	readings, err := src.GetReadings()
	if err != nil {
		return nil, fmt.Errorf("load readings: %w", err)
	}
	if err := validateDataset(readings); err != nil {
		return nil, err
	}
	return &Dashboard{
		Registry: src.GetParameterRegistry(),
		readings: readings,
	}, nil
}

func (d *Dashboard) WithServices(opts ServiceOpts) *Dashboard {
	d.Overview = opts.Overview
	d.Graphs = opts.Graphs
	d.Readings = opts.Readings
	return d
}

// Dataset returns the readings snapshot, oldest first. Callers must treat it
// as read only.
func (d *Dashboard) Dataset() []models.Reading {
	return d.readings
}

// validateDataset enforces the dataset invariants: every date parses as
// ISO-8601 and the records are strictly ascending by date. An empty dataset
// is valid; views render its defined empty state.
func validateDataset(readings []models.Reading) error {
	for i, r := range readings {
		if _, err := iso8601.ParseString(r.Date); err != nil {
			return fmt.Errorf("reading %d has invalid date %q: %w", i, r.Date, err)
		}
		if i > 0 && readings[i-1].Date >= r.Date {
			return fmt.Errorf("readings out of order: %q followed by %q", readings[i-1].Date, r.Date)
		}
	}
	return nil
}
