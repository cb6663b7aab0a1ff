package dashboard

import (
	"fmt"

	"go.uber.org/zap"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/models"
)

// ChartPoint is one sample of one series.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChartSeries is the render model for one selected parameter. Hue is the
// series color angle, assigned from the position in the selection.
type ChartSeries struct {
	Key    models.ParameterKey `json:"key"`
	Label  string              `json:"label"`
	Unit   string              `json:"unit"`
	Hue    int                 `json:"hue"`
	Points []ChartPoint        `json:"points"`
}

// ChartData carries everything a chart render needs: the full date axis and
// one series per selected parameter. An empty selection yields zero series,
// an empty dataset yields zero dates; both draw as bare axes.
type ChartData struct {
	Dates  []string      `json:"dates"`
	Series []ChartSeries `json:"series"`
}

type IGraphsImpl struct {
	dash *Dashboard
}

func (ig *IGraphsImpl) DefaultSelection() []models.ParameterKey {
	return ig.dash.defaultSelection()
}

func (ig *IGraphsImpl) NormalizeSelection(keys []models.ParameterKey) []models.ParameterKey {
	return ig.dash.normalizeSelection(keys)
}

func (ig *IGraphsImpl) Toggle(selection []models.ParameterKey, key models.ParameterKey) ([]models.ParameterKey, error) {
	return ig.dash.toggle(selection, key)
}

func (ig *IGraphsImpl) GetChart(selection []models.ParameterKey) (*ChartData, error) {
	return ig.dash.getChart(selection)
}

func (d *Dashboard) GetIGraphs() IGraphs {
	return &IGraphsImpl{dash: d}
}

func (d *Dashboard) defaultSelection() []models.ParameterKey {
	return []models.ParameterKey{models.ParamNitrate, models.ParamPhosphate, models.ParamPH}
}

// normalizeSelection turns request input into a clean selection: nil means
// the caller sent nothing and gets the default, duplicates collapse to their
// first occurrence, unknown keys are dropped with a warning. An explicitly
// empty selection stays empty.
func (d *Dashboard) normalizeSelection(keys []models.ParameterKey) []models.ParameterKey {
	if keys == nil {
		return d.defaultSelection()
	}

	logger := common.GetLoggerWith(common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldViewCategory, common.LoggerCategoryGraphs))

	seen := make(map[models.ParameterKey]bool, len(keys))
	normalized := make([]models.ParameterKey, 0, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		if !d.Registry.Has(key) {
			logger.Warn("Dropping unknown parameter from selection", zap.String("key", string(key)))
			continue
		}
		seen[key] = true
		normalized = append(normalized, key)
	}
	return normalized
}

// toggle returns a new selection with key removed when present and appended
// when absent. The input slice is never mutated.
func (d *Dashboard) toggle(selection []models.ParameterKey, key models.ParameterKey) ([]models.ParameterKey, error) {
	if !d.Registry.Has(key) {
		logger := common.GetLoggerWith(common.LoggerNameDashboardCore,
			zap.String(common.LoggerFieldViewCategory, common.LoggerCategoryGraphs))
		logger.Warn("Rejecting toggle of unknown parameter", zap.String("key", string(key)))
		return selection, fmt.Errorf("toggle %q: %w", key, ErrUnknownParameter)
	}

	toggled := make([]models.ParameterKey, 0, len(selection)+1)
	removed := false
	for _, k := range selection {
		if k == key {
			removed = true
			continue
		}
		toggled = append(toggled, k)
	}
	if !removed {
		toggled = append(toggled, key)
	}
	return toggled, nil
}

func (d *Dashboard) getChart(selection []models.ParameterKey) (*ChartData, error) {
	logger := common.GetLoggerWith(common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldViewCategory, common.LoggerCategoryGraphs))

	chart := &ChartData{
		Dates: common.Mapper(d.readings, func(r models.Reading) string {
			return r.Date
		}),
		Series: []ChartSeries{},
	}
	for _, key := range selection {
		desc, ok := d.Registry.Get(key)
		if !ok {
			logger.Warn("Skipping unknown parameter in chart", zap.String("key", string(key)))
			continue
		}
		points := common.Mapper(d.readings, func(r models.Reading) ChartPoint {
			value, _ := r.Value(key)
			return ChartPoint{Date: r.Date, Value: value}
		})
		chart.Series = append(chart.Series, ChartSeries{
			Key:    key,
			Label:  desc.Label,
			Unit:   desc.Unit,
			Hue:    len(chart.Series) * 40 % 360,
			Points: points,
		})
	}
	return chart, nil
}
