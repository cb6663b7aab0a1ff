package dashboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/models"
)

func TestDefaultSelection(t *testing.T) {
	dash := getTestDashboard(t)

	want := []models.ParameterKey{models.ParamNitrate, models.ParamPhosphate, models.ParamPH}
	assert.Equal(t, want, dash.Graphs.DefaultSelection())
}

func TestDefaultSelectionChartLabels(t *testing.T) {
	dash := getTestDashboard(t)

	chart, err := dash.Graphs.GetChart(dash.Graphs.NormalizeSelection(nil))
	require.NoError(t, err)
	require.Equal(t, 3, len(chart.Series))

	labels := common.Mapper(chart.Series, func(s ChartSeries) string {
		return s.Label
	})
	assert.Equal(t, []string{"Nitrate", "Phosphate", "pH Value"}, labels)
}

func TestToggleRemovesThenRestores(t *testing.T) {
	dash := getTestDashboard(t)
	selection := []models.ParameterKey{models.ParamNitrate, models.ParamPhosphate}

	removed, err := dash.Graphs.Toggle(selection, models.ParamNitrate)
	require.NoError(t, err)
	assert.Equal(t, []models.ParameterKey{models.ParamPhosphate}, removed)

	restored, err := dash.Graphs.Toggle(removed, models.ParamNitrate)
	require.NoError(t, err)
	assert.ElementsMatch(t, selection, restored)

	// The input selection is never mutated.
	assert.Equal(t, []models.ParameterKey{models.ParamNitrate, models.ParamPhosphate}, selection)
}

func TestToggleAddsAbsentKey(t *testing.T) {
	dash := getTestDashboard(t)

	toggled, err := dash.Graphs.Toggle([]models.ParameterKey{models.ParamPH}, models.ParamOxygen)
	require.NoError(t, err)
	assert.Equal(t, []models.ParameterKey{models.ParamPH, models.ParamOxygen}, toggled)
}

func TestToggleRejectsUnknownKey(t *testing.T) {
	dash := getTestDashboard(t)
	selection := []models.ParameterKey{models.ParamPH}

	toggled, err := dash.Graphs.Toggle(selection, "chlorid")
	assert.ErrorIs(t, err, ErrUnknownParameter)
	assert.Equal(t, selection, toggled)
}

func TestNormalizeSelectionDropsUnknownAndDuplicates(t *testing.T) {
	dash := getTestDashboard(t)

	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.WarnLevel)

	got := dash.Graphs.NormalizeSelection([]models.ParameterKey{
		models.ParamPH, "chlorid", models.ParamPH, models.ParamNitrate,
	})
	assert.Equal(t, []models.ParameterKey{models.ParamPH, models.ParamNitrate}, got)

	logs := ParseLogs(&buf)

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "graphs" &&
				lobj["logger"] == "dashboard_core" &&
				lobj["msg"] == "Dropping unknown parameter from selection" &&
				lobj["key"] == "chlorid" {
				found = true
			}
		}
		assert.True(t, found, "log not found")
	}

	common.SetTestLoggerNop()
}

func TestNormalizeSelectionKeepsExplicitEmpty(t *testing.T) {
	dash := getTestDashboard(t)

	got := dash.Graphs.NormalizeSelection([]models.ParameterKey{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestChartSeriesHuesFollowSelectionOrder(t *testing.T) {
	dash := getTestDashboard(t)

	chart, err := dash.Graphs.GetChart(dash.Registry.Keys())
	require.NoError(t, err)
	require.Equal(t, dash.Registry.Len(), len(chart.Series))

	for i, series := range chart.Series {
		assert.Equal(t, i*40%360, series.Hue)
	}
}

func TestChartPointsFollowDataset(t *testing.T) {
	dash := getTestDashboard(t)

	chart, err := dash.Graphs.GetChart([]models.ParameterKey{models.ParamNitrate})
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-01-01", "2023-01-02"}, chart.Dates)

	require.Equal(t, 1, len(chart.Series))
	series := chart.Series[0]
	assert.Equal(t, "Nitrate", series.Label)
	assert.Equal(t, "mg/l", series.Unit)
	assert.Equal(t, []ChartPoint{
		{Date: "2023-01-01", Value: 12.5},
		{Date: "2023-01-02", Value: 13},
	}, series.Points)
}

func TestChartEmptySelectionHasAxesOnly(t *testing.T) {
	dash := getTestDashboard(t)

	chart, err := dash.Graphs.GetChart([]models.ParameterKey{})
	require.NoError(t, err)
	assert.Empty(t, chart.Series)
	assert.Equal(t, []string{"2023-01-01", "2023-01-02"}, chart.Dates)
}

func TestChartEmptyDataset(t *testing.T) {
	dash := getTestDashboardWith(t, []models.Reading{})

	chart, err := dash.Graphs.GetChart(dash.Graphs.DefaultSelection())
	require.NoError(t, err)
	assert.Empty(t, chart.Dates)
	require.Equal(t, 3, len(chart.Series))
	for _, series := range chart.Series {
		assert.Empty(t, series.Points)
	}
}
