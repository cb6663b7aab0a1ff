package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"aquaview.xyz/water-quality-service/pkg/models"
	"aquaview.xyz/water-quality-service/pkg/registry"
	"aquaview.xyz/water-quality-service/pkg/source"
	sourceMocks "aquaview.xyz/water-quality-service/pkg/source/mocks"
)

func TestNewDashboardLoadsSnapshot(t *testing.T) {
	dash := getTestDashboard(t)

	require.Equal(t, 2, len(dash.Dataset()))
	assert.Equal(t, "2023-01-01", dash.Dataset()[0].Date)
	assert.Equal(t, "2023-01-02", dash.Dataset()[1].Date)
	assert.Equal(t, registry.Default().Len(), dash.Registry.Len())
}

func TestNewDashboardAllowsEmptyDataset(t *testing.T) {
	dash := getTestDashboardWith(t, []models.Reading{})

	assert.Empty(t, dash.Dataset())
}

func TestNewDashboardRejectsInvalidDate(t *testing.T) {
	readings := []models.Reading{
		{Date: "01.02.2023", Temperature: 18},
	}

	_, err := NewDashboard(source.NewStaticSourceWith(readings))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestNewDashboardRejectsUnorderedDates(t *testing.T) {
	readings := []models.Reading{
		{Date: "2023-01-02"},
		{Date: "2023-01-01"},
	}

	_, err := NewDashboard(source.NewStaticSourceWith(readings))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of order")
}

func TestNewDashboardRejectsDuplicateDates(t *testing.T) {
	readings := []models.Reading{
		{Date: "2023-01-01"},
		{Date: "2023-01-01"},
	}

	_, err := NewDashboard(source.NewStaticSourceWith(readings))
	require.Error(t, err)
}

func TestNewDashboardPropagatesSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := sourceMocks.NewMockDataSource(ctrl)
	src.EXPECT().GetReadings().Return(nil, errors.New("backend offline"))

	_, err := NewDashboard(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend offline")
}
