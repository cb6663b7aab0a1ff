package dashboard

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/models"
	"aquaview.xyz/water-quality-service/pkg/source"
	_ "aquaview.xyz/water-quality-service/pkg/testing"
)

func getTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	common.SetTestLoggerNop()
	return getDashboardFor(t, source.NewStaticSource())
}

func getTestDashboardWith(t *testing.T, readings []models.Reading) *Dashboard {
	t.Helper()
	common.SetTestLoggerNop()
	return getDashboardFor(t, source.NewStaticSourceWith(readings))
}

func getDashboardFor(t *testing.T, src source.DataSource) *Dashboard {
	t.Helper()

	dash, err := NewDashboard(src)
	require.NoError(t, err)
	dash.WithServices(ServiceOpts{
		Overview: dash.GetIOverview(),
		Graphs:   dash.GetIGraphs(),
		Readings: dash.GetIReadings(),
	})
	return dash
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
