package dashboard

import (
	"go.uber.org/zap"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/models"
)

// Tile is the render model for one overview card: the descriptor fields the
// template needs plus the value taken from the dataset's lead record.
type Tile struct {
	Key       models.ParameterKey `json:"key"`
	Label     string              `json:"label"`
	Value     float64             `json:"value"`
	Unit      string              `json:"unit"`
	Icon      models.IconRef      `json:"icon"`
	Color     string              `json:"color"`
	Formatted string              `json:"formatted"`
}

// InfoPanel is the static text block shown next to the tiles.
type InfoPanel struct {
	Title string   `json:"title"`
	Body  []string `json:"body"`
}

type IOverviewImpl struct {
	dash *Dashboard
}

func (io *IOverviewImpl) GetTiles() ([]Tile, error) {
	return io.dash.getTiles()
}

func (io *IOverviewImpl) GetInfoPanel() InfoPanel {
	return io.dash.getInfoPanel()
}

func (d *Dashboard) GetIOverview() IOverview {
	return &IOverviewImpl{dash: d}
}

func (d *Dashboard) getTiles() ([]Tile, error) {
	if len(d.readings) == 0 {
		return nil, ErrEmptyDataset
	}

	logger := common.GetLoggerWith(common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldViewCategory, common.LoggerCategoryOverview))

	lead := d.readings[0]
	tiles := make([]Tile, 0, d.Registry.Len())
	for _, key := range d.Registry.Keys() {
		desc, _ := d.Registry.Get(key)
		value, ok := lead.Value(key)
		if !ok {
			logger.Warn("Skipping parameter without a reading field", zap.String("key", string(key)))
			continue
		}
		tiles = append(tiles, Tile{
			Key:       key,
			Label:     desc.Label,
			Value:     value,
			Unit:      desc.Unit,
			Icon:      desc.Icon,
			Color:     desc.Color,
			Formatted: FormatMeasurement(value, desc.Unit),
		})
	}
	return tiles, nil
}

func (d *Dashboard) getInfoPanel() InfoPanel {
	return InfoPanel{
		Title: "About this station",
		Body: []string{
			"Values come from the current sample of the monitored water body. Thresholds shown in the parameter list are informational only.",
			"Use the graphs page to compare how parameters developed over time, or browse individual samples on the readings page.",
		},
	}
}
