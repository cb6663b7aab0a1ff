package dashboard

import (
	"go.uber.org/zap"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/models"
)

// Cursor addresses one reading in the dataset. Construction clamps the index
// into bounds and navigation stops at the edges; it never wraps around.
type Cursor struct {
	index  int
	length int
}

func NewCursor(index, length int) Cursor {
	if length < 0 {
		length = 0
	}
	if index < 0 {
		index = 0
	}
	if index > length-1 && length > 0 {
		index = length - 1
	}
	if length == 0 {
		index = 0
	}
	return Cursor{index: index, length: length}
}

func (c *Cursor) Previous() {
	if c.index > 0 {
		c.index--
	}
}

func (c *Cursor) Next() {
	if c.index < c.length-1 {
		c.index++
	}
}

func (c Cursor) Index() int {
	return c.index
}

func (c Cursor) HasPrevious() bool {
	return c.index > 0
}

func (c Cursor) HasNext() bool {
	return c.index < c.length-1
}

// MetricRow is one chemical parameter line on the readings page.
type MetricRow struct {
	Key       models.ParameterKey `json:"key"`
	Label     string              `json:"label"`
	Value     float64             `json:"value"`
	Unit      string              `json:"unit"`
	Icon      models.IconRef      `json:"icon"`
	Color     string              `json:"color"`
	Formatted string              `json:"formatted"`
}

// ReadingPage is the render model for one record: the temperature pair, the
// chemical metrics in registry order, the field notes and the navigation
// state around the cursor.
type ReadingPage struct {
	Date                 string      `json:"date"`
	Temperature          float64     `json:"temperature"`
	PrevDayTemp          float64     `json:"prevDayTemp"`
	TemperatureFormatted string      `json:"temperatureFormatted"`
	PrevDayTempFormatted string      `json:"prevDayTempFormatted"`
	Metrics              []MetricRow `json:"metrics"`
	Notes                string      `json:"notes"`
	Index                int         `json:"index"`
	Total                int         `json:"total"`
	HasPrevious          bool        `json:"hasPrevious"`
	HasNext              bool        `json:"hasNext"`
	PrevIndex            int         `json:"prevIndex"`
	NextIndex            int         `json:"nextIndex"`
}

type IReadingsImpl struct {
	dash *Dashboard
}

func (ir *IReadingsImpl) GetPage(index int) (*ReadingPage, error) {
	return ir.dash.getPage(index)
}

func (d *Dashboard) GetIReadings() IReadings {
	return &IReadingsImpl{dash: d}
}

func (d *Dashboard) getPage(index int) (*ReadingPage, error) {
	if len(d.readings) == 0 {
		return nil, ErrEmptyDataset
	}

	logger := common.GetLoggerWith(common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldViewCategory, common.LoggerCategoryReadings))

	cur := NewCursor(index, len(d.readings))
	record := d.readings[cur.Index()]

	tempDesc, _ := d.Registry.Get(models.ParamTemperature)
	metrics := make([]MetricRow, 0, d.Registry.Len())
	for _, key := range d.Registry.Keys() {
		if key == models.ParamTemperature {
			continue
		}
		value, ok := record.Value(key)
		if !ok {
			logger.Warn("Skipping parameter without a reading field", zap.String("key", string(key)))
			continue
		}
		desc, _ := d.Registry.Get(key)
		metrics = append(metrics, MetricRow{
			Key:       key,
			Label:     desc.Label,
			Value:     value,
			Unit:      desc.Unit,
			Icon:      desc.Icon,
			Color:     desc.Color,
			Formatted: FormatMeasurement(value, desc.Unit),
		})
	}

	prev := cur
	prev.Previous()
	next := cur
	next.Next()

	return &ReadingPage{
		Date:                 record.Date,
		Temperature:          record.Temperature,
		PrevDayTemp:          record.PrevDayTemp,
		TemperatureFormatted: FormatMeasurement(record.Temperature, tempDesc.Unit),
		PrevDayTempFormatted: FormatMeasurement(record.PrevDayTemp, tempDesc.Unit),
		Metrics:              metrics,
		Notes:                record.Notes,
		Index:                cur.Index(),
		Total:                len(d.readings),
		HasPrevious:          cur.HasPrevious(),
		HasNext:              cur.HasNext(),
		PrevIndex:            prev.Index(),
		NextIndex:            next.Index(),
	}, nil
}
