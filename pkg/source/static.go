package source

import (
	"aquaview.xyz/water-quality-service/pkg/models"
	"aquaview.xyz/water-quality-service/pkg/registry"
)

// SampleReadings returns the built-in sample dataset, ordered by date
// ascending. The DB-backed source seeds its table from the same records.
func SampleReadings() []models.Reading {
	return []models.Reading{
		{
			Date:           "2023-01-01",
			Temperature:    18,
			PrevDayTemp:    17.5,
			Nitrat:         12.5,
			Nitrit:         0.05,
			Phosphat:       0.4,
			PH:             7.2,
			Sauerstoff:     8.3,
			Karbonathaerte: 6.5,
			Ammonium:       0.05,
			Notes:          "Clear conditions with no significant debris.",
		},
		{
			Date:           "2023-01-02",
			Temperature:    19,
			PrevDayTemp:    18,
			Nitrat:         13,
			Nitrit:         0.08,
			Phosphat:       0.45,
			PH:             7.1,
			Sauerstoff:     8.1,
			Karbonathaerte: 6.4,
			Ammonium:       0.07,
			Notes:          "Light sediment stirred up after the partial water change.",
		},
	}
}

// StaticSource serves readings inlined as constants.
type StaticSource struct {
	readings []models.Reading
}

// NewStaticSource returns a source over the built-in sample dataset.
func NewStaticSource() *StaticSource {
	return &StaticSource{readings: SampleReadings()}
}

// NewStaticSourceWith returns a source over the given readings. Tests use it
// to mount views over custom or empty datasets.
func NewStaticSourceWith(readings []models.Reading) *StaticSource {
	return &StaticSource{readings: readings}
}

func (s *StaticSource) GetReadings() ([]models.Reading, error) {
	readings := make([]models.Reading, len(s.readings))
	copy(readings, s.readings)
	return readings, nil
}

func (s *StaticSource) GetParameterRegistry() registry.Registry {
	return registry.Default()
}
