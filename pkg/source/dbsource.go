package source

import (
	"go.uber.org/zap"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/db"
	"aquaview.xyz/water-quality-service/pkg/models"
	"aquaview.xyz/water-quality-service/pkg/registry"
)

// DBSource serves readings from the sqlite-backed readings table.
type DBSource struct {
	Db db.DB
}

func NewDBSource(database *db.DB) *DBSource {
	return &DBSource{Db: *database}
}

func (s *DBSource) GetReadings() ([]models.Reading, error) {
	var readings []models.Reading
	err := s.Db.Conn.
		Order("date asc").
		Find(&readings).Error
	return readings, err
}

func (s *DBSource) GetParameterRegistry() registry.Registry {
	return registry.Default()
}

// SeedSampleReadings inserts the built-in sample dataset when the readings
// table is empty. Re-running against a populated table is a no-op.
func SeedSampleReadings(database *db.DB) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldViewCategory, common.LoggerCategorySource),
	)

	var count int64
	if err := database.Conn.Model(&models.Reading{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Readings table already populated, skipping seed", zap.Int64("count", count))
		return nil
	}

	readings := SampleReadings()
	if err := database.Conn.Create(&readings).Error; err != nil {
		return err
	}

	logger.Info("Seeded readings table with sample dataset", zap.Int("count", len(readings)))
	return nil
}
