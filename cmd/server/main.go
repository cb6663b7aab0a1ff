package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/dashboard"
	"aquaview.xyz/water-quality-service/pkg/db"
	aquaHttp "aquaview.xyz/water-quality-service/pkg/http"
	"aquaview.xyz/water-quality-service/pkg/source"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dataSource source.DataSource
	sourceType := os.Getenv(common.EnvKeyAquaSourceType)
	switch sourceType {
	case "static":
		dataSource = source.NewStaticSource()
	case "file":
		dbInstance := db.GetInstance(db.UseSqliteDialector())
		if err := source.SeedSampleReadings(dbInstance); err != nil {
			log.Fatal("Failed to seed readings table: ", err)
		}
		dataSource = source.NewDBSource(dbInstance)
	case "memory":
		dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
		if err := source.SeedSampleReadings(dbInstance); err != nil {
			log.Fatal("Failed to seed readings table: ", err)
		}
		dataSource = source.NewDBSource(dbInstance)
	default:
		log.Fatal("Unknown AQUA_SOURCE_TYPE: " + sourceType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAquaHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyAquaDefaultRate), 64); err != nil {
		log.Fatal("Invalid AQUA_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyAquaDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid AQUA_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	dash, err := dashboard.NewDashboard(dataSource)
	if err != nil {
		log.Fatalf("Failed to load the reading dataset: %v", err)
	}
	dash.WithServices(dashboard.ServiceOpts{
		Overview: dash.GetIOverview(),
		Graphs:   dash.GetIGraphs(),
		Readings: dash.GetIReadings(),
	})

	logger.Info("Dataset loaded",
		zap.Int("readings", len(dash.Dataset())),
		zap.Int("parameters", dash.Registry.Len()))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &aquaHttp.RestfulServer{
		Server:           gin.Default(),
		Dash:             dash,
		RateLimiterStore: dashboard.NewClientLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
