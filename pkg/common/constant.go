package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAquaSourceType string = "AQUA_SOURCE_TYPE"
	EnvKeyAquaDbPath     string = "AQUA_DB_PATH"

	EnvKeyAquaHttpHostPort string = "AQUA_HTTP_HOST_PORT"

	EnvKeyAquaDefaultRate  string = "AQUA_DEFAULT_RATE"
	EnvKeyAquaDefaultBurst string = "AQUA_DEFAULT_BURST"

	LoggerNameDashboardCore string = "dashboard_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldViewCategory string = "category"
	LoggerFieldRequestID    string = "request_id"

	LoggerCategoryOverview string = "overview"
	LoggerCategoryGraphs   string = "graphs"
	LoggerCategoryReadings string = "readings"
	LoggerCategorySource   string = "source"
)
