package config

const (
	envGeneration   = "PMI_GENERATION"
	envInput        = "PMI_INPUT"
	envOutput       = "PMI_OUTPUT"
	envWeightsFile  = "PMI_WEIGHTS_FILE"
	envWorkers      = "PMI_WORKERS"
	envMinSeasons   = "PMI_MIN_SEASONS"
	envMinGames     = "PMI_MIN_GAMES"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultGeneration = "calibrated"
	defaultInput      = "players.json"
	defaultOutput     = "ratings.json"
	defaultWorkers    = 8
	// Career qualification floor: five seasons / fifty games keeps cup-of-
	// coffee careers out of the rankings.
	defaultMinSeasons  = 5
	defaultMinGames    = 50
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
)
