package config

// Config holds runtime configuration for the rating engine.
type Config struct {
	Generation  string
	InputPath   string
	OutputPath  string
	WeightsFile string
	Workers     int
	MinSeasons  int
	MinGames    int
	LogLevel    string
	LogFormat   string
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Generation:  envOrDefault(envGeneration, defaultGeneration),
		InputPath:   envOrDefault(envInput, defaultInput),
		OutputPath:  envOrDefault(envOutput, defaultOutput),
		WeightsFile: envOrDefault(envWeightsFile, ""),
		Workers:     intEnvOrDefault(envWorkers, defaultWorkers),
		MinSeasons:  intEnvOrDefault(envMinSeasons, defaultMinSeasons),
		MinGames:    intEnvOrDefault(envMinGames, defaultMinGames),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		Metrics:     loadMetrics(),
	}
}
