package config

const (
	DefaultBaseURL  = "http://localhost:8282/api/v2"
	DefaultLogLevel = "info"
)

type Config struct {
	// Base URL of the testing API, without the trailing endpoint path.
	BaseURL         string `mapstructure:"TESTING_API_BASE_URL"`
	LogLevel        string `mapstructure:"TESTING_LOG_LEVEL"`
	// Optional path of a Prometheus textfile collector file to write run metrics to.
	MetricsTextfile string `mapstructure:"TESTING_METRICS_TEXTFILE"`
	EnvFile         string `mapstructure:"TESTING_ENV_FILE"`
}

func defaults() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		LogLevel: DefaultLogLevel,
	}
}
