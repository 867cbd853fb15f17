package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Providers struct {
	ExchangeRateAPIBaseURL  string `mapstructure:"exchangerate_api_base_url"`
	OpenERAPIBaseURL        string `mapstructure:"open_erapi_base_url"`
	ExchangeRateHostBaseURL string `mapstructure:"exchangerate_host_base_url"`
}

type Warmer struct {
	IntervalSeconds int      `mapstructure:"interval_seconds"`
	Pairs           []string `mapstructure:"pairs"`
}

// DbServer configures the optional snapshot store. An empty host disables it.
type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) Enabled() bool { return config.Host != "" }

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Providers  Providers  `mapstructure:"providers"`
	Warmer     Warmer     `mapstructure:"warmer"`
	DbServer   DbServer   `mapstructure:"db_server"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "3000")
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("providers.exchangerate_api_base_url", "https://api.exchangerate-api.com")
	viper.SetDefault("providers.open_erapi_base_url", "https://open.er-api.com")
	viper.SetDefault("providers.exchangerate_host_base_url", "https://api.exchangerate.host")
	viper.SetDefault("warmer.interval_seconds", 0)
	viper.SetDefault("db_server.max_conns", 10)

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_PORT")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
