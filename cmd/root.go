package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/candidate-pool/poolctl/internal/listview"
	"github.com/candidate-pool/poolctl/internal/logger"
	"github.com/candidate-pool/poolctl/internal/poolapi"
	"github.com/candidate-pool/poolctl/internal/views"
)

const (
	app = "poolctl"

	defaultAPIURL = "http://localhost:8000"
)

type Config struct {
	API       *APIConfig  `mapstructure:"api"`
	List      *ListConfig `mapstructure:"list"`
	ViewsFile string      `mapstructure:"views-file"`
	UserAgent string      `mapstructure:"user-agent"`
	AI        *AIConfig   `mapstructure:"ai"`
}

type APIConfig struct {
	URL string `mapstructure:"url"`
}

type ListConfig struct {
	PageSize int `mapstructure:"page-size"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "poolctl is a cli for browsing and managing a candidate pool over its management API",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api.url", "POOL_API_URL"); err != nil {
		log.Fatalf("binding POOL_API_URL environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is poolctl.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the pool management API")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	// Local development reads the api url and key file from a .env file.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Every command works without a config file, but an explicitly
		// given one has to parse.
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// apiURL resolves the API base url from config, flag or environment.
func (c *Config) apiURL() string {
	if c != nil && c.API != nil && strings.TrimSpace(c.API.URL) != "" {
		return strings.TrimSpace(c.API.URL)
	}

	if fromEnv := strings.TrimSpace(viper.GetString("api.url")); fromEnv != "" {
		return fromEnv
	}

	return defaultAPIURL
}

func (c *Config) pageSize() int {
	if c != nil && c.List != nil && c.List.PageSize > 0 {
		return c.List.PageSize
	}
	return listview.DefaultPageSize
}

func (c *Config) viewsFile() string {
	if c != nil && strings.TrimSpace(c.ViewsFile) != "" {
		return strings.TrimSpace(c.ViewsFile)
	}
	return app + "-views.json"
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func mustConfig(l *zap.Logger) *Config {
	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}
	return config
}

func newAPIClient(config *Config, l *zap.Logger) *poolapi.Client {
	client := poolapi.New(config.apiURL(), l)

	if config != nil && config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	return client
}

func newViewStore(config *Config) *views.Store {
	return views.NewStore(config.viewsFile())
}

func newCodec(config *Config) listview.Codec {
	return listview.NewCodec(config.pageSize())
}
