package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"fizzbench/internal/benchmark"
)

// EnvPrefix is prepended to every environment override, e.g. FIZZBENCH_ROUNDS.
const EnvPrefix = "FIZZBENCH"

// Configuration keys.
const (
	KeyRounds           = "rounds"
	KeyLower            = "lower"
	KeyUpper            = "upper"
	KeyFormat           = "format"
	KeyCandidates       = "candidates"
	KeyVerbose          = "verbose"
	KeyLogFile          = "log_file"
	KeyStoreType        = "store.type"
	KeyStorePath        = "store.path"
	KeyStoreDSN         = "store.dsn"
	KeyCompareThreshold = "compare.threshold"
	KeyMetricsTextfile  = "metrics.textfile"
	KeyMetricsPushURL   = "metrics.pushgateway"
	KeyMetricsJob       = "metrics.job"
	KeySlackEnabled     = "notifications.slack.enabled"
	KeySlackChannel     = "notifications.slack.channel"
	KeyReportStyle      = "report.style"
)

const (
	DefaultMetricsJob   = "fizzbench"
	DefaultSlackChannel = "#benchmarks"
	DefaultThresholdPct = 10.0
	DefaultReportStyle  = "auto"
	defaultConfigName   = "fizzbench"
	slackTokenEnv       = "SLACK_BOT_USER_TOKEN"
)

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error; an unreadable one is.
func Load(cfgFile string) error {
	// explicit .env loading, a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(defaultConfigName)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyRounds, benchmark.DefaultRounds)
	viper.SetDefault(KeyLower, benchmark.DefaultLower)
	viper.SetDefault(KeyUpper, benchmark.DefaultUpper)
	viper.SetDefault(KeyFormat, "")
	viper.SetDefault(KeyCandidates, []string{})
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyStoreType, "json")
	viper.SetDefault(KeyStorePath, "")
	viper.SetDefault(KeyStoreDSN, "")
	viper.SetDefault(KeyCompareThreshold, DefaultThresholdPct)
	viper.SetDefault(KeyMetricsTextfile, "")
	viper.SetDefault(KeyMetricsPushURL, "")
	viper.SetDefault(KeyMetricsJob, DefaultMetricsJob)
	viper.SetDefault(KeySlackEnabled, os.Getenv(slackTokenEnv) != "")
	viper.SetDefault(KeySlackChannel, DefaultSlackChannel)
	viper.SetDefault(KeyReportStyle, DefaultReportStyle)
}
