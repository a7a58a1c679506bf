package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"fizzbench/internal/benchmark"
	"fizzbench/internal/db"
)

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Benchmark   benchmark.Config
	Format      benchmark.Format
	Candidates  []string
	Verbose     bool
	LogFile     string
	Store       db.StoreConfig
	Threshold   float64
	Metrics     MetricsSettings
	Slack       SlackSettings
	ReportStyle string
}

type MetricsSettings struct {
	Textfile    string
	Pushgateway string
	Job         string
}

type SlackSettings struct {
	Enabled bool
	Channel string
	Token   string
}

// Current materialises Settings from viper. Call ValidateConfig first; an
// unparseable format is reported as empty here.
func Current() Settings {
	format, _ := benchmark.ParseFormat(viper.GetString(KeyFormat))

	store := db.StoreConfig{Type: viper.GetString(KeyStoreType), ConnectionString: viper.GetString(KeyStorePath)}
	if isPostgres(store.Type) {
		store.ConnectionString = viper.GetString(KeyStoreDSN)
	}

	return Settings{
		Benchmark: benchmark.Config{
			Lower:  viper.GetUint64(KeyLower),
			Upper:  viper.GetUint64(KeyUpper),
			Rounds: viper.GetInt(KeyRounds),
		},
		Format:     format,
		Candidates: candidates(),
		Verbose:    viper.GetBool(KeyVerbose),
		LogFile:    viper.GetString(KeyLogFile),
		Store:      store,
		Threshold:  viper.GetFloat64(KeyCompareThreshold),
		Metrics: MetricsSettings{
			Textfile:    viper.GetString(KeyMetricsTextfile),
			Pushgateway: viper.GetString(KeyMetricsPushURL),
			Job:         viper.GetString(KeyMetricsJob),
		},
		Slack: SlackSettings{
			Enabled: viper.GetBool(KeySlackEnabled),
			Channel: viper.GetString(KeySlackChannel),
			Token:   os.Getenv(slackTokenEnv),
		},
		ReportStyle: viper.GetString(KeyReportStyle),
	}
}

// candidates accepts both a list and a comma-separated string (env vars).
func candidates() []string {
	var out []string
	for _, item := range viper.GetStringSlice(KeyCandidates) {
		for _, name := range strings.Split(item, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

func isPostgres(storeType string) bool {
	t := strings.ToLower(storeType)
	return t == "postgres" || t == "postgresql"
}
