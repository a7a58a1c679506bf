package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fizzbench/internal/benchmark"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults Without Config File", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		require.NoError(t, Load(""))

		s := Current()
		assert.Equal(t, benchmark.DefaultConfig(), s.Benchmark)
		assert.Equal(t, benchmark.Format(""), s.Format)
		assert.Equal(t, "json", s.Store.Type)
		assert.Equal(t, DefaultThresholdPct, s.Threshold)
		assert.Equal(t, DefaultMetricsJob, s.Metrics.Job)
		assert.Equal(t, DefaultReportStyle, s.ReportStyle)
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("FIZZBENCH_ROUNDS", "100")
		t.Setenv("FIZZBENCH_UPPER", "5000")
		t.Setenv("FIZZBENCH_STORE_TYPE", "sqlite")
		t.Setenv("FIZZBENCH_CANDIDATES", "brute_fizzbuzz, cycle_fizzbuzz")

		require.NoError(t, Load(""))

		s := Current()
		assert.Equal(t, 100, s.Benchmark.Rounds)
		assert.Equal(t, uint64(5000), s.Benchmark.Upper)
		assert.Equal(t, "sqlite", s.Store.Type)
		assert.Equal(t, []string{"brute_fizzbuzz", "cycle_fizzbuzz"}, s.Candidates)
	})

	t.Run("Load From File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		path := filepath.Join(dir, "bench.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
rounds: 100
lower: 10
format: csv
candidates: [switch_fizzbuzz]
store:
  type: postgres
  dsn: postgres://bench@localhost/bench
`), 0644))

		require.NoError(t, Load(path))

		s := Current()
		assert.Equal(t, benchmark.Config{Lower: 10, Upper: benchmark.DefaultUpper, Rounds: 100}, s.Benchmark)
		assert.Equal(t, benchmark.FormatCSV, s.Format)
		assert.Equal(t, []string{"switch_fizzbuzz"}, s.Candidates)
		assert.Equal(t, "postgres://bench@localhost/bench", s.Store.ConnectionString)
	})

	t.Run("Explicit Missing File", func(t *testing.T) {
		viper.Reset()
		err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "failed to read config file")
	})
}
