package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"fizzbench/internal/benchmark"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	// Bounds must parse as unsigned integers; viper would silently turn "-1" into 0.
	lower, lowerErr := cast.ToUint64E(viper.Get(KeyLower))
	if lowerErr != nil || isNegative(viper.Get(KeyLower)) {
		errors = append(errors, fmt.Sprintf("lower must be a non-negative integer, got: %v", viper.Get(KeyLower)))
	}
	upper, upperErr := cast.ToUint64E(viper.Get(KeyUpper))
	if upperErr != nil || isNegative(viper.Get(KeyUpper)) {
		errors = append(errors, fmt.Sprintf("upper must be a non-negative integer, got: %v", viper.Get(KeyUpper)))
	}
	if lowerErr == nil && upperErr == nil && lower > upper {
		errors = append(errors, fmt.Sprintf("lower (%d) must not exceed upper (%d)", lower, upper))
	}

	// Zero rounds is allowed and produces empty sample sequences.
	if rounds := viper.GetInt(KeyRounds); rounds < 0 {
		errors = append(errors, fmt.Sprintf("rounds must not be negative, got: %d", rounds))
	}

	if _, err := benchmark.ParseFormat(viper.GetString(KeyFormat)); err != nil {
		errors = append(errors, err.Error())
	}

	switch t := strings.ToLower(viper.GetString(KeyStoreType)); t {
	case "", "json", "sqlite", "sqlite3", "postgres", "postgresql":
		if isPostgres(t) && viper.GetString(KeyStoreDSN) == "" {
			errors = append(errors, "store.dsn is required for the postgres store")
		}
	default:
		errors = append(errors, fmt.Sprintf("store.type must be json, sqlite or postgres, got: %s", t))
	}

	if threshold := viper.GetFloat64(KeyCompareThreshold); threshold < 0 {
		errors = append(errors, fmt.Sprintf("compare.threshold must not be negative, got: %v", threshold))
	}

	if viper.GetBool(KeySlackEnabled) && viper.GetString(KeySlackChannel) == "" {
		errors = append(errors, "notifications.slack.channel is required when slack notifications are enabled")
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}

func isNegative(v any) bool {
	i, err := cast.ToInt64E(v)
	return err == nil && i < 0
}
