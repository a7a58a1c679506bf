package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fizzbench/internal/config"
	"fizzbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fizzbench",
	Short: "Benchmark FizzBuzz implementations against each other",
	Long: `fizzbench times several FizzBuzz classifiers over a large input sweep,
one candidate at a time on a single goroutine, and prints the raw
duration samples. Results can be saved, compared, summarized and exported.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fizzbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also append JSON logs to this file")
	rootCmd.PersistentFlags().StringSlice("candidates", nil, "Restrict to these candidates (comma-separated, registry order is kept)")
	rootCmd.PersistentFlags().String("store", "", "History store: json, sqlite or postgres")
	rootCmd.PersistentFlags().String("store-path", "", "History file for the json and sqlite stores")
	rootCmd.PersistentFlags().String("store-dsn", "", "Connection string for the postgres store")

	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag(config.KeyCandidates, rootCmd.PersistentFlags().Lookup("candidates"))
	viper.BindPFlag(config.KeyStoreType, rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag(config.KeyStorePath, rootCmd.PersistentFlags().Lookup("store-path"))
	viper.BindPFlag(config.KeyStoreDSN, rootCmd.PersistentFlags().Lookup("store-dsn"))

	rootCmd.AddCommand(
		newRunCmd(),
		newListCmd(),
		newVerifyCmd(),
		newHistoryCmd(),
		newCompareCmd(),
		newSummaryCmd(),
		newReportCmd(),
		newVersionCmd(),
	)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	// Validate configuration values
	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	telemetry.InitLogger(viper.GetBool(config.KeyVerbose), viper.GetString(config.KeyLogFile))
}
