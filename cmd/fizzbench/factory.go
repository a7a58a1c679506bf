package main

import (
	"errors"

	"fizzbench/internal/benchmark"
	"fizzbench/internal/config"
	"fizzbench/internal/db"
	"fizzbench/internal/fizzbuzz"
	"fizzbench/internal/git"
	"fizzbench/internal/notify"
)

// Constructors are package variables so tests can substitute fakes.
var (
	newRegistryFunc = fizzbuzz.Default
	newRunnerFunc   = func(cfg benchmark.Config, observers ...benchmark.Observer) benchmark.Runner {
		return benchmark.NewHarness(cfg, observers...)
	}
	newStoreFunc    = db.NewStore
	newNotifierFunc = func(s config.SlackSettings) notify.Notifier {
		return notify.NewSlackNotifier(s.Token, s.Channel)
	}
	gitCommitFunc = getGitCommit
)

// selectedRegistry applies the configured candidate filter to the registry.
func selectedRegistry(settings config.Settings) (*fizzbuzz.Registry, error) {
	return newRegistryFunc().Select(settings.Candidates)
}

var errNoRepository = errors.New("working directory is not a git repository")

// getGitCommit stamps runs with the revision of the working directory.
func getGitCommit() (string, error) {
	client := git.NewClient()
	if !client.RepoExists(".") {
		return "", errNoRepository
	}
	return client.Revision(".")
}
