package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fizzbench/internal/benchmark"
	"fizzbench/internal/config"
	"fizzbench/internal/db"
	"fizzbench/internal/fizzbuzz"
	"fizzbench/internal/notify"
)

// mockRunner returns canned samples instead of timing anything.
type mockRunner struct {
	cfg       benchmark.Config
	observers []benchmark.Observer
	sample    func(name string, round int) time.Duration
	runs      int
}

func (m *mockRunner) Run(reg *fizzbuzz.Registry) benchmark.Run {
	m.runs++
	run := benchmark.Run{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Lower:     m.cfg.Lower,
		Upper:     m.cfg.Upper,
		Rounds:    m.cfg.Rounds,
	}
	for _, name := range reg.Names() {
		res := benchmark.Result{Name: name, Samples: []time.Duration{}}
		for round := 0; round < m.cfg.Rounds; round++ {
			d := time.Second
			if m.sample != nil {
				d = m.sample(name, round)
			}
			res.Samples = append(res.Samples, d)
			for _, o := range m.observers {
				o.OnSample(name, round, d)
			}
		}
		run.Results = append(run.Results, res)
	}
	return run
}

// mockStore keeps runs in memory.
type mockStore struct {
	runs     []benchmark.Run
	failLoad bool
	failSave bool
	closed   bool
}

func (m *mockStore) Save(run benchmark.Run) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockStore) LoadAll() ([]benchmark.Run, error) {
	if m.failLoad {
		return nil, errors.New("corrupt history")
	}
	return m.runs, nil
}

func (m *mockStore) LoadLatest() (*benchmark.Run, error) {
	if m.failLoad {
		return nil, errors.New("corrupt history")
	}
	if len(m.runs) == 0 {
		return nil, nil
	}
	return &m.runs[len(m.runs)-1], nil
}

func (m *mockStore) Close() error {
	m.closed = true
	return nil
}

type mockNotifier struct {
	messages []string
	err      error
}

func (m *mockNotifier) Notify(ctx context.Context, message string) error {
	m.messages = append(m.messages, message)
	return m.err
}

// testEnv swaps every factory for a fake and restores them on cleanup.
type testEnv struct {
	runner   *mockRunner
	store    *mockStore
	notifier *mockNotifier
	storeErr error
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("SLACK_BOT_USER_TOKEN", "")

	env := &testEnv{store: &mockStore{}, notifier: &mockNotifier{}}

	oldRunner, oldStore, oldNotifier, oldGit, oldRegistry :=
		newRunnerFunc, newStoreFunc, newNotifierFunc, gitCommitFunc, newRegistryFunc
	t.Cleanup(func() {
		newRunnerFunc, newStoreFunc, newNotifierFunc, gitCommitFunc, newRegistryFunc =
			oldRunner, oldStore, oldNotifier, oldGit, oldRegistry
	})

	newRunnerFunc = func(cfg benchmark.Config, observers ...benchmark.Observer) benchmark.Runner {
		if env.runner == nil {
			return benchmark.NewHarness(cfg, observers...)
		}
		env.runner.cfg = cfg
		env.runner.observers = observers
		return env.runner
	}
	newStoreFunc = func(cfg db.StoreConfig) (benchmark.Store, error) {
		if env.storeErr != nil {
			return nil, env.storeErr
		}
		return env.store, nil
	}
	newNotifierFunc = func(config.SlackSettings) notify.Notifier {
		return env.notifier
	}
	gitCommitFunc = func() (string, error) { return "abc1234", nil }

	return env
}

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	// Mock exit
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				// This is an expected exit, don't re-panic
				return
			}
			panic(r) // Re-panic actual panics
		}
	}()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// savedRun builds a run whose every candidate took median seconds.
func savedRun(commit string, ts time.Time, median time.Duration, names ...string) benchmark.Run {
	run := benchmark.Run{Timestamp: ts, Commit: commit, Lower: 0, Upper: 100, Rounds: 1}
	for _, n := range names {
		run.Results = append(run.Results, benchmark.Result{Name: n, Samples: []time.Duration{median}})
	}
	return run
}
