package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"fizzbench/internal/benchmark"
)

// Input bounds are stored as decimal text: database/sql cannot carry uint64
// values with the high bit set.
func formatBound(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func parseBound(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// loadRuns reads every run and its samples, oldest first. runsQuery must
// select id, timestamp_ns, commit_hash, lower_bound, upper_bound, rounds
// ordered by timestamp; samplesQuery must select run_id, position,
// candidate, round, elapsed_ns ordered by run_id, position, round. A row with a
// negative round only registers a candidate that recorded no samples.
func loadRuns(db *sql.DB, runsQuery, samplesQuery string) ([]benchmark.Run, error) {
	rows, err := db.Query(runsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []benchmark.Run{}
	index := make(map[int64]int)
	for rows.Next() {
		var (
			id, ts       int64
			commit       string
			lower, upper string
			rounds       int
		)
		if err := rows.Scan(&id, &ts, &commit, &lower, &upper, &rounds); err != nil {
			return nil, err
		}
		run := benchmark.Run{Timestamp: time.Unix(0, ts), Commit: commit, Rounds: rounds, Results: []benchmark.Result{}}
		if run.Lower, err = parseBound(lower); err != nil {
			return nil, fmt.Errorf("run %d: bad lower bound: %w", id, err)
		}
		if run.Upper, err = parseBound(upper); err != nil {
			return nil, fmt.Errorf("run %d: bad upper bound: %w", id, err)
		}
		index[id] = len(runs)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	samples, err := db.Query(samplesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer samples.Close()

	for samples.Next() {
		var (
			runID     int64
			position  int
			candidate string
			round     int
			elapsed   int64
		)
		if err := samples.Scan(&runID, &position, &candidate, &round, &elapsed); err != nil {
			return nil, err
		}
		i, ok := index[runID]
		if !ok {
			continue
		}
		run := &runs[i]
		for len(run.Results) <= position {
			run.Results = append(run.Results, benchmark.Result{Samples: []time.Duration{}})
		}
		run.Results[position].Name = candidate
		if round < 0 {
			continue
		}
		run.Results[position].Samples = append(run.Results[position].Samples, time.Duration(elapsed))
	}
	return runs, samples.Err()
}

func latest(runs []benchmark.Run, err error) (*benchmark.Run, error) {
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}
