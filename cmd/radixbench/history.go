package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/subcommands"
	_ "github.com/mattn/go-sqlite3"
)

// History schema: one row per run, one row per result. Reports are also
// written as JSON; the database exists to compare runs over time without
// re-parsing a directory of report files.
const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	timestamp    TEXT NOT NULL,
	go_version   TEXT NOT NULL,
	goos         TEXT NOT NULL,
	goarch       TEXT NOT NULL,
	num_cpu      INTEGER NOT NULL,
	cpu_features TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id     TEXT NOT NULL REFERENCES runs(run_id),
	case_name  TEXT NOT NULL,
	dist       TEXT NOT NULL,
	size       INTEGER NOT NULL,
	mode       TEXT NOT NULL,
	record     TEXT NOT NULL,
	runs       INTEGER NOT NULL,
	p50_ns     INTEGER NOT NULL,
	p99_ns     INTEGER NOT NULL,
	mean_ns    REAL NOT NULL,
	stddev_ns  REAL NOT NULL,
	mb_per_sec REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS results_by_point ON results(case_name, size, mode);
`

// appendHistory inserts a report into the history database, creating the
// schema on first use.
func appendHistory(dbPath string, r *Report) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(historySchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, timestamp, go_version, goos, goarch, num_cpu, cpu_features)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Timestamp, r.GoVersion, r.GOOS, r.GOARCH, r.NumCPU,
		strings.Join(r.CPUFeatures, ","))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO results (run_id, case_name, dist, size, mode, record, runs,
		                      p50_ns, p99_ns, mean_ns, stddev_ns, mb_per_sec)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, res := range r.Results {
		_, err := stmt.Exec(r.RunID, res.Case, res.Dist, res.Size, res.Mode, res.Record,
			res.Runs, res.P50Ns, res.P99Ns, res.MeanNs, res.StddevNs, res.MBPerSec)
		if err != nil {
			return fmt.Errorf("failed to insert result: %w", err)
		}
	}
	return tx.Commit()
}

type historyCmd struct {
	dbPath   string
	caseName string
	limit    int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list benchmark results recorded in the history db" }
func (*historyCmd) Usage() string    { return "" }

func (c *historyCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.dbPath, "db", "radixbench.db", "path to the history database")
	fs.StringVar(&c.caseName, "case", "", "only show results for this case")
	fs.IntVar(&c.limit, "n", 20, "show at most this many results")
}

func (c *historyCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	db, err := sql.Open("sqlite3", c.dbPath)
	if err != nil {
		log.Fatalf("failed to open history db: %v", err)
	}
	defer db.Close()

	query := `
		SELECT runs.timestamp, results.case_name, results.size, results.mode,
		       results.p50_ns, results.mb_per_sec
		FROM results JOIN runs ON results.run_id = runs.run_id`
	var queryArgs []interface{}
	if c.caseName != "" {
		query += " WHERE results.case_name = ?"
		queryArgs = append(queryArgs, c.caseName)
	}
	query += " ORDER BY runs.timestamp DESC LIMIT ?"
	queryArgs = append(queryArgs, c.limit)

	rows, err := db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	fmt.Printf("%-20s %-20s %-10s %-7s %-12s %s\n",
		"TIMESTAMP", "CASE", "SIZE", "MODE", "P50", "MB/S")
	for rows.Next() {
		var (
			timestamp, caseName, mode string
			size                      int
			p50Ns                     int64
			mbPerSec                  float64
		)
		if err := rows.Scan(&timestamp, &caseName, &size, &mode, &p50Ns, &mbPerSec); err != nil {
			log.Fatalf("scan failed: %v", err)
		}
		fmt.Printf("%-20s %-20s %-10d %-7s %-12s %.0f\n",
			timestamp, caseName, size, mode, time.Duration(p50Ns), mbPerSec)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("rows: %v", err)
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(historyCmd)
