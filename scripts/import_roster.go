//go:build ignore

// One-off roster import: loads cadets from a CSV export into the cadet
// database. Expected columns: cap_id,first_name,last_name,date_of_birth,join_date
// (header row optional). Existing CAP IDs are skipped.
//
// Usage:
//
//	go run scripts/import_roster.go -db ~/.cadet/cadet.db -csv roster.csv
package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	dbPath := flag.String("db", "", "Path to cadet.db")
	csvPath := flag.String("csv", "", "Path to roster CSV")
	dryRun := flag.Bool("dry-run", false, "Print what would be imported without writing")
	flag.Parse()

	if *dbPath == "" || *csvPath == "" {
		fmt.Fprintln(os.Stderr, "both -db and -csv are required")
		os.Exit(1)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse CSV: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	imported, skipped := 0, 0
	for i, row := range rows {
		if len(row) < 3 {
			fmt.Fprintf(os.Stderr, "row %d: want at least 3 columns, got %d\n", i+1, len(row))
			os.Exit(1)
		}
		capID, err := strconv.Atoi(row[0])
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			fmt.Fprintf(os.Stderr, "row %d: bad CAP ID %q\n", i+1, row[0])
			os.Exit(1)
		}

		var exists int
		if err := db.QueryRow("SELECT COUNT(*) FROM cadets WHERE cap_id = ?", capID).Scan(&exists); err != nil {
			fmt.Fprintf(os.Stderr, "row %d: %v\n", i+1, err)
			os.Exit(1)
		}
		if exists > 0 {
			skipped++
			continue
		}

		dob, joinDate := "", ""
		if len(row) > 3 {
			dob = row[3]
		}
		if len(row) > 4 {
			joinDate = row[4]
		}

		if *dryRun {
			fmt.Printf("would import %d: %s %s\n", capID, row[1], row[2])
			imported++
			continue
		}

		_, err = db.Exec(
			"INSERT INTO cadets (cap_id, first_name, last_name, date_of_birth, join_date) VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''))",
			capID, row[1], row[2], dob, joinDate,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "row %d: insert failed: %v\n", i+1, err)
			os.Exit(1)
		}
		imported++
	}

	fmt.Printf("imported %d cadet(s), skipped %d existing\n", imported, skipped)
}
