// The seeder bulk-loads a flights CSV dataset (origin, destination, time,
// price, seats) into Postgres. It is a one-shot loader; the API never
// creates flights itself.
package main

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtereshin/skyfare/config"
	"github.com/mtereshin/skyfare/migrations"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	csvPath := cfg.Seeder.CSVPath
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	if csvPath == "" {
		log.Fatal("no dataset: set seeder.csv_path or pass the path as an argument")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("open dataset: %v", err)
	}
	defer f.Close()

	n, err := seed(ctx, pool, f)
	if err != nil {
		log.Fatalf("seed flights: %v", err)
	}
	log.Printf("seeded %d flights from %s", n, csvPath)
}

func seed(ctx context.Context, pool *pgxpool.Pool, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, err
	}
	col := columnIndex(header)

	inserted := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, err
		}

		origin := field(record, col, "origin")
		destination := field(record, col, "destination")
		departure := field(record, col, "time")
		fare, _ := strconv.ParseFloat(field(record, col, "price"), 64)
		seats, _ := strconv.Atoi(field(record, col, "seats"))
		if origin == "" || destination == "" {
			continue
		}
		if seats < 1 {
			seats = 1
		}
		if fare < 0 {
			fare = 0
		}

		_, err = pool.Exec(ctx, `INSERT INTO flights (origin, destination, departure_time, base_fare, seats_total, seats_available, demand_index)
			VALUES ($1, $2, $3, $4, $5, $5, 1.0)`,
			origin, destination, departure, fare, seats)
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// columnIndex maps lowercased header names to positions; the dataset's
// header casing is inconsistent ("Origin" next to "destination").
func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

func field(record []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
