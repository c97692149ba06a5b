package main

//// Small CLI tool that renders workout activity charts (daily sets,
//// daily snoozes, workout vs snooze trend) as PNG files from the database.

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/2beens/gymsupervisor/internal/charts"
	"github.com/2beens/gymsupervisor/internal/db"
	"github.com/2beens/gymsupervisor/internal/taxonomy"
	"github.com/2beens/gymsupervisor/internal/workout"
)

func init() {
	log.SetOutput(os.Stdout)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	host := flag.String("host", "localhost", "postgres host")
	port := flag.String("port", "5432", "postgres port")
	dbName := flag.String("db", "gymsupervisor", "postgres db name")
	outDir := flag.String("out", "charts", "output directory for the PNG files")
	days := flag.Int("days", 90, "how many days back to chart")
	timezone := flag.String("timezone", "America/Los_Angeles", "timezone for day bucketing")
	flag.Parse()

	if *days <= 0 {
		fmt.Println("Error: -days must be positive")
		os.Exit(1)
	}

	loc, err := time.LoadLocation(*timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v\n", *timezone, err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output dir %s: %v\n", *outDir, err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: *host,
		DBPort: *port,
		DBName: *dbName,
	})
	if err != nil {
		log.Fatalf("Failed to create db pool: %v\n", err)
	}
	defer dbPool.Close()

	repo := workout.NewRepo(dbPool, taxonomy.NewTable(), loc)
	generator := charts.NewGenerator(repo, *outDir)

	now := time.Now().In(loc)
	files, err := generator.GenerateAll(ctx, now.AddDate(0, 0, -*days), now)
	if err != nil {
		log.Fatalf("Failed to generate charts: %v\n", err)
	}

	if len(files) == 0 {
		log.Println("No activity in the chosen window, nothing to chart")
		return
	}
	for _, f := range files {
		log.Printf("+++ Chart written: %s\n", f)
	}
}
