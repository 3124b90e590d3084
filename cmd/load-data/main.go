package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/Manuelc122/saber-pro-dashboard/driver"
	"github.com/Manuelc122/saber-pro-dashboard/etl"
)

var (
	inputPath = flag.String("input", "", "Saber Pro CSV export (local path or s3://bucket/key)")
	dbPath    = flag.String("db", "", "SQLite output path (default: resolved like the server)")
	chunkSize = flag.Int("chunk-size", 50000, "Rows per transaction")
	limitRows = flag.Int("limit", 0, "Optional row limit for testing (0 = all rows)")
)

func main() {
	flag.Parse()

	// .env is optional for the loader; the flags carry everything needed
	// for a local run.
	_ = godotenv.Load()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: load-data -input <csv path or s3://bucket/key> [-db path] [-chunk-size n] [-limit n]")
		os.Exit(2)
	}

	source := *inputPath
	if etl.IsS3Path(source) {
		local, err := etl.FetchFromS3(source)
		if err != nil {
			log.Fatalf("Failed to fetch dataset from S3: %v", err)
		}
		defer os.Remove(local)
		source = local
	}

	target := *dbPath
	if target == "" {
		target = driver.DBPath()
	}

	processor := etl.NewProcessor(source, target)
	processor.ChunkSize = *chunkSize
	processor.Limit = *limitRows

	start := time.Now()
	total, err := processor.ProcessData()
	if err != nil {
		log.Fatalf("Data processing failed: %v", err)
	}

	db, err := sql.Open("sqlite", target)
	if err != nil {
		log.Fatalf("Failed to reopen database: %v", err)
	}
	defer db.Close()

	stats, err := etl.GetBasicStats(db)
	if err != nil {
		log.Fatalf("Failed to compute basic stats: %v", err)
	}

	fmt.Println("\nData Processing Summary:")
	fmt.Println("\nPeriod Distribution:")
	for _, pc := range stats.PeriodDistribution {
		fmt.Printf("  %-8s %d\n", pc.Periodo, pc.Count)
	}
	fmt.Println("\nAverage Scores by Period:")
	for _, ps := range stats.AverageScores {
		fmt.Printf("  %-8s math=%.2f reading=%.2f english=%.2f\n",
			ps.Periodo, ps.AvgMath, ps.AvgReading, ps.AvgEnglish)
	}
	fmt.Printf("\nTotal records loaded: %d\n", total)
	fmt.Printf("Total processing time: %.2f minutes\n", time.Since(start).Minutes())
}
