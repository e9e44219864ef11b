package main

import (
	"fmt"
	"os"

	"PaymentEngine/internal/engine"
	"PaymentEngine/internal/ingestion"
	"PaymentEngine/internal/observability"
	"PaymentEngine/internal/report"
)

func main() {
	logger := observability.NewLogger("payengine")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: payengine <transactions.csv>")
		os.Exit(2)
	}
	path := os.Args[1]

	file, err := os.Open(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("open transactions file")
	}
	defer file.Close()

	eng := engine.New(logger, observability.NewMetrics())

	// Malformed records are fatal: the run aborts before any output is
	// produced.
	if err := ingestion.ForEach(file, eng.Process); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("malformed transaction stream")
	}

	if err := report.Write(os.Stdout, eng.Snapshot()); err != nil {
		logger.Fatal().Err(err).Msg("write report")
	}
}
