// Команда presoak собирает объединенную запись для точки и пишет ее строкой CSV датасета.
//
// Использование:
//
//	go run ./cmd/presoak -lat 37.6 -lon -120.9 -days 7 -out pre_soak_dataset.csv
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/shenikar/presoak_risk_system/internal/service"
	"github.com/shenikar/presoak_risk_system/internal/upstream"
	"github.com/shenikar/presoak_risk_system/pkg/logger"
	"github.com/sirupsen/logrus"
)

const defaultOut = "pre_soak_dataset.csv"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	lat := flag.Float64("lat", cfg.DefaultLat, "latitude of the point")
	lon := flag.Float64("lon", cfg.DefaultLon, "longitude of the point")
	days := flag.Int("days", cfg.DaysBack, "lookback window in days for fires and evapotranspiration")
	out := flag.String("out", defaultOut, "output CSV path")
	appendRow := flag.Bool("append", false, "append to an existing dataset instead of overwriting it")
	flag.Parse()

	// Логи в stderr, чтобы не мешать выводу в stdout при -out -
	log := logger.NewWithOutput(cfg.LogLevel, os.Stderr)

	cfg.DaysBack = *days
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *lat < -90 || *lat > 90 || *lon < -180 || *lon > 180 {
		log.Fatalf("Coordinates out of range: lat=%v lon=%v", *lat, *lon)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	opts := upstream.Options{Logger: log, Clock: clock}
	firms := upstream.NewFIRMSClient(cfg, opts)
	weather := upstream.NewOpenWeatherClient(cfg, opts)
	builder := service.NewDatasetBuilder(firms, weather, weather, upstream.NewOpenETClient(cfg, opts), log, clock, cfg.Location())

	ds := builder.Build(ctx, *lat, *lon)
	if ctx.Err() != nil {
		log.Fatal("Interrupted before the dataset was written")
	}

	if err := writeDataset(*out, *appendRow, ds.Record.Flatten()); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	log.WithFields(logrus.Fields{
		"out":     *out,
		"seri":    ds.Record.Risk.Score,
		"band":    ds.Record.Risk.Band,
		"sources": ds.Record.Sources,
	}).Info("Dataset written")
}

// writeDataset пишет строку в файл; "-" означает stdout. При append заголовок пишется только в пустой файл.
func writeDataset(path string, appendRow bool, rows ...models.FlatRecord) error {
	if path == "-" {
		return writeCSV(os.Stdout, true, rows)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendRow {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	header := true
	if appendRow {
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return fmt.Errorf("stat %s: %w", path, err)
		}
		header = info.Size() == 0
	}

	werr := writeCSV(f, header, rows)
	cerr := f.Close()
	return errors.Join(werr, cerr)
}

func writeCSV(w io.Writer, header bool, rows []models.FlatRecord) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(models.CSVHeader()); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, row := range rows {
		if err := cw.Write(row.CSVRow()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
