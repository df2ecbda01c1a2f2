// Command analyze runs one analysis over local notice files and writes the
// unified report.
// Usage: go run ./cmd/analyze -format html -out report.html avviso.txt perizia.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/export"
	"lexasta/internal/extraction"
	"lexasta/internal/logger"
	"lexasta/internal/model"
	_ "lexasta/internal/model/claude"
	_ "lexasta/internal/model/gemini"
	_ "lexasta/internal/model/openai"
	"lexasta/internal/pipeline"
	"lexasta/internal/port"
	"lexasta/internal/reconcile"
	"lexasta/internal/recovery"
	"lexasta/internal/service"
	"lexasta/internal/storage/noop"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "analyze:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	format := fs.String("format", "txt", "report format: json, html, txt, csv, xlsx")
	out := fs.String("out", "", "output file (default stdout)")
	apiKey := fs.String("api-key", "", "model API key overriding the configured one")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no input files")
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	// Logs go to stderr so a report on stdout stays clean.
	log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	client, err := model.NewFromConfig(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("initializing model client: %w", err)
	}
	orchestrator := pipeline.NewOrchestrator(
		recovery.New(cfg.Recovery, log),
		extraction.New(client, cfg.Extraction, log),
		reconcile.NewEngine(client, cfg.Reconcile, cfg.Extraction, log),
		pipeline.LogObserver{Log: log},
		log,
	)
	svc := service.NewBatchService(orchestrator, service.NewAnalysisQueue(1), noop.New(), cfg.Upload, cfg.S3, log)

	ctx := port.WithAPIKey(context.Background(), *apiKey)
	id := svc.Create(ctx).ID

	inputs := make([]service.FileInput, 0, fs.NArg())
	for _, path := range fs.Args() {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		inputs = append(inputs, service.FileInput{
			Name:   filepath.Base(path),
			Size:   info.Size(),
			Source: domain.FileSource(path),
		})
	}
	res, err := svc.AddFiles(ctx, id, inputs)
	if err != nil {
		return err
	}
	for _, d := range res.Duplicates {
		log.Warn("analyze.duplicate_skipped", "file", d)
	}
	for _, r := range res.Rejected {
		log.Warn("analyze.file_rejected", "file", r.Name, "reason", r.Reason)
	}

	if err := svc.Run(ctx, id); err != nil {
		return err
	}

	rep, err := svc.Report(ctx, id, f)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer func() { _ = file.Close() }()
		w = file
	}
	if _, err := w.Write(rep.Body); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	snap, _ := svc.Get(ctx, id)
	for _, d := range snap.Documents {
		log.Info("analyze.document", "file", d.Name, "status", d.Status, "error", d.Error)
	}
	return nil
}
