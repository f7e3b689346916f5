package main

import (
	"fmt"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sentiview/internal/annotation"
	"sentiview/internal/config"
	"sentiview/internal/dataset"
	"sentiview/internal/http"
	"sentiview/internal/service"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "sentiview",
	Short:   "Review attitude annotations extracted from news articles",
	Long:    "Sentiview serves a local viewer/editor for machine-generated sentiment and attitude annotations, and exports reviewer corrections.",
	Version: version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load a dataset and serve the review API and viewer page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Configure structured logging with configurable level and format
		opts := &slog.HandlerOptions{Level: cfg.LogLevel}
		var handler slog.Handler
		if cfg.LogFormat == "json" {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		slog.SetDefault(slog.New(handler))

		store, err := loadDataset(cfg.DataPath)
		if err != nil {
			return err
		}
		slog.Info("Dataset loaded", "path", cfg.DataPath, "records", store.Len())

		reviews := service.NewReviewService(store, cfg.DefaultPageSize)
		router := http.NewRouter(&http.Deps{Reviews: reviews})

		addr := ":" + cfg.APIPort
		slog.Info("Starting API server", "addr", addr)
		if err := nethttp.ListenAndServe(addr, router); err != nil {
			log.Fatalf("API server failed to start: %v", err)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <dataset>",
	Short: "Check that a dataset file loads cleanly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d records", args[0], store.Len())
		if min, max, ok := store.DateRange(); ok {
			fmt.Printf(", %s to %s", min.Format("2006-01-02"), max.Format("2006-01-02"))
		}
		fmt.Printf(", %d companies\n", len(store.Companies()))
		return nil
	},
}

// loadDataset picks the loader from the file extension: .json for JSON
// arrays, .db or .sqlite for extraction-pipeline databases.
func loadDataset(path string) (*dataset.Store, error) {
	var records []annotation.Record
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		records, err = dataset.LoadSQLite(path)
	default:
		records, err = dataset.LoadJSON(path)
	}
	if err != nil {
		return nil, err
	}

	store := dataset.NewStore()
	if err := store.Load(records); err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	store.SetSource(path)
	return store, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}
