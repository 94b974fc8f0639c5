package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/appdir-cli/internal/brand"
	"github.com/sells-group/appdir-cli/internal/resilience"
	"github.com/sells-group/appdir-cli/internal/scrape"
	"github.com/sells-group/appdir-cli/internal/sheet"
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Vendor inference and validation",
}

var (
	inferIn  string
	inferOut string
)

var vendorInferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Infer a Vendor column from Official URLs",
	Long:  "Computes a vendor name for every row from its Official URL using domain heuristics and inserts a Vendor column immediately after Description, replacing any existing one.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := sheet.ReadTable(inferIn, cfg.Sheet.Directory)
		if err != nil {
			return err
		}

		urlIdx := t.ColumnIndex(sheet.ColOfficialURL)
		vendors := make([]string, len(t.Rows))
		for i := range t.Rows {
			vendors[i] = brand.InferVendor(t.Cell(i, urlIdx))
		}

		if idx := t.ColumnIndex(sheet.ColVendor); idx >= 0 {
			t.RemoveColumn(idx)
		}
		insertAt := 0
		if idx := t.ColumnIndex(sheet.ColDescription); idx >= 0 {
			insertAt = idx + 1
		}
		t.InsertColumn(insertAt, sheet.ColVendor, vendors)

		if err := sheet.WriteTable(inferOut, cfg.Sheet.Directory, t); err != nil {
			return err
		}

		zap.L().Info("vendor infer complete",
			zap.Int("rows", len(t.Rows)),
			zap.String("in", inferIn),
			zap.String("out", inferOut),
		)
		return nil
	},
}

// newChain builds the production fetch chain from config: primary HTTP
// scraper, plus the browser-profile fallback unless disabled.
func newChain() *scrape.Chain {
	primary := scrape.NewHTTPScraper(scrape.HTTPOptions{
		UserAgent:   cfg.Fetch.UserAgent,
		Timeout:     time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		InsecureTLS: cfg.Fetch.InsecureTLS,
	})
	var fallback scrape.Scraper
	if !cfg.Fetch.NoFallback {
		fallback = scrape.NewBrowserScraper(scrape.BrowserOptions{
			UserAgent:   cfg.Fetch.UserAgent,
			Timeout:     time.Duration(cfg.Fetch.FallbackTimeoutSecs) * time.Second,
			InsecureTLS: cfg.Fetch.InsecureTLS,
		})
	}
	return scrape.NewChain(primary, fallback).WithRetry(resilience.RetryConfig{
		MaxAttempts:    cfg.Fetch.RetryAttempts,
		InitialBackoff: time.Duration(cfg.Fetch.RetryBackoffMs) * time.Millisecond,
	})
}

func init() {
	vendorInferCmd.Flags().StringVar(&inferIn, "in", "", "input directory workbook (required)")
	vendorInferCmd.Flags().StringVar(&inferOut, "out", "", "output directory workbook (required)")
	_ = vendorInferCmd.MarkFlagRequired("in")
	_ = vendorInferCmd.MarkFlagRequired("out")

	vendorCmd.AddCommand(vendorInferCmd)
	rootCmd.AddCommand(vendorCmd)
}
