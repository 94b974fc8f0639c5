package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/appdir-cli/internal/sheet"
	"github.com/sells-group/appdir-cli/internal/validate"
)

var (
	validateIn     string
	validateReport string
	validateOut    string
)

var vendorValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate Vendor values against live homepage brand indicators",
	Long:  "Fetches each row's Official URL, extracts og:site_name / <title> / <h1>, scores them against the current Vendor, and writes an audit report plus a corrected directory.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		runID := uuid.NewString()
		log := zap.L().With(zap.String("run_id", runID))

		t, err := sheet.ReadTable(validateIn, cfg.Sheet.Directory)
		if err != nil {
			return err
		}
		rows := sheet.DirectoryRows(t)

		log.Info("validation run starting",
			zap.Int("rows", len(rows)),
			zap.String("in", validateIn),
		)

		records, sum, err := validate.Run(ctx, rows, newChain(), validate.Options{
			Delay:         time.Duration(cfg.Validate.DelayMs) * time.Millisecond,
			ProgressEvery: cfg.Validate.ProgressEvery,
		})
		if err != nil {
			return err
		}

		if err := sheet.WriteReport(validateReport, cfg.Sheet.Results, cfg.Sheet.Summary, records, sum); err != nil {
			return err
		}

		validate.ApplySuggestions(t, records)
		if err := sheet.WriteTable(validateOut, cfg.Sheet.Directory, t); err != nil {
			return err
		}

		log.Info("validation run complete",
			zap.Int("total", sum.Total),
			zap.Int("mismatch", sum.Mismatch),
			zap.Int("fetch_failed", sum.FetchFailed),
			zap.String("report", validateReport),
			zap.String("out", validateOut),
		)
		return nil
	},
}

func init() {
	vendorValidateCmd.Flags().StringVar(&validateIn, "in", "", "input directory workbook (required)")
	vendorValidateCmd.Flags().StringVar(&validateReport, "report", "", "output validation report workbook (required)")
	vendorValidateCmd.Flags().StringVar(&validateOut, "out", "", "output corrected directory workbook (required)")
	_ = vendorValidateCmd.MarkFlagRequired("in")
	_ = vendorValidateCmd.MarkFlagRequired("report")
	_ = vendorValidateCmd.MarkFlagRequired("out")

	vendorCmd.AddCommand(vendorValidateCmd)
}
