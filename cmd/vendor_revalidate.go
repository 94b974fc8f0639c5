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
	revalidateReport    string
	revalidateIn        string
	revalidateOutReport string
	revalidateOut       string
)

var vendorRevalidateCmd = &cobra.Command{
	Use:   "revalidate",
	Short: "Retry fetch-failed rows from a prior validation report",
	Long:  "Rebuilds candidate URLs (scheme swaps, www variants, registrable domain, about pages) for every row whose fetch failed, retries them in order, and merges improvements back into the report and directory.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		runID := uuid.NewString()
		log := zap.L().With(zap.String("run_id", runID))

		records, err := sheet.ReadReport(revalidateReport, cfg.Sheet.Results)
		if err != nil {
			return err
		}
		t, err := sheet.ReadTable(revalidateIn, cfg.Sheet.Directory)
		if err != nil {
			return err
		}

		merged, sum, err := validate.RevalidateFailed(ctx, records, newChain(), validate.RevalidateOptions{
			Delay: time.Duration(cfg.Validate.RevalidateDelayMs) * time.Millisecond,
		})
		if err != nil {
			return err
		}

		if err := sheet.WriteReport(revalidateOutReport, cfg.Sheet.Results, cfg.Sheet.Summary, merged, sum); err != nil {
			return err
		}

		validate.ApplySuggestions(t, merged)
		if err := sheet.WriteTable(revalidateOut, cfg.Sheet.Directory, t); err != nil {
			return err
		}

		log.Info("revalidation complete",
			zap.Int("total", sum.Total),
			zap.Int("fetch_failed", sum.FetchFailed),
			zap.String("report", revalidateOutReport),
			zap.String("out", revalidateOut),
		)
		return nil
	},
}

func init() {
	vendorRevalidateCmd.Flags().StringVar(&revalidateReport, "report", "", "prior validation report workbook (required)")
	vendorRevalidateCmd.Flags().StringVar(&revalidateIn, "in", "", "directory workbook to correct (required)")
	vendorRevalidateCmd.Flags().StringVar(&revalidateOutReport, "out-report", "", "output rerun report workbook (required)")
	vendorRevalidateCmd.Flags().StringVar(&revalidateOut, "out", "", "output corrected directory workbook (required)")
	_ = vendorRevalidateCmd.MarkFlagRequired("report")
	_ = vendorRevalidateCmd.MarkFlagRequired("in")
	_ = vendorRevalidateCmd.MarkFlagRequired("out-report")
	_ = vendorRevalidateCmd.MarkFlagRequired("out")

	vendorCmd.AddCommand(vendorRevalidateCmd)
}
