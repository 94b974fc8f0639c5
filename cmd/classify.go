package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/appdir-cli/internal/classify"
	"github.com/sells-group/appdir-cli/internal/sheet"
)

var (
	classifyIn    string
	classifyOut   string
	classifyRules string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Fill the AI classification columns from descriptions",
	Long:  "Runs the keyword rule table over every row's Description and writes lxAiPotential, lxAiRisk, lxAiUsage, lxAiType, and lxAiTaxonomyDescription. Pass --rules to override the built-in table with a YAML file.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ruleset := classify.DefaultRuleset()
		if classifyRules != "" {
			rs, err := classify.LoadRuleset(classifyRules)
			if err != nil {
				return err
			}
			ruleset = rs
		}

		t, err := sheet.ReadTable(classifyIn, cfg.Sheet.Directory)
		if err != nil {
			return err
		}

		descIdx := t.ColumnIndex(sheet.ColDescription)
		potIdx := t.EnsureColumn(sheet.ColAIPotential)
		riskIdx := t.EnsureColumn(sheet.ColAIRisk)
		usageIdx := t.EnsureColumn(sheet.ColAIUsage)
		typeIdx := t.EnsureColumn(sheet.ColAIType)
		taxIdx := t.EnsureColumn(sheet.ColTaxonomyDescription)

		for i := range t.Rows {
			r := ruleset.Classify(t.Cell(i, descIdx))
			t.SetCell(i, potIdx, string(r.Potential))
			t.SetCell(i, riskIdx, string(r.Risk))
			t.SetCell(i, usageIdx, string(r.Usage))
			t.SetCell(i, typeIdx, string(r.Type))
			t.SetCell(i, taxIdx, r.TaxonomyDescription)
		}

		if err := sheet.WriteTable(classifyOut, cfg.Sheet.Directory, t); err != nil {
			return err
		}

		zap.L().Info("classify complete",
			zap.Int("rows", len(t.Rows)),
			zap.String("in", classifyIn),
			zap.String("out", classifyOut),
		)
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyIn, "in", "", "input directory workbook (required)")
	classifyCmd.Flags().StringVar(&classifyOut, "out", "", "output directory workbook (required)")
	classifyCmd.Flags().StringVar(&classifyRules, "rules", "", "optional YAML rules file overriding the built-in table")
	_ = classifyCmd.MarkFlagRequired("in")
	_ = classifyCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(classifyCmd)
}
