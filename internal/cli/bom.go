package cli

import (
	"context"
	"os"
	"strings"

	"github.com/kilupskalvis/bomcheck/internal/query"
	"github.com/spf13/cobra"
)

var bomCmd = &cobra.Command{
	Use:   "bom",
	Short: "Query a whole BoM document",
	Long: `Submit an XML BoM document for evaluation. The document is sent to the
service as-is in a single request.`,
}

var bomComplianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Evaluate a BoM document against an indicator",
	Run:   runBomCompliance,
}

var bomImpactedCmd = &cobra.Command{
	Use:   "impacted",
	Short: "Resolve impacted substances for a BoM document",
	Run:   runBomImpacted,
}

var (
	bomFile          string
	bomIndicatorName string
	bomIndicatorType string
	bomLegislations  []string
	bomThreshold     float64
)

func init() {
	bomCmd.AddCommand(bomComplianceCmd)
	bomCmd.AddCommand(bomImpactedCmd)

	bomCmd.PersistentFlags().StringVar(&bomFile, "file", "", "Path to the XML BoM document")
	bomCmd.MarkPersistentFlagRequired("file")

	bomComplianceCmd.Flags().StringVar(&bomIndicatorName, "indicator", "RoHS", "Indicator name")
	bomComplianceCmd.Flags().StringVar(&bomIndicatorType, "type", "Rohs", "Indicator type (Rohs or WatchList)")
	bomComplianceCmd.Flags().StringSliceVar(&bomLegislations, "legislation", nil, "Legislation the indicator evaluates against (repeatable)")
	bomComplianceCmd.Flags().Float64Var(&bomThreshold, "threshold", 0.1, "Default threshold percentage")

	bomImpactedCmd.Flags().StringSliceVar(&bomLegislations, "legislation", nil, "Legislation to resolve against (repeatable)")
}

func readBomFile() string {
	data, err := os.ReadFile(bomFile)
	if err != nil {
		exitError("failed to read BoM document: %v", err)
	}
	return string(data)
}

func runBomCompliance(cmd *cobra.Command, args []string) {
	c := initFullContext()
	defer c.Close()

	ind := indicatorFromFlags(bomIndicatorName, bomIndicatorType, bomLegislations, bomThreshold)

	result, err := query.NewBomComplianceQuery().
		WithBom(readBomFile()).
		WithIndicators(ind).
		Execute(context.Background(), c.Conn)
	if err != nil {
		exitError("%v", err)
	}

	renderCompliance(result)
	saveRun(c, "bom compliance", len(result.Compliance()),
		"indicator="+ind.Name, complianceSummary(result))
}

func runBomImpacted(cmd *cobra.Command, args []string) {
	c := initFullContext()
	defer c.Close()

	result, err := query.NewBomImpactedSubstancesQuery().
		WithBom(readBomFile()).
		WithLegislations(bomLegislations...).
		Execute(context.Background(), c.Conn)
	if err != nil {
		exitError("%v", err)
	}

	renderImpacted(result)
	saveRun(c, "bom impacted substances", len(result.ImpactedSubstances()),
		"legislations="+strings.Join(bomLegislations, ";"), impactedSummary(result))
}
