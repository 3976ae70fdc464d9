package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/kilupskalvis/bomcheck/internal/results"
)

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// flagColor maps a flag's severity to a display colour. Severity 0 means the
// flag name was not recognised for the indicator's kind.
func flagColor(res results.IndicatorResult) *color.Color {
	switch sev := res.Severity(); {
	case sev == 0 || sev >= 7:
		return color.New(color.FgMagenta)
	case sev <= 3:
		return color.New(color.FgGreen)
	case sev <= 5:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// renderCompliance prints the result tree with one line per node, indenting
// children below their parent.
func renderCompliance(result *results.ComplianceResult) {
	items := result.Compliance()
	if len(items) == 0 {
		fmt.Println("No results")
		return
	}
	for _, item := range items {
		printComplianceNode(item, 0)
	}
}

func printComplianceNode(node *results.ComplianceNode, depth int) {
	indent := strings.Repeat("  ", depth)
	cyan := color.New(color.FgCyan)

	cyan.Printf("%s%s", indent, node.Kind)
	if node.Reference.Value != "" {
		fmt.Printf(" %s=%s", node.Reference.Type, node.Reference.Value)
	}
	for name, res := range node.Indicators {
		fmt.Printf("  %s: ", name)
		flagColor(res).Print(res.Flag)
	}
	fmt.Println()

	for _, child := range node.Children {
		printComplianceNode(child, depth+1)
	}
}

// complianceSummary is the one-line summary stored in the query history.
func complianceSummary(result *results.ComplianceResult) string {
	parts := make([]string, 0, len(result.ComplianceByIndicator()))
	for name, res := range result.ComplianceByIndicator() {
		parts = append(parts, name+"="+res.Flag)
	}
	return strings.Join(parts, " ")
}

// renderImpacted prints every impacted substance as one table row.
func renderImpacted(result *results.ImpactedSubstancesResult) {
	items := result.ImpactedSubstances()
	if len(items) == 0 {
		fmt.Println("No results")
		return
	}

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"ITEM", "LEGISLATION", "SUBSTANCE", "CAS", "EC", "MAX %", "THRESHOLD %"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)

	for _, item := range items {
		ref := "BoM"
		if item.Reference.Value != "" {
			ref = fmt.Sprintf("%s=%s", item.Reference.Type, item.Reference.Value)
		}
		for name, leg := range item.Legislations() {
			for _, sub := range leg.Substances {
				tw.Append([]string{
					ref,
					name,
					sub.ChemicalName,
					sub.CASNumber,
					sub.ECNumber,
					formatAmount(sub.MaxPercentageAmountInMaterial),
					formatAmount(sub.LegislationThreshold),
				})
			}
		}
	}
	tw.Render()
}

func formatAmount(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

// impactedSummary is the one-line summary stored in the query history.
func impactedSummary(result *results.ImpactedSubstancesResult) string {
	return fmt.Sprintf("%d impacted substances", len(result.AllImpactedSubstances()))
}
