package cli

import (
	"context"
	"strings"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/query"
	"github.com/kilupskalvis/bomcheck/internal/results"
	"github.com/kilupskalvis/bomcheck/internal/store"
	"github.com/spf13/cobra"
)

var complianceCmd = &cobra.Command{
	Use:   "compliance <materials|parts|specifications|substances>",
	Short: "Evaluate records against an indicator",
	Long: `Evaluate material, part, specification or substance records against a
restricted-substance indicator. Records are referenced by record history
identity (--id), record GUID (--guid), record history GUID
(--history-guid) or domain key (--key): material ID, part number,
specification ID or CAS number depending on the item type.`,
	Args: cobra.ExactArgs(1),
	Run:  runCompliance,
}

var (
	compIDs           []int
	compGUIDs         []string
	compHistoryGUIDs  []string
	compKeys          []string
	compIndicatorName string
	compIndicatorType string
	compLegislations  []string
	compThreshold     float64
	compBatch         int
)

func init() {
	f := complianceCmd.Flags()
	f.IntSliceVar(&compIDs, "id", nil, "Record history identity (repeatable)")
	f.StringSliceVar(&compGUIDs, "guid", nil, "Record GUID (repeatable)")
	f.StringSliceVar(&compHistoryGUIDs, "history-guid", nil, "Record history GUID (repeatable)")
	f.StringSliceVar(&compKeys, "key", nil, "Domain key for the item type (repeatable)")
	f.StringVar(&compIndicatorName, "indicator", "RoHS", "Indicator name")
	f.StringVar(&compIndicatorType, "type", "Rohs", "Indicator type (Rohs or WatchList)")
	f.StringSliceVar(&compLegislations, "legislation", nil, "Legislation the indicator evaluates against (repeatable)")
	f.Float64Var(&compThreshold, "threshold", 0.1, "Default threshold percentage")
	f.IntVar(&compBatch, "batch", 0, "Override the request batch size")
}

// indicatorFromFlags builds the indicator definition shared by the compliance
// and bom commands.
func indicatorFromFlags(name, kind string, legislations []string, threshold float64) models.Indicator {
	k := models.KindRoHS
	if strings.EqualFold(kind, string(models.KindWatchList)) {
		k = models.KindWatchList
	}
	return models.Indicator{
		Name:                       name,
		LegislationNames:           legislations,
		DefaultThresholdPercentage: threshold,
		Kind:                       k,
	}
}

// saveRun records an executed query in the local history. Failures are not
// fatal; the query result has already been printed.
func saveRun(c *cmdContext, queryType string, itemCount int, parameters, summary string) {
	run := &store.QueryRun{
		QueryType:   queryType,
		DatabaseKey: c.Config.DatabaseKey,
		ItemCount:   itemCount,
		Parameters:  parameters,
		Summary:     summary,
	}
	if _, err := c.Store.SaveRun(run); err != nil {
		warnf("could not record query in history: %v", err)
	}
}

func runCompliance(cmd *cobra.Command, args []string) {
	c := initFullContext()
	defer c.Close()

	ind := indicatorFromFlags(compIndicatorName, compIndicatorType, compLegislations, compThreshold)
	ctx := context.Background()

	var (
		result *results.ComplianceResult
		err    error
	)
	switch args[0] {
	case "materials":
		q := query.NewMaterialComplianceQuery().
			WithRecordHistoryIDs(compIDs...).
			WithRecordGUIDs(compGUIDs...).
			WithRecordHistoryGUIDs(compHistoryGUIDs...).
			WithMaterialIDs(compKeys...).
			WithIndicators(ind)
		if compBatch > 0 {
			q.WithBatchSize(compBatch)
		}
		result, err = q.Execute(ctx, c.Conn)
	case "parts":
		q := query.NewPartComplianceQuery().
			WithRecordHistoryIDs(compIDs...).
			WithRecordGUIDs(compGUIDs...).
			WithRecordHistoryGUIDs(compHistoryGUIDs...).
			WithPartNumbers(compKeys...).
			WithIndicators(ind)
		if compBatch > 0 {
			q.WithBatchSize(compBatch)
		}
		result, err = q.Execute(ctx, c.Conn)
	case "specifications":
		q := query.NewSpecificationComplianceQuery().
			WithRecordHistoryIDs(compIDs...).
			WithRecordGUIDs(compGUIDs...).
			WithRecordHistoryGUIDs(compHistoryGUIDs...).
			WithSpecificationIDs(compKeys...).
			WithIndicators(ind)
		if compBatch > 0 {
			q.WithBatchSize(compBatch)
		}
		result, err = q.Execute(ctx, c.Conn)
	case "substances":
		q := query.NewSubstanceComplianceQuery().
			WithRecordHistoryIDs(compIDs...).
			WithRecordGUIDs(compGUIDs...).
			WithRecordHistoryGUIDs(compHistoryGUIDs...).
			WithCASNumbers(compKeys...).
			WithIndicators(ind)
		if compBatch > 0 {
			q.WithBatchSize(compBatch)
		}
		result, err = q.Execute(ctx, c.Conn)
	default:
		exitError("unknown item type %q", args[0])
	}
	if err != nil {
		exitError("%v", err)
	}

	renderCompliance(result)
	saveRun(c, args[0]+" compliance", len(result.Compliance()),
		"indicator="+ind.Name, complianceSummary(result))
}
