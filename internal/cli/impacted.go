package cli

import (
	"context"
	"strings"

	"github.com/kilupskalvis/bomcheck/internal/query"
	"github.com/kilupskalvis/bomcheck/internal/results"
	"github.com/spf13/cobra"
)

var impactedCmd = &cobra.Command{
	Use:   "impacted <materials|parts|specifications>",
	Short: "Resolve impacted substances under legislations",
	Long: `Resolve the substances impacting material, part or specification
records under one or more legislations. Records are referenced the same
way as for the compliance command.`,
	Args: cobra.ExactArgs(1),
	Run:  runImpacted,
}

var (
	impIDs          []int
	impGUIDs        []string
	impHistoryGUIDs []string
	impKeys         []string
	impLegislations []string
	impBatch        int
)

func init() {
	f := impactedCmd.Flags()
	f.IntSliceVar(&impIDs, "id", nil, "Record history identity (repeatable)")
	f.StringSliceVar(&impGUIDs, "guid", nil, "Record GUID (repeatable)")
	f.StringSliceVar(&impHistoryGUIDs, "history-guid", nil, "Record history GUID (repeatable)")
	f.StringSliceVar(&impKeys, "key", nil, "Domain key for the item type (repeatable)")
	f.StringSliceVar(&impLegislations, "legislation", nil, "Legislation to resolve against (repeatable)")
	f.IntVar(&impBatch, "batch", 0, "Override the request batch size")
}

func runImpacted(cmd *cobra.Command, args []string) {
	c := initFullContext()
	defer c.Close()

	ctx := context.Background()

	var (
		result *results.ImpactedSubstancesResult
		err    error
	)
	switch args[0] {
	case "materials":
		q := query.NewMaterialImpactedSubstancesQuery().
			WithRecordHistoryIDs(impIDs...).
			WithRecordGUIDs(impGUIDs...).
			WithRecordHistoryGUIDs(impHistoryGUIDs...).
			WithMaterialIDs(impKeys...).
			WithLegislations(impLegislations...)
		if impBatch > 0 {
			q.WithBatchSize(impBatch)
		}
		result, err = q.Execute(ctx, c.Conn)
	case "parts":
		q := query.NewPartImpactedSubstancesQuery().
			WithRecordHistoryIDs(impIDs...).
			WithRecordGUIDs(impGUIDs...).
			WithRecordHistoryGUIDs(impHistoryGUIDs...).
			WithPartNumbers(impKeys...).
			WithLegislations(impLegislations...)
		if impBatch > 0 {
			q.WithBatchSize(impBatch)
		}
		result, err = q.Execute(ctx, c.Conn)
	case "specifications":
		q := query.NewSpecificationImpactedSubstancesQuery().
			WithRecordHistoryIDs(impIDs...).
			WithRecordGUIDs(impGUIDs...).
			WithRecordHistoryGUIDs(impHistoryGUIDs...).
			WithSpecificationIDs(impKeys...).
			WithLegislations(impLegislations...)
		if impBatch > 0 {
			q.WithBatchSize(impBatch)
		}
		result, err = q.Execute(ctx, c.Conn)
	default:
		exitError("unknown item type %q", args[0])
	}
	if err != nil {
		exitError("%v", err)
	}

	renderImpacted(result)
	saveRun(c, args[0]+" impacted substances", len(result.ImpactedSubstances()),
		"legislations="+strings.Join(impLegislations, ";"), impactedSummary(result))
}
