package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded query runs",
	Long:  `Display previously executed queries, newest first.`,
	Run:   runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "n", "n", 0, "Limit the number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	runs, err := c.Store.ListRuns(historyLimit)
	if err != nil {
		exitError("failed to list query runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No queries recorded yet")
		return
	}

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"ID", "DATE", "QUERY", "DATABASE", "ITEMS", "SUMMARY"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)

	for _, run := range runs {
		tw.Append([]string{
			strconv.FormatInt(run.ID, 10),
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.QueryType,
			run.DatabaseKey,
			strconv.Itoa(run.ItemCount),
			run.Summary,
		})
	}
	tw.Render()
}
