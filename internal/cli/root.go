// Package cli implements the command-line interface for bomcheck.
package cli

import (
	"fmt"
	"os"

	"github.com/kilupskalvis/bomcheck/internal/config"
	"github.com/kilupskalvis/bomcheck/internal/remote"
	"github.com/kilupskalvis/bomcheck/internal/store"
	"github.com/spf13/cobra"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Store  *store.Store
	Conn   *remote.Connection
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
}

// initContext initializes config and store (no connection)
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	if err := st.Initialize(); err != nil {
		st.Close()
		exitError("failed to initialize store: %v", err)
	}

	return &cmdContext{Config: cfg, Store: st}
}

// initFullContext initializes config, store, and the service connection
func initFullContext() *cmdContext {
	c := initContext()

	client := remote.NewHTTPClient(c.Config.ServiceURL, c.Config.Username, c.Config.Password, c.Config.RateLimit)
	conn := remote.NewConnection(remote.NewRetryClient(client, nil), c.Config.DatabaseKey)
	if c.Config.HasTableOverrides() {
		conn.WithQueryConfig(&remote.QueryConfig{
			MaterialUniverseTableName: c.Config.MaterialUniverseTable,
			InHouseMaterialsTableName: c.Config.InHouseMaterialsTable,
			SpecificationsTableName:   c.Config.SpecificationsTable,
			ProductsAndPartsTableName: c.Config.ProductsAndPartsTable,
			SubstancesTableName:       c.Config.SubstancesTable,
			CoatingsTableName:         c.Config.CoatingsTable,
		})
	}
	c.Conn = conn

	return c
}

var rootCmd = &cobra.Command{
	Use:   "bomcheck",
	Short: "BoM compliance and impacted substances queries",
	Long: `bomcheck queries a BoM Analytics service for restricted-substance
compliance and impacted substances. Reference materials, parts,
specifications and substances by record identity or domain key, or
submit a whole BoM document.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(complianceCmd)
	rootCmd.AddCommand(impactedCmd)
	rootCmd.AddCommand(bomCmd)
	rootCmd.AddCommand(historyCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
