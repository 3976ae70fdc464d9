package cli

import (
	"fmt"

	"github.com/kilupskalvis/bomcheck/internal/config"
	"github.com/kilupskalvis/bomcheck/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new bomcheck workspace",
	Long: `Initialize a new bomcheck workspace in the current directory.
This creates a .bomcheck directory holding the service configuration
and the local query history.`,
	Run: runInit,
}

var (
	initURL      string
	initDBKey    string
	initUsername string
	initPassword string
	initRate     float64
)

func init() {
	initCmd.Flags().StringVar(&initURL, "url", "http://localhost:8080", "BoM Analytics service URL")
	initCmd.Flags().StringVar(&initDBKey, "dbkey", "MI_Restricted_Substances", "Database key to query")
	initCmd.Flags().StringVar(&initUsername, "username", "", "Basic auth username")
	initCmd.Flags().StringVar(&initPassword, "password", "", "Basic auth password")
	initCmd.Flags().Float64Var(&initRate, "rate", 0, "Outgoing request rate limit in requests per second (0 disables)")
}

func runInit(cmd *cobra.Command, args []string) {
	// Check if already initialized
	if _, err := config.FindRoot(); err == nil {
		exitError("bomcheck workspace already exists")
	}

	fmt.Printf("Initializing bomcheck workspace...\n")
	fmt.Printf("Service URL: %s\n", initURL)
	fmt.Printf("Database key: %s\n", initDBKey)

	cfg, err := config.Initialize(initURL, initDBKey)
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	cfg.Username = initUsername
	cfg.Password = initPassword
	cfg.RateLimit = initRate
	if err := cfg.Save(); err != nil {
		exitError("failed to save config: %v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to create store: %v", err)
	}
	defer st.Close()

	if err := st.Initialize(); err != nil {
		exitError("failed to initialize store: %v", err)
	}

	fmt.Printf("\nInitialized empty bomcheck workspace in .bomcheck/\n")
}
