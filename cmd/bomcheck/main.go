// Command bomcheck queries a BoM Analytics service for compliance and
// impacted substances.
package main

import (
	"os"

	"github.com/kilupskalvis/bomcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
