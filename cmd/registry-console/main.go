// Registry console is the admin control plane for tool-server registries.
package main

import (
	"os"

	"github.com/toolforge/registry-console/cmd/registry-console/app"
	"github.com/toolforge/registry-console/internal/logger"
)

func main() {
	defer logger.Sync()
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
