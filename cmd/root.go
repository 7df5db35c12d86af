package cmd

import (
	"fmt"
	"os"

	"save-editor/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "save-editor",
	Short: "Bitburner Save Editor",
	Long: `Save Editor loads a Bitburner save file, exposes its factions,
companies, servers, jobs, augmentations and hacknet state as editable
views, and exports a consistent save in the original wire encoding.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level so CLI errors come out readable
		// with ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
