package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"save-editor/core/config"
	"save-editor/core/logger"
	"save-editor/core/session"

	"save-editor/feature/augment"
	"save-editor/feature/company"
	"save-editor/feature/faction"
	"save-editor/feature/hacknet"
	"save-editor/feature/job"
	"save-editor/feature/server"

	"github.com/spf13/cobra"
)

// inspectCmd loads a save file and prints the projected entity views.
var inspectCmd = &cobra.Command{
	Use:   "inspect <save-file>",
	Short: "Inspect a save file",
	Long: `Loads a save file (plain, base64 or gzip) and prints a summary of
its factions, companies, servers, jobs, augmentations and hacknet state.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read save file: %w", err)
	}

	sessions := session.NewManager(l)
	sess, err := sessions.Open(filepath.Base(args[0]), raw)
	if err != nil {
		return fmt.Errorf("failed to decode save: %w", err)
	}

	working := sess.Store().Working()

	fmt.Printf("File:     %s\n", sess.Name())
	fmt.Printf("Encoding: %s\n\n", sess.Encoding())

	factions := faction.Project(working)
	joined, invited := 0, 0
	for _, f := range factions {
		switch f.Status {
		case faction.StatusJoined:
			joined++
		case faction.StatusInvited:
			invited++
		}
	}
	fmt.Printf("Factions: %d (%d joined, %d invited)\n", len(factions), joined, invited)
	for _, f := range factions {
		if f.Status == faction.StatusNone {
			continue
		}
		fmt.Printf("  %-30s %-8s rep=%.0f favor=%d\n", f.Name, f.Status, f.Reputation, f.Favor)
	}

	companies := company.Project(working)
	fmt.Printf("\nCompanies: %d\n", len(companies))
	for _, co := range companies {
		if co.Reputation == 0 && co.Favor == 0 {
			continue
		}
		fmt.Printf("  %-30s rep=%.0f favor=%d\n", co.Name, co.Reputation, co.Favor)
	}

	servers := server.Project(working)
	purchased := server.PurchasedList(working)
	fmt.Printf("\nServers: %d (%d purchased)\n", len(servers), len(purchased))

	jobs := job.Project(working)
	fmt.Printf("\nJobs: %d\n", len(jobs))
	for _, j := range jobs {
		fmt.Printf("  %-30s %s\n", j.Company, j.Title)
	}

	augs := augment.Project(working)
	installed, queued := 0, 0
	for _, a := range augs {
		switch a.Status {
		case augment.StatusInstalled:
			installed++
		case augment.StatusQueued:
			queued++
		}
	}
	nfg := augment.NeuroFluxLevels(working)
	fmt.Printf("\nAugmentations: %d installed, %d queued\n", installed, queued)
	fmt.Printf("NeuroFlux Governor: installed=%d queued=%d\n", nfg.Installed, nfg.Queued)

	nodes := hacknet.Nodes(working)
	ledger := hacknet.Ledger(working)
	fmt.Printf("\nHacknet nodes: %d\n", len(nodes))
	fmt.Printf("Hashes: %g / %g (%d upgrades)\n", ledger.Hashes, ledger.Capacity, len(ledger.Upgrades))

	return nil
}
