package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"save-editor/core/config"
	"save-editor/core/logger"
	"save-editor/core/savefile"
	"save-editor/core/session"
	"save-editor/core/storage"

	"save-editor/feature/augment"
	"save-editor/feature/company"
	"save-editor/feature/faction"
	"save-editor/feature/hacknet"
	"save-editor/feature/job"
	"save-editor/feature/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the edit command
	editScriptPath string
	editOutPath    string
	editFromRemote bool
	editBackup     bool
	editYes        bool
)

// editScript is the JSON shape the --script file carries. Every block
// is optional; within a block, keys apply in sorted order so runs are
// deterministic.
type editScript struct {
	Factions         map[string]faction.Edit     `json:"factions,omitempty"`
	Companies        map[string]company.Edit     `json:"companies,omitempty"`
	Servers          map[string]server.Edit      `json:"servers,omitempty"`
	PurchasedServers *[]string                   `json:"purchased_servers,omitempty"`
	Jobs             map[string]string           `json:"jobs,omitempty"`
	Augmentations    map[string]string           `json:"augmentations,omitempty"`
	NeuroFlux        *augment.NeuroFlux          `json:"neuroflux,omitempty"`
	HacknetNodes     map[string]hacknet.NodeEdit `json:"hacknet_nodes,omitempty"`
	Hashes           *float64                    `json:"hashes,omitempty"`
	HashUpgrades     map[string]int              `json:"hash_upgrades,omitempty"`
}

// editCmd applies a JSON edit script to a save file and exports the
// result.
var editCmd = &cobra.Command{
	Use:   "edit <save-file>",
	Short: "Apply an edit script to a save file",
	Long: `Loads a save file, applies the edits described in a JSON script and
exports the result in the original wire encoding.

Augmentation status changes that force a prerequisite cascade print the
full plan and ask for confirmation before anything is applied.

Examples:
  # Apply edits and write the export next to the source
  save-editor edit bitburnerSave_1700000000_BN1.json --script edits.json

  # Non-interactive, explicit output path
  save-editor edit save.json.gz --script edits.json --out fixed.json.gz --yes

  # Fetch the source from object storage and mirror the export back
  save-editor edit saves/latest.json --script edits.json --remote --backup`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editScriptPath, "script", "", "Path to the JSON edit script (required)")
	editCmd.Flags().StringVar(&editOutPath, "out", "", "Output path (default: derived export filename in the working directory)")
	editCmd.Flags().BoolVar(&editFromRemote, "remote", false, "Treat <save-file> as an object name in the configured storage bucket")
	editCmd.Flags().BoolVar(&editBackup, "backup", false, "Mirror the export to object storage under the backup prefix")
	editCmd.Flags().BoolVar(&editYes, "yes", false, "Auto-confirm prerequisite cascades (non-interactive)")
	_ = editCmd.MarkFlagRequired("script")

	RootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	script, err := readScript(editScriptPath)
	if err != nil {
		return err
	}

	// Resolve the source: local file, or object storage with --remote.
	var (
		raw        []byte
		sourceName string
		store      storage.Client
	)
	if editFromRemote || editBackup {
		if !cfg.Storage.Enabled() {
			return fmt.Errorf("object storage is not configured")
		}
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}
	if editFromRemote {
		raw, err = storage.FetchSave(ctx, store, cfg.Storage, args[0])
		if err != nil {
			return err
		}
		sourceName = filepath.Base(args[0])
	} else {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read save file: %w", err)
		}
		sourceName = filepath.Base(args[0])
	}

	sessions := session.NewManager(l)
	sess, err := sessions.Open(sourceName, raw)
	if err != nil {
		return fmt.Errorf("failed to decode save: %w", err)
	}

	docs := sess.Store()
	if err := applyScript(docs.Working(), docs.Baseline(), script, l); err != nil {
		return err
	}

	filename, data, err := sess.Export()
	if err != nil {
		return fmt.Errorf("failed to export save: %w", err)
	}

	outPath := editOutPath
	if outPath == "" {
		outPath = filename
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	l.Info("Export written",
		zap.String("path", outPath),
		zap.String("encoding", string(sess.Encoding())),
		zap.Bool("changed", sess.HasChanges()),
	)

	if editBackup {
		object, err := storage.BackupExport(ctx, store, cfg.Storage, filename, data)
		if err != nil {
			return fmt.Errorf("failed to back up export: %w", err)
		}
		l.Info("Export backed up", zap.String("object", object))
	}
	return nil
}

func readScript(path string) (*editScript, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edit script: %w", err)
	}
	var script editScript
	if err := json.Unmarshal(raw, &script); err != nil {
		return nil, fmt.Errorf("failed to parse edit script: %w", err)
	}
	return &script, nil
}

// applyScript applies every block of the script to the working
// container, asking for cascade confirmation where a status change
// requires it.
func applyScript(working, baseline *savefile.Container, script *editScript, l *zap.Logger) error {
	for _, name := range sortedKeys(script.Factions) {
		faction.Apply(working, baseline, name, script.Factions[name])
	}
	for _, name := range sortedKeys(script.Companies) {
		company.Apply(working, baseline, name, script.Companies[name])
	}
	for _, hostname := range sortedKeys(script.Servers) {
		server.Apply(working, hostname, script.Servers[hostname])
	}
	if script.PurchasedServers != nil {
		server.ApplyPurchasedList(working, *script.PurchasedServers)
	}
	for _, name := range sortedKeys(script.Jobs) {
		job.Apply(working, name, script.Jobs[name])
	}

	for _, name := range sortedKeys(script.Augmentations) {
		status, err := augment.ParseStatus(script.Augmentations[name])
		if err != nil {
			return err
		}
		plan := augment.PlanStatusChange(working, name, status)
		if plan.HasCascade() && !confirmCascade(plan) {
			l.Warn("Cascade declined, augmentation left unchanged", zap.String("name", name))
			continue
		}
		if err := augment.Apply(working, plan, augment.Options{Confirmed: true}); err != nil {
			return err
		}
	}
	if script.NeuroFlux != nil {
		augment.UpdateNeuroFlux(working, script.NeuroFlux.Installed, script.NeuroFlux.Queued)
	}

	for _, name := range sortedKeys(script.HacknetNodes) {
		hacknet.ApplyNode(working, name, script.HacknetNodes[name])
	}
	if script.Hashes != nil {
		hacknet.ApplyHashes(working, *script.Hashes)
	}
	for _, name := range sortedKeys(script.HashUpgrades) {
		hacknet.ApplyUpgrade(working, name, script.HashUpgrades[name])
	}
	return nil
}

// confirmCascade prints the plan and prompts for confirmation, or uses
// the --yes flag.
func confirmCascade(plan augment.Plan) bool {
	fmt.Printf("\nChanging %s to %s also affects:\n", plan.Target.Name, plan.Target.To)
	for _, change := range plan.Cascade {
		fmt.Printf("  %-45s %s -> %s\n", change.Name, change.From, change.To)
	}

	if editYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to apply the cascade: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
