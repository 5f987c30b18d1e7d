package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inventory-tracker/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	dryRunImport bool
	planImport   bool
	yesConfirm   bool
)

// importCmd reconciles a spreadsheet into the inventory.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a workbook or CSV file into the inventory",
	Long: `Reconcile the first sheet of a workbook (or a CSV file) into the inventory.

Rows are matched to existing items by item name. Matches are updated,
everything else is created. Rows without an item name are skipped.

Examples:
  # Preview what would change
  import stock.xlsx --dry-run --plan

  # Import with interactive confirmation
  import stock.xlsx

  # Import non-interactively
  import stock.xlsx --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Decide every row without writing")
	importCmd.Flags().BoolVar(&planImport, "plan", false, "Print the per-row decisions")
	importCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Skip the confirmation prompt")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	path := args[0]

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	l := rt.logger

	if !dryRunImport && !confirmImport(path) {
		l.Warn("Import cancelled by user. No changes were made.")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	l.Info("Importing", zap.String("file", path), zap.Bool("dry_run", dryRunImport))

	report, err := rt.service().Import(ctx, f, filepath.Base(path), reconcile.Options{
		DryRun: dryRunImport,
		Plan:   planImport,
	})
	if report != nil {
		printImportReport(l, report)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if dryRunImport {
		l.Info("Dry-run mode: No changes were made.")
	}
	return nil
}

// printImportReport logs the import summary and a sample of the planned actions.
func printImportReport(l *zap.Logger, r *reconcile.Report) {
	l.Info("Import report",
		zap.Int("processed", r.Processed),
		zap.Int("created", r.Created),
		zap.Int("updated", r.Updated),
		zap.Int("skipped", r.Skipped),
	)

	maxShow := min(len(r.Actions), 5)
	for _, action := range r.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.Int("row", action.Row),
			zap.String("key", action.Key),
		)
	}
	if len(r.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(r.Actions)-maxShow))
	}
}

// confirmImport prompts the user for confirmation or uses the --yes flag.
func confirmImport(path string) bool {
	if yesConfirm {
		return true
	}

	fmt.Printf("\nImport %s into the inventory? Type 'yes' to confirm: ", path)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
