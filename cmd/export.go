package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"inventory-tracker/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut      string
	exportSnapshot bool
)

// exportCmd writes the inventory to a workbook.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory to a workbook",
	Long: `Write every inventory item to an xlsx workbook.

By default the file is written to the current directory as
Inventory_export_<YYYYMMDD>.xlsx. With --snapshot it is stored in the
configured object storage bucket instead.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default Inventory_export_<YYYYMMDD>.xlsx)")
	exportCmd.Flags().BoolVar(&exportSnapshot, "snapshot", false, "Store the export in object storage")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	svc := rt.service()

	if exportSnapshot {
		key, err := svc.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("snapshot failed: %w", err)
		}
		rt.logger.Info("Export stored", zap.String("bucket", rt.cfg.Storage.Bucket), zap.String("key", key))
		return nil
	}

	out := exportOut
	if out == "" {
		out = inventory.ExportFilename(time.Now())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := svc.Export(ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("export failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	rt.logger.Info("Export written", zap.String("file", out))
	return nil
}
