package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/mixmemory/internal/constants"
	"github.com/cesargomez89/mixmemory/internal/viz"
)

var exportD3Cmd = &cobra.Command{
	Use:   "export-d3",
	Short: "Export the track network as JSON for the d3.js visualization",
	RunE:  runExportD3,
}

func init() {
	exportD3Cmd.Flags().String("output", constants.DefaultSnapshotFile, "path to save the JSON file")
	rootCmd.AddCommand(exportD3Cmd)
}

func runExportD3(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	lib, net, err := db.LoadSnapshot()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := viz.FromGraph(lib, net).WriteFile(output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Track network exported to %s\n", output)
	return nil
}
