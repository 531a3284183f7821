package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:   "connect <source-artist> <source-title> <dest-artist> <dest-title>",
	Short: "Record a confirmed transition between two tracks by hand",
	Args:  cobra.ExactArgs(4),
	RunE:  runConnect,
}

func init() {
	connectCmd.Flags().Bool("bidirectional", false, "record the reverse transition as well")
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	bidirectional, _ := cmd.Flags().GetBool("bidirectional")

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	lib, net, err := db.LoadSnapshot()
	if err != nil {
		return err
	}

	source := lib.GetOrCreate(args[0], args[1])
	dest := lib.GetOrCreate(args[2], args[3])
	if source.ID == dest.ID {
		return fmt.Errorf("a track cannot transition to itself: %s", source)
	}

	net.AddEdge(source.ID, dest.ID)
	if bidirectional {
		net.AddEdge(dest.ID, source.ID)
	}

	if err := db.SaveSnapshot(lib, net); err != nil {
		return err
	}

	arrow := " -> "
	if bidirectional {
		arrow = " <-> "
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Connection added: '%s'%s'%s'\n", source, arrow, dest)
	return nil
}
