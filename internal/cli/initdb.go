package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/mixmemory/internal/ingest"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Drop any existing database and recreate it with empty tables",
	RunE:  runInitDB,
}

func init() {
	initDBCmd.Flags().Bool("force", false, "recreate without asking for confirmation")
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		confirm := ingest.NewPromptConfirmer(os.Stdin, cmd.OutOrStdout())
		ok, err := confirm.Confirm(fmt.Sprintf("Are you sure you want to reset the database %s?", cfg.DBPath))
		if err != nil || !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database %s has been recreated.\n", cfg.DBPath)
	return nil
}
