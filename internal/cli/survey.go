package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/mixmemory/internal/history"
	"github.com/cesargomez89/mixmemory/internal/ingest"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Survey all history playlists and build the network from scratch",
	Long: "load reads every Rekordbox history playlist in the histories " +
		"directory and surveys each transition, including sessions already " +
		"recorded in the ledger. Use it for first-time population or a full rebuild.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd, false)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Survey only history playlists not seen before",
	Long: "update reads the histories directory like load but skips sessions " +
		"already recorded in the ledger, so repeated runs over overlapping " +
		"exports never re-ask about a surveyed session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd, true)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{loadCmd, updateCmd} {
		cmd.Flags().String("histories-dir", "", "directory of exported Rekordbox history .m3u8 files")
		cmd.Flags().String("min-date", "", "only consider sessions on or after this date (YYYY-MM-DD)")
		rootCmd.AddCommand(cmd)
	}
}

func runSurvey(cmd *cobra.Command, incremental bool) error {
	historiesDir, _ := cmd.Flags().GetString("histories-dir")
	if historiesDir == "" {
		historiesDir = cfg.HistoriesDir
	}
	minDateFlag, _ := cmd.Flags().GetString("min-date")
	minDate, err := parseMinDate(minDateFlag)
	if err != nil {
		return err
	}

	sessions, err := history.LoadSince(historiesDir, minDate, log)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history playlists found.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"Loaded %d history playlists. Please mark the good transitions from memory.\n"+
			"Answer y/n per transition, q to stop (confirmed transitions are kept).\n\n",
		len(sessions))

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	lib, net, err := db.LoadSnapshot()
	if err != nil {
		return err
	}

	confirm := ingest.NewPromptConfirmer(os.Stdin, cmd.OutOrStdout())
	pipeline := ingest.NewPipeline(lib, net, db, confirm, log)

	var res ingest.Result
	if incremental {
		res, err = pipeline.UpdateFromSessions(sessions, minDate)
	} else {
		res, err = pipeline.LoadFromSessions(sessions, minDate)
	}
	if err != nil {
		return err
	}

	if res.Cancelled {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSurvey stopped. Confirmed transitions were saved.")
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"Sessions merged: %d, skipped: %d. Transitions confirmed: %d (%d prompts).\n",
		res.SessionsMerged, res.SessionsSkipped, res.EdgesAdded, res.PromptsAsked)
	return nil
}
