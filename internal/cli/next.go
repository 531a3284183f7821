package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/mixmemory/internal/recommend"
)

var nextCmd = &cobra.Command{
	Use:   "next <artist> <title>",
	Short: "Suggest next tracks from the transition network",
	Args:  cobra.ExactArgs(2),
	RunE:  runNext,
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	lib, net, err := db.LoadSnapshot()
	if err != nil {
		return err
	}

	options, err := recommend.New(lib, net).NextTrackOptions(args[0], args[1])
	if err != nil {
		return err
	}

	nowPlaying := fmt.Sprintf("%s - %s", args[0], args[1])
	if len(options) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No recommendations found for %s.\n", nowPlaying)
		return nil
	}

	names := make([]string, 0, len(options))
	for _, track := range options {
		names = append(names, track.String())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "After playing %s, consider playing: %s\n",
		nowPlaying, strings.Join(names, ", "))
	return nil
}
