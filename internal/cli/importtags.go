package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/mixmemory/internal/tagscan"
)

var importTagsCmd = &cobra.Command{
	Use:   "import-tags",
	Short: "Seed the library from a directory of tagged audio files",
	Long: "import-tags walks a music directory, reads artist/title tags from " +
		"mp3 and flac files, and adds unseen tracks to the library. No " +
		"transitions are created; the tracks become available for connect " +
		"and render as unconnected nodes in the visualization.",
	RunE: runImportTags,
}

func init() {
	importTagsCmd.Flags().String("music-dir", "", "directory of tagged audio files")
	_ = importTagsCmd.MarkFlagRequired("music-dir")
	rootCmd.AddCommand(importTagsCmd)
}

func runImportTags(cmd *cobra.Command, args []string) error {
	musicDir, _ := cmd.Flags().GetString("music-dir")

	tags, err := tagscan.ScanDirectory(musicDir, log)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	lib, net, err := db.LoadSnapshot()
	if err != nil {
		return err
	}

	before := lib.Len()
	for _, tag := range tags {
		lib.GetOrCreate(tag.Artist, tag.Title)
	}

	if err := db.SaveSnapshot(lib, net); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d tagged files, added %d new tracks (library now %d).\n",
		len(tags), lib.Len()-before, lib.Len())
	return nil
}
