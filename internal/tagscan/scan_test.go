package tagscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"

	"github.com/cesargomez89/mixmemory/internal/logger"
)

func writeMP3(t *testing.T, dir, name, artist, title string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tag := id3v2.NewEmptyTag()
	if artist != "" {
		tag.SetArtist(artist)
	}
	if title != "" {
		tag.SetTitle(title)
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("Failed to open file: %v", err)
	}
	defer f.Close()
	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("Failed to write tag: %v", err)
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeMP3(t, dir, "whalesong.mp3", "OCH", "Whalesong")
	writeMP3(t, dir, "untitled.mp3", "Someone", "") // missing title: skipped

	// Unsupported and junk files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("not audio"), 0o644); err != nil {
		t.Fatalf("Failed to write junk file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.flac"), []byte("not a flac"), 0o644); err != nil {
		t.Fatalf("Failed to write broken flac: %v", err)
	}

	tags, err := ScanDirectory(dir, logger.Default())
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("Expected 1 readable tag, got %d", len(tags))
	}
	if tags[0].Artist != "OCH" || tags[0].Title != "Whalesong" {
		t.Errorf("Unexpected tag: %+v", tags[0])
	}
}

func TestScanDirectoryRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "crates", "ambient")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	writeMP3(t, sub, "rez.mp3", "Underworld", "Rez")

	tags, err := ScanDirectory(dir, logger.Default())
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("Expected 1 tag from nested dir, got %d", len(tags))
	}
	if tags[0].Artist != "Underworld" {
		t.Errorf("Unexpected tag: %+v", tags[0])
	}
}
