package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cesargomez89/mixmemory/internal/logger"
)

func TestParseFilename(t *testing.T) {
	file, err := ParseFilename("/histories/HISTORY 2023-07-28.m3u8")
	if err != nil {
		t.Fatalf("ParseFilename failed: %v", err)
	}
	if !file.Date.Equal(time.Date(2023, 7, 28, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected date 2023-07-28, got %v", file.Date)
	}
	if file.Number != 1 {
		t.Errorf("Expected default file number 1, got %d", file.Number)
	}

	file, err = ParseFilename("HISTORY 2023-07-28 (4).m3u8")
	if err != nil {
		t.Fatalf("ParseFilename with number failed: %v", err)
	}
	if file.Number != 4 {
		t.Errorf("Expected file number 4, got %d", file.Number)
	}

	for _, bad := range []string{
		"mix.m3u8",
		"HISTORY 2023-7-28.m3u8",
		"HISTORY 2023-07-28.m3u",
		"history 2023-07-28.m3u8",
	} {
		if _, err := ParseFilename(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func writeHistory(t *testing.T, dir, name string, lines []string) {
	t.Helper()
	content := "#EXTM3U\n"
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write history file: %v", err)
	}
}

func TestReadSession(t *testing.T) {
	dir := t.TempDir()
	writeHistory(t, dir, "HISTORY 2023-07-28.m3u8", []string{
		"#EXTINF:331,OCH - Whalesong",
		"/Users/dj/Music/och-whalesong.mp3",
		"#EXTINF:412,Leftfield - Not Forgotten - Hard Hands Mix",
		"/Users/dj/Music/leftfield.mp3",
		"#EXTINF:250,Instrumental Bit",
		"/Users/dj/Music/instrumental.mp3",
	})

	file, err := ParseFilename(filepath.Join(dir, "HISTORY 2023-07-28.m3u8"))
	if err != nil {
		t.Fatalf("ParseFilename failed: %v", err)
	}
	session, err := ReadSession(file)
	if err != nil {
		t.Fatalf("ReadSession failed: %v", err)
	}

	if session.ID != "HISTORY 2023-07-28.m3u8" {
		t.Errorf("Expected session ID to be the file name, got %q", session.ID)
	}
	if len(session.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(session.Entries))
	}
	if session.Entries[0].Artist != "OCH" || session.Entries[0].Title != "Whalesong" {
		t.Errorf("Unexpected first entry: %+v", session.Entries[0])
	}
	// Split on the first separator only: dashes in titles survive.
	if session.Entries[1].Title != "Not Forgotten - Hard Hands Mix" {
		t.Errorf("Expected dashed title preserved, got %q", session.Entries[1].Title)
	}
	// No separator at all: artist falls back to Unknown.
	if session.Entries[2].Artist != "Unknown" || session.Entries[2].Title != "Instrumental Bit" {
		t.Errorf("Unexpected fallback entry: %+v", session.Entries[2])
	}
}

func TestLoadSince(t *testing.T) {
	dir := t.TempDir()
	writeHistory(t, dir, "HISTORY 2023-07-27.m3u8", []string{"#EXTINF:200,A - One"})
	writeHistory(t, dir, "HISTORY 2023-07-28 (2).m3u8", []string{"#EXTINF:200,C - Three"})
	writeHistory(t, dir, "HISTORY 2023-07-28.m3u8", []string{"#EXTINF:200,B - Two"})
	writeHistory(t, dir, "random-playlist.m3u8", []string{"#EXTINF:200,X - Y"})

	sessions, err := LoadSince(dir, time.Date(2023, 7, 28, 0, 0, 0, 0, time.UTC), logger.Default())
	if err != nil {
		t.Fatalf("LoadSince failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}
	// Oldest first, per-day number breaking ties.
	if sessions[0].ID != "HISTORY 2023-07-28.m3u8" {
		t.Errorf("Unexpected first session: %s", sessions[0].ID)
	}
	if sessions[1].ID != "HISTORY 2023-07-28 (2).m3u8" {
		t.Errorf("Unexpected second session: %s", sessions[1].ID)
	}

	// Zero minDate admits everything that parses.
	all, err := LoadSince(dir, time.Time{}, logger.Default())
	if err != nil {
		t.Fatalf("LoadSince with zero minDate failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(all))
	}
}
