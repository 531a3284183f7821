// Package history loads exported Rekordbox history playlists as ingest
// sessions. A history playlist is ordered by play time, so it doubles as the
// record of every transition the DJ made during a set.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cesargomez89/mixmemory/internal/ingest"
	"github.com/cesargomez89/mixmemory/internal/logger"
)

// Exported filenames look like "HISTORY 2023-07-28.m3u8" or, for the n-th
// set of a day, "HISTORY 2023-07-28 (4).m3u8".
var filenamePattern = regexp.MustCompile(`^HISTORY (\d{4}-\d{2}-\d{2}) ?(\((\d+)\))?\.m3u8$`)

// File identifies one exported history playlist file.
type File struct {
	Path   string
	Name   string
	Date   time.Time
	Number int // per-day file number, 1 when absent
}

// ParseFilename extracts the date and per-day number from a history file
// name. Returns an error for names that are not Rekordbox history exports.
func ParseFilename(path string) (File, error) {
	name := filepath.Base(path)
	match := filenamePattern.FindStringSubmatch(name)
	if match == nil {
		return File{}, fmt.Errorf("file name doesn't match Rekordbox history pattern: %s", name)
	}

	date, err := time.Parse("2006-01-02", match[1])
	if err != nil {
		return File{}, fmt.Errorf("failed to parse date in %s: %w", name, err)
	}

	number := 1
	if match[3] != "" {
		number, err = strconv.Atoi(match[3])
		if err != nil {
			return File{}, fmt.Errorf("failed to parse file number in %s: %w", name, err)
		}
	}

	return File{Path: path, Name: name, Date: date, Number: number}, nil
}

// ReadSession parses one history file into an ingest session. Track entries
// come from "#EXTINF:<secs>,Artist - Title" lines; the split is on the first
// " - " so titles containing dashes survive.
func ReadSession(file File) (ingest.Session, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return ingest.Session{}, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	session := ingest.Session{ID: file.Name, Date: file.Date}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#EXTINF") {
			continue
		}
		_, display, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		artist, title, ok := strings.Cut(display, " - ")
		if !ok {
			// No artist separator: keep the whole field as the title.
			artist, title = "Unknown", display
		}
		session.Entries = append(session.Entries, ingest.Entry{
			Artist:   strings.TrimSpace(artist),
			Title:    strings.TrimSpace(title),
			PlayedAt: file.Date,
		})
	}
	if err := scanner.Err(); err != nil {
		return ingest.Session{}, fmt.Errorf("failed to read history file: %w", err)
	}

	return session, nil
}

// LoadSince loads every history playlist in dir dated on or after minDate,
// oldest first. Files that don't look like history exports are skipped with
// a log line; the directory may hold other playlists. A zero minDate admits
// everything.
func LoadSince(dir string, minDate time.Time, log *logger.Logger) ([]ingest.Session, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read histories dir: %w", err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".m3u8") {
			continue
		}
		file, err := ParseFilename(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn("skipping non-history playlist", "file", entry.Name())
			continue
		}
		if !minDate.IsZero() && file.Date.Before(minDate) {
			continue
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].Date.Equal(files[j].Date) {
			return files[i].Date.Before(files[j].Date)
		}
		return files[i].Number < files[j].Number
	})

	sessions := make([]ingest.Session, 0, len(files))
	for _, file := range files {
		session, err := ReadSession(file)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
