// Package tagscan seeds the library from a directory of tagged audio files,
// reading ID3v2 frames from mp3s and Vorbis comments from flacs.
package tagscan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/cesargomez89/mixmemory/internal/logger"
)

// TrackTag is the artist/title pair read from one audio file.
type TrackTag struct {
	Artist string
	Title  string
	Path   string
}

// ScanDirectory walks dir recursively and reads tags from every supported
// audio file. Files with missing or unreadable tags are skipped with a
// warning; a music folder is rarely perfectly tagged and one bad file must
// not abort the import.
func ScanDirectory(dir string, log *logger.Logger) ([]TrackTag, error) {
	var tags []TrackTag

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		var tag TrackTag
		var readErr error
		switch strings.ToLower(filepath.Ext(path)) {
		case ".mp3":
			tag, readErr = readMP3(path)
		case ".flac":
			tag, readErr = readFLAC(path)
		default:
			return nil
		}

		if readErr != nil {
			log.Warn("skipping unreadable audio file", "file", path, "error", readErr)
			return nil
		}
		if tag.Artist == "" || tag.Title == "" {
			log.Warn("skipping audio file without artist/title tags", "file", path)
			return nil
		}
		tags = append(tags, tag)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan music dir: %w", err)
	}
	return tags, nil
}

func readMP3(path string) (TrackTag, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return TrackTag{}, fmt.Errorf("failed to parse ID3 tag: %w", err)
	}
	defer tag.Close()

	return TrackTag{
		Artist: strings.TrimSpace(tag.Artist()),
		Title:  strings.TrimSpace(tag.Title()),
		Path:   path,
	}, nil
}

func readFLAC(path string) (TrackTag, error) {
	file, err := flac.ParseFile(path)
	if err != nil {
		return TrackTag{}, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	for _, block := range file.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		comment, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return TrackTag{}, fmt.Errorf("failed to parse Vorbis comment: %w", err)
		}
		return TrackTag{
			Artist: firstField(comment, flacvorbis.FIELD_ARTIST),
			Title:  firstField(comment, flacvorbis.FIELD_TITLE),
			Path:   path,
		}, nil
	}
	return TrackTag{}, fmt.Errorf("no Vorbis comment block in %s", path)
}

func firstField(comment *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := comment.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
