// Package audio decodes preview tracks and measures what is being played.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported file type")

// Patterns lists the file name patterns Decode accepts.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Track is a decoded, seekable audio stream and the file behind it.
type Track struct {
	Path     string
	Streamer beep.StreamSeekCloser
	Format   beep.Format
	file     *os.File
}

// Duration is the track length.
func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.Streamer.Len())
}

// Close releases the stream and the file.
func (t *Track) Close() error {
	err := t.Streamer.Close()
	// Decoders may already have closed the file.
	_ = t.file.Close()
	return err
}

// Decode opens path and picks a decoder from its extension.
func Decode(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var decode func(*os.File) (beep.StreamSeekCloser, beep.Format, error)
	switch ext {
	case ".wav":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }
	case ".mp3":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }
	case ".flac":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &Track{Path: path, Streamer: streamer, Format: format, file: f}, nil
}

// FormatDuration formats a duration as MM:SS.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
