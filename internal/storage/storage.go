// Package storage persists transcripts and reports under two managed
// directories and lists them for the browser.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Kind distinguishes the two artifact types.
type Kind int

const (
	KindTranscript Kind = iota
	KindReport
)

func (k Kind) String() string {
	if k == KindReport {
		return "Report"
	}
	return "Transcript"
}

// Entry describes one stored artifact.
type Entry struct {
	Path     string
	Name     string
	Kind     Kind
	Size     int64
	Modified time.Time
}

// VideoID derives the video ID back from the artifact file name, or ""
// when the name does not match the managed naming scheme.
func (e Entry) VideoID() string {
	switch {
	case strings.HasPrefix(e.Name, "transcript_") && strings.HasSuffix(e.Name, ".txt"):
		return strings.TrimSuffix(strings.TrimPrefix(e.Name, "transcript_"), ".txt")
	case strings.HasPrefix(e.Name, "report_") && strings.HasSuffix(e.Name, ".md"):
		return strings.TrimSuffix(strings.TrimPrefix(e.Name, "report_"), ".md")
	}
	return ""
}

// ErrOutsideManaged is returned when a path escapes the managed directories.
var ErrOutsideManaged = errors.New("path is outside the managed directories")

// Store reads and writes artifacts inside its two managed directories.
type Store struct {
	transcriptsDir string
	reportsDir     string
}

// New returns a store rooted at the given directories.
func New(transcriptsDir, reportsDir string) *Store {
	return &Store{transcriptsDir: transcriptsDir, reportsDir: reportsDir}
}

// TranscriptsDir returns the managed transcripts directory.
func (s *Store) TranscriptsDir() string { return s.transcriptsDir }

// ReportsDir returns the managed reports directory.
func (s *Store) ReportsDir() string { return s.reportsDir }

func (s *Store) ensureDirs() error {
	if err := os.MkdirAll(s.transcriptsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create transcripts dir: %w", err)
	}
	if err := os.MkdirAll(s.reportsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create reports dir: %w", err)
	}
	return nil
}

// TranscriptPath returns the managed path for a video's transcript.
func (s *Store) TranscriptPath(videoID string) string {
	return filepath.Join(s.transcriptsDir, "transcript_"+videoID+".txt")
}

// ReportPath returns the managed path for a video's report.
func (s *Store) ReportPath(videoID string) string {
	return filepath.Join(s.reportsDir, "report_"+videoID+".md")
}

// TranscriptExists reports whether a transcript is already persisted.
func (s *Store) TranscriptExists(videoID string) bool {
	_, err := os.Stat(s.TranscriptPath(videoID))
	return err == nil
}

// ReportExists reports whether a report is already persisted.
func (s *Store) ReportExists(videoID string) bool {
	_, err := os.Stat(s.ReportPath(videoID))
	return err == nil
}

// SaveTranscript writes formatted transcript lines. A second write for the
// same ID is a plain overwrite.
func (s *Store) SaveTranscript(videoID string, lines []string) (string, error) {
	if err := s.ensureDirs(); err != nil {
		return "", err
	}
	path := s.TranscriptPath(videoID)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}
	return path, nil
}

// SaveReport writes a report's markdown.
func (s *Store) SaveReport(videoID, content string) (string, error) {
	if err := s.ensureDirs(); err != nil {
		return "", err
	}
	path := s.ReportPath(videoID)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// LoadTranscript reads a persisted transcript.
func (s *Store) LoadTranscript(videoID string) (string, error) {
	data, err := os.ReadFile(s.TranscriptPath(videoID))
	if err != nil {
		return "", fmt.Errorf("failed to read transcript for %s: %w", videoID, err)
	}
	return string(data), nil
}

// LoadReport reads a persisted report.
func (s *Store) LoadReport(videoID string) (string, error) {
	data, err := os.ReadFile(s.ReportPath(videoID))
	if err != nil {
		return "", fmt.Errorf("failed to read report for %s: %w", videoID, err)
	}
	return string(data), nil
}

// List returns all managed artifacts, newest first.
func (s *Store) List() ([]Entry, error) {
	if err := s.ensureDirs(); err != nil {
		return nil, err
	}

	var entries []Entry
	collect := func(dir, prefix, suffix string, kind Kind) error {
		dirents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		for _, de := range dirents {
			name := de.Name()
			if de.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
				continue
			}
			info, err := de.Info()
			if err != nil {
				continue
			}
			entries = append(entries, Entry{
				Path:     filepath.Join(dir, name),
				Name:     name,
				Kind:     kind,
				Size:     info.Size(),
				Modified: info.ModTime(),
			})
		}
		return nil
	}

	if err := collect(s.transcriptsDir, "transcript_", ".txt", KindTranscript); err != nil {
		return nil, err
	}
	if err := collect(s.reportsDir, "report_", ".md", KindReport); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})
	return entries, nil
}

// Read returns the contents of a managed artifact. Paths outside the
// managed directories are refused.
func (s *Store) Read(path string) (string, error) {
	if err := s.checkManaged(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Delete removes a managed artifact. A path resolving outside the managed
// directories is refused unconditionally.
func (s *Store) Delete(path string) error {
	if err := s.checkManaged(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// checkManaged resolves path and verifies it lives directly inside one of
// the managed directories.
func (s *Store) checkManaged(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for _, dir := range []string{s.transcriptsDir, s.reportsDir} {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if filepath.Dir(abs) == absDir {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOutsideManaged, path)
}
