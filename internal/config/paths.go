// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global vidio directory.
	GlobalDirName = ".vidio"

	// TranscriptsDirName is the default managed transcripts directory.
	TranscriptsDirName = "transcripts"

	// ReportsDirName is the default managed reports directory.
	ReportsDirName = "reports"
)

// SettingsFileName is the settings file inside the global directory.
const SettingsFileName = "settings.yaml"

// GlobalDir returns the path to the global vidio directory (~/.vidio/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}
