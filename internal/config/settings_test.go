package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadYAMLOrDefaultMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	got, err := loadYAMLOrDefault(path, NewSettings)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, NewSettings()) {
		t.Errorf("missing file = %+v, want defaults", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	in := &Settings{
		Languages:          []string{"de"},
		PreserveFormatting: false,
		AutoReport:         true,
		TranscriptsDir:     "/data/t",
	}
	if err := saveYAML(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := loadYAMLOrDefault(path, NewSettings)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestLoadYAMLOrDefaultBrokenFile(t *testing.T) {
	// A present-but-unparseable file must error, not reset to defaults.
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("languages: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadYAMLOrDefault(path, NewSettings); err == nil {
		t.Fatal("broken YAML loaded without error")
	}
}

func TestEffectiveDirs(t *testing.T) {
	s := NewSettings()
	if got := s.EffectiveTranscriptsDir(); got != TranscriptsDirName {
		t.Errorf("default transcripts dir = %q", got)
	}
	s.TranscriptsDir = "/data/t"
	s.ReportsDir = "/data/r"
	if got := s.EffectiveTranscriptsDir(); got != "/data/t" {
		t.Errorf("override transcripts dir = %q", got)
	}
	if got := s.EffectiveReportsDir(); got != "/data/r" {
		t.Errorf("override reports dir = %q", got)
	}
}
