package config

// Settings are the user defaults applied to new transcript requests and
// the managed storage locations.
type Settings struct {
	Languages          []string `yaml:"languages"`
	PreserveFormatting bool     `yaml:"preserve_formatting"`
	AutoReport         bool     `yaml:"auto_report"`
	TranscriptsDir     string   `yaml:"transcripts_dir,omitempty"`
	ReportsDir         string   `yaml:"reports_dir,omitempty"`
}

// NewSettings returns the default settings.
func NewSettings() *Settings {
	return &Settings{
		Languages:          []string{"en", "es"},
		PreserveFormatting: true,
		AutoReport:         true,
	}
}

// EffectiveTranscriptsDir resolves the managed transcripts directory.
func (s *Settings) EffectiveTranscriptsDir() string {
	if s.TranscriptsDir != "" {
		return s.TranscriptsDir
	}
	return TranscriptsDirName
}

// EffectiveReportsDir resolves the managed reports directory.
func (s *Settings) EffectiveReportsDir() string {
	if s.ReportsDir != "" {
		return s.ReportsDir
	}
	return ReportsDirName
}

// LoadSettings loads the global settings from ~/.vidio/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return loadYAMLOrDefault(path, NewSettings)
}

// SaveSettings saves the global settings to ~/.vidio/settings.yaml.
func SaveSettings(settings *Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return saveYAML(path, settings)
}
