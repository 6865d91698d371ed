package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/contact-assistant/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DateLayoutInput", config.DateLayoutInput},
		{"DateLayoutDisplay", config.DateLayoutDisplay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneDigits)
	assert.Equal(t, 7, config.DefaultWindowDays)
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)

	s := config.DefaultSettings()
	assert.NoError(t, s.Validate(), "Defaults must always validate")
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), *s)
}

func TestLoadSettings_EmptyPathReturnsDefaults(t *testing.T) {
	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), *s)
}

func TestLoadSettings_Overrides(t *testing.T) {
	path := writeSettings(t, "language: uk\nwindow: 14\nseed: 5\nplain: true\n")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.Settings{Language: "uk", Window: 14, Seed: 5, Plain: true}, *s)
}

func TestLoadSettings_PartialKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "window: 3\n")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLanguage, s.Language)
	assert.Equal(t, 3, s.Window)
}

func TestLoadSettings_CommentOnly(t *testing.T) {
	path := writeSettings(t, "# nothing configured yet\n")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), *s)
}

func TestLoadSettings_UnknownFieldRejected(t *testing.T) {
	path := writeSettings(t, "windw: 3\n")

	_, err := config.LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsParse)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Settings)
		wantErr string
	}{
		{"defaults", func(*config.Settings) {}, ""},
		{"ukrainian", func(s *config.Settings) { s.Language = "uk" }, ""},
		{"zero window", func(s *config.Settings) { s.Window = 0 }, ""},
		{"unknown language", func(s *config.Settings) { s.Language = "xx" }, config.ErrLanguage},
		{"negative window", func(s *config.Settings) { s.Window = -1 }, config.ErrWindowRange},
		{"huge window", func(s *config.Settings) { s.Window = 400 }, config.ErrWindowRange},
		{"negative seed", func(s *config.Settings) { s.Seed = -2 }, config.ErrSeedRange},
		{"huge seed", func(s *config.Settings) { s.Seed = config.MaxSeedContacts + 1 }, config.ErrSeedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))
	return path
}
