package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/corenotes/corenotes/internal/api"
)

// Settings keys for Fyne preferences
const (
	KeyAPIRoot         = "api_root"
	KeyLanguage        = "app_language"
	KeyBannerSeconds   = "banner_seconds"
	KeyConfirmDelete   = "confirm_delete"
	KeyTimeoutSeconds  = "request_timeout_seconds"
	KeyLastProfileName = "last_profile"
)

// Default values
const (
	DefaultAPIRoot        = api.DefaultAPIRoot
	DefaultLanguage       = "system"
	DefaultBannerSeconds  = 3
	DefaultConfirmDelete  = true
	DefaultTimeoutSeconds = 10
)

// Bounds for numeric settings
const (
	MinBannerSeconds  = 1
	MaxBannerSeconds  = 30
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIRoot returns the configured notes API root
func (s *Settings) GetAPIRoot() string {
	root := s.app.Preferences().String(KeyAPIRoot)
	if root == "" {
		s.SetAPIRoot(DefaultAPIRoot)
		return DefaultAPIRoot
	}
	return root
}

// SetAPIRoot sets the notes API root; empty resets to the default
func (s *Settings) SetAPIRoot(root string) {
	if root == "" {
		root = DefaultAPIRoot
	}
	s.app.Preferences().SetString(KeyAPIRoot, root)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetBannerSeconds returns how long banners stay visible
func (s *Settings) GetBannerSeconds() int {
	value := s.app.Preferences().Int(KeyBannerSeconds)
	if value <= 0 {
		s.SetBannerSeconds(DefaultBannerSeconds)
		return DefaultBannerSeconds
	}
	return value
}

// SetBannerSeconds sets how long banners stay visible
func (s *Settings) SetBannerSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyBannerSeconds, clamp(seconds, MinBannerSeconds, MaxBannerSeconds))
}

// GetBannerDuration returns GetBannerSeconds as a duration
func (s *Settings) GetBannerDuration() time.Duration {
	return time.Duration(s.GetBannerSeconds()) * time.Second
}

// GetConfirmDelete returns whether deleting a note asks first
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deleting a note asks first
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetTimeoutSeconds returns the per-request timeout
func (s *Settings) GetTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyTimeoutSeconds)
	if value <= 0 {
		s.SetTimeoutSeconds(DefaultTimeoutSeconds)
		return DefaultTimeoutSeconds
	}
	return value
}

// SetTimeoutSeconds sets the per-request timeout
func (s *Settings) SetTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyTimeoutSeconds, clamp(seconds, MinTimeoutSeconds, MaxTimeoutSeconds))
}

// GetTimeout returns GetTimeoutSeconds as a duration
func (s *Settings) GetTimeout() time.Duration {
	return time.Duration(s.GetTimeoutSeconds()) * time.Second
}

// GetLastProfile returns the name of the profile used last, if any
func (s *Settings) GetLastProfile() string {
	return s.app.Preferences().String(KeyLastProfileName)
}

// SetLastProfile remembers the profile name for the next start
func (s *Settings) SetLastProfile(name string) {
	s.app.Preferences().SetString(KeyLastProfileName, name)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
		"ru":     "Русский",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
