package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIRoot(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if root := settings.GetAPIRoot(); root != DefaultAPIRoot {
		t.Errorf("Expected default API root %s, got %s", DefaultAPIRoot, root)
	}

	// Test setting custom value
	custom := "https://notes.example.com/api"
	settings.SetAPIRoot(custom)
	if root := settings.GetAPIRoot(); root != custom {
		t.Errorf("Expected API root %s, got %s", custom, root)
	}

	// Test empty root defaults back
	settings.SetAPIRoot("")
	if root := settings.GetAPIRoot(); root != DefaultAPIRoot {
		t.Errorf("Empty API root should default to %s, got %s", DefaultAPIRoot, root)
	}
}

func TestBannerSeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if seconds := settings.GetBannerSeconds(); seconds != DefaultBannerSeconds {
		t.Errorf("Expected default banner seconds %d, got %d", DefaultBannerSeconds, seconds)
	}
	if d := settings.GetBannerDuration(); d != DefaultBannerSeconds*time.Second {
		t.Errorf("Expected default banner duration %v, got %v", DefaultBannerSeconds*time.Second, d)
	}

	settings.SetBannerSeconds(5)
	if seconds := settings.GetBannerSeconds(); seconds != 5 {
		t.Errorf("Expected banner seconds 5, got %d", seconds)
	}

	// Test boundary values
	settings.SetBannerSeconds(0)
	if settings.GetBannerSeconds() != MinBannerSeconds {
		t.Errorf("Banner seconds should be clamped to minimum %d", MinBannerSeconds)
	}

	settings.SetBannerSeconds(100)
	if settings.GetBannerSeconds() != MaxBannerSeconds {
		t.Errorf("Banner seconds should be clamped to maximum %d", MaxBannerSeconds)
	}
}

func TestTimeoutSeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if seconds := settings.GetTimeoutSeconds(); seconds != DefaultTimeoutSeconds {
		t.Errorf("Expected default timeout %d, got %d", DefaultTimeoutSeconds, seconds)
	}

	settings.SetTimeoutSeconds(30)
	if d := settings.GetTimeout(); d != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", d)
	}

	settings.SetTimeoutSeconds(-4)
	if settings.GetTimeoutSeconds() != MinTimeoutSeconds {
		t.Errorf("Timeout should be clamped to minimum %d", MinTimeoutSeconds)
	}

	settings.SetTimeoutSeconds(1000)
	if settings.GetTimeoutSeconds() != MaxTimeoutSeconds {
		t.Errorf("Timeout should be clamped to maximum %d", MaxTimeoutSeconds)
	}
}

func TestConfirmDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetConfirmDelete() {
		t.Error("Confirm delete should default to true")
	}

	settings.SetConfirmDelete(false)
	if settings.GetConfirmDelete() {
		t.Error("Expected confirm delete to be false after setting it")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestLastProfile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if name := settings.GetLastProfile(); name != "" {
		t.Errorf("Expected no last profile, got %q", name)
	}

	settings.SetLastProfile("staging")
	if name := settings.GetLastProfile(); name != "staging" {
		t.Errorf("Expected last profile 'staging', got %q", name)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "pt", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
