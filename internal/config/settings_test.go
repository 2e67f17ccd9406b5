package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/swipecell/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestHapticsEnabled(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if !settings.GetHapticsEnabled() {
		t.Error("Haptics should be enabled by default")
	}
	settings.SetHapticsEnabled(false)
	if settings.GetHapticsEnabled() {
		t.Error("Haptics should be disabled after SetHapticsEnabled(false)")
	}
}

func TestPresets(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetPreset(model.OrientationLeft); got != DefaultLeftPreset {
		t.Errorf("GetPreset(left) = %v, expected %v", got, DefaultLeftPreset)
	}
	if got := settings.GetPreset(model.OrientationRight); got != DefaultRightPreset {
		t.Errorf("GetPreset(right) = %v, expected %v", got, DefaultRightPreset)
	}

	settings.SetPreset(model.OrientationRight, PresetFill)
	settings.SetPreset(model.OrientationRight, Preset("bogus"))
	if got := settings.GetPreset(model.OrientationRight); got != PresetFill {
		t.Errorf("GetPreset(right) = %v, expected %v", got, PresetFill)
	}
	if got := settings.GetPreset(model.OrientationLeft); got != DefaultLeftPreset {
		t.Errorf("left preset changed to %v", got)
	}

	settings.SetPreset(model.OrientationLeft, PresetNone)
	if opts := settings.Options(model.OrientationLeft); opts.ExpansionStyle != nil {
		t.Error("none preset should disable expansion")
	}
	if opts := settings.Options(model.OrientationRight); opts.ExpansionStyle == nil || !opts.ExpansionStyle.IsFill() {
		t.Error("fill preset should produce a fill expansion")
	}
}

func TestAnimationSpeed(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetAnimationSpeed(); got != DefaultAnimationSpeed {
		t.Errorf("GetAnimationSpeed() = %v, expected %v", got, DefaultAnimationSpeed)
	}

	tests := []struct {
		set      float64
		expected float64
	}{
		{2, 2},
		{0.1, MinAnimationSpeed},
		{10, MaxAnimationSpeed},
	}
	for _, tt := range tests {
		settings.SetAnimationSpeed(tt.set)
		if got := settings.GetAnimationSpeed(); got != tt.expected {
			t.Errorf("after SetAnimationSpeed(%v) got %v, expected %v", tt.set, got, tt.expected)
		}
	}
}

func TestLanguageAndLogLevel(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("GetLanguage() = %v, expected %v", got, DefaultLanguage)
	}
	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("GetLanguage() = %v, expected ru", got)
	}

	if got := settings.GetLogLevel(); got != DefaultLogLevel {
		t.Errorf("GetLogLevel() = %v, expected %v", got, DefaultLogLevel)
	}
	settings.SetLogLevel("debug")
	if got := settings.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %v, expected debug", got)
	}
}

func TestDatabasePath(t *testing.T) {
	settings := NewSettings(test.NewApp())

	path := settings.GetDatabasePath()
	if filepath.Base(path) != DefaultDatabaseName {
		t.Errorf("GetDatabasePath() = %v, expected a %s file", path, DefaultDatabaseName)
	}

	custom := filepath.Join(t.TempDir(), "custom.db")
	settings.SetDatabasePath(custom)
	if got := settings.GetDatabasePath(); got != custom {
		t.Errorf("GetDatabasePath() = %v, expected %v", got, custom)
	}
}

func TestPresetValid(t *testing.T) {
	settings := NewSettings(test.NewApp())
	for _, p := range settings.GetPresetOptions() {
		if !p.Valid() {
			t.Errorf("offered preset %v is not valid", p)
		}
	}
	if Preset("").Valid() {
		t.Error("empty preset should not be valid")
	}
}
