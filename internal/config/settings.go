package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/platform"
)

// Preset names an expansion style offered in settings and options files
type Preset string

const (
	PresetNone                 Preset = "none"
	PresetSelection            Preset = "selection"
	PresetDestructive          Preset = "destructive"
	PresetDestructiveAfterFill Preset = "destructiveAfterFill"
	PresetFill                 Preset = "fill"
)

// Settings keys for Fyne preferences
const (
	KeyHaptics        = "haptics_enabled"
	KeyLanguage       = "app_language"
	KeyLeftPreset     = "left_expansion_preset"
	KeyRightPreset    = "right_expansion_preset"
	KeyAnimationSpeed = "animation_speed"
	KeyLogLevel       = "log_level"
	KeyDatabasePath   = "database_path"
)

// Default values
const (
	DefaultHaptics        = true
	DefaultLanguage       = "system"
	DefaultLeftPreset     = PresetSelection
	DefaultRightPreset    = PresetDestructive
	DefaultAnimationSpeed = 1.0
	DefaultLogLevel       = "info"
	DefaultDatabaseName   = "mailbox.db"

	MinAnimationSpeed = 0.25
	MaxAnimationSpeed = 4.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHapticsEnabled returns whether expansion feedback is played
func (s *Settings) GetHapticsEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyHaptics, DefaultHaptics)
}

// SetHapticsEnabled sets whether expansion feedback is played
func (s *Settings) SetHapticsEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyHaptics, enabled)
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

// GetPreset returns the expansion preset for an orientation
func (s *Settings) GetPreset(o model.Orientation) Preset {
	key, fallback := presetKey(o)
	preset := Preset(s.app.Preferences().String(key))
	if !preset.Valid() {
		s.SetPreset(o, fallback)
		return fallback
	}
	return preset
}

// SetPreset sets the expansion preset for an orientation. Unknown presets are ignored.
func (s *Settings) SetPreset(o model.Orientation, preset Preset) {
	if !preset.Valid() {
		return
	}
	key, _ := presetKey(o)
	s.app.Preferences().SetString(key, string(preset))
}

func presetKey(o model.Orientation) (string, Preset) {
	if o == model.OrientationLeft {
		return KeyLeftPreset, DefaultLeftPreset
	}
	return KeyRightPreset, DefaultRightPreset
}

// GetAnimationSpeed returns the factor animation durations are divided by
func (s *Settings) GetAnimationSpeed() float64 {
	speed := s.app.Preferences().FloatWithFallback(KeyAnimationSpeed, DefaultAnimationSpeed)
	if speed < MinAnimationSpeed || speed > MaxAnimationSpeed {
		s.SetAnimationSpeed(speed)
		return clampSpeed(speed)
	}
	return speed
}

// SetAnimationSpeed sets the animation speed factor
func (s *Settings) SetAnimationSpeed(speed float64) {
	s.app.Preferences().SetFloat(KeyAnimationSpeed, clampSpeed(speed))
}

func clampSpeed(speed float64) float64 {
	if speed < MinAnimationSpeed {
		return MinAnimationSpeed
	}
	if speed > MaxAnimationSpeed {
		return MaxAnimationSpeed
	}
	return speed
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetDatabasePath returns the mailbox database file
func (s *Settings) GetDatabasePath() string {
	path := s.app.Preferences().String(KeyDatabasePath)
	if path == "" {
		dir, err := platform.GetDataDir()
		if err != nil {
			return DefaultDatabaseName
		}
		path = filepath.Join(dir, DefaultDatabaseName)
		s.SetDatabasePath(path)
	}
	return path
}

// SetDatabasePath sets the mailbox database file
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

// Options returns the strip options for an orientation built from its preset
func (s *Settings) Options(o model.Orientation) model.Options {
	opts := model.DefaultOptions()
	opts.ExpansionStyle = s.GetPreset(o).Style()
	return opts
}

// GetPresetOptions returns the available expansion presets
func (s *Settings) GetPresetOptions() []Preset {
	return []Preset{PresetNone, PresetSelection, PresetDestructive, PresetDestructiveAfterFill, PresetFill}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevelOptions returns the accepted log level names
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Valid reports whether p names a known preset
func (p Preset) Valid() bool {
	switch p {
	case PresetNone, PresetSelection, PresetDestructive, PresetDestructiveAfterFill, PresetFill:
		return true
	}
	return false
}

// Style returns a fresh expansion style for the preset, nil for none
func (p Preset) Style() *model.ExpansionStyle {
	switch p {
	case PresetSelection:
		return model.SelectionExpansion()
	case PresetDestructive:
		return model.DestructiveExpansion()
	case PresetDestructiveAfterFill:
		return model.DestructiveAfterFillExpansion()
	case PresetFill:
		return model.FillExpansion()
	default:
		return nil
	}
}
