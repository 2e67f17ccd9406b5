package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/model"
)

func TestSettingsDialogLoadsAndSaves(t *testing.T) {
	app := test.NewTempApp(t)
	w := test.NewWindow(widget.NewLabel(""))
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, i18n.New(), w)
	sd.loadCurrentSettings()

	assert.True(t, sd.hapticsCheck.Checked)
	assert.Equal(t, string(config.PresetSelection), sd.leftSelect.Selected)
	assert.Equal(t, string(config.PresetDestructive), sd.rightSelect.Selected)
	assert.Equal(t, config.DefaultAnimationSpeed, sd.speedSlider.Value)

	saved := false
	sd.OnSaved = func() { saved = true }

	sd.hapticsCheck.SetChecked(false)
	sd.rightSelect.SetSelected(string(config.PresetFill))
	sd.speedSlider.SetValue(2)
	sd.languageSelect.SetSelected("ru")
	sd.logLevelSelect.SetSelected("debug")
	sd.onSave(true)

	assert.True(t, saved)
	assert.False(t, settings.GetHapticsEnabled())
	assert.Equal(t, config.PresetFill, settings.GetPreset(model.OrientationRight))
	assert.Equal(t, 2.0, settings.GetAnimationSpeed())
	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, "debug", settings.GetLogLevel())
}

func TestSettingsDialogCancelKeepsSettings(t *testing.T) {
	app := test.NewTempApp(t)
	w := test.NewWindow(widget.NewLabel(""))
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, i18n.New(), w)
	sd.loadCurrentSettings()

	sd.leftSelect.SetSelected(string(config.PresetNone))
	sd.onSave(false)

	assert.Equal(t, config.PresetSelection, settings.GetPreset(model.OrientationLeft))
}
