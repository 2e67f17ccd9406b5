package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *i18n.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// OnSaved runs after the settings were written
	OnSaved func()

	// UI components
	hapticsCheck   *widget.Check
	languageSelect *widget.Select
	leftSelect     *widget.Select
	rightSelect    *widget.Select
	speedSlider    *widget.Slider
	speedLabel     *widget.Label
	logLevelSelect *widget.Select
	databaseEntry  *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *i18n.Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.hapticsCheck = widget.NewCheck(text(i18n.KeyHaptics), nil)

	languages := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	sd.languageSelect = widget.NewSelect(codes, nil)

	presets := []string{}
	for _, preset := range sd.settings.GetPresetOptions() {
		presets = append(presets, string(preset))
	}
	sd.leftSelect = widget.NewSelect(presets, nil)
	sd.rightSelect = widget.NewSelect(presets, nil)

	sd.speedLabel = widget.NewLabel("")
	sd.speedSlider = widget.NewSlider(config.MinAnimationSpeed, config.MaxAnimationSpeed)
	sd.speedSlider.Step = 0.25
	sd.speedSlider.OnChanged = func(v float64) {
		sd.speedLabel.SetText(fmt.Sprintf("%.2fx", v))
	}

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	sd.databaseEntry = widget.NewEntry()
	revealBtn := widget.NewButton(text(i18n.KeyReveal), sd.onReveal)
	databaseRow := container.NewBorder(nil, nil, nil, revealBtn, sd.databaseEntry)

	form := container.NewVBox(
		sd.hapticsCheck,

		widget.NewLabel(text(i18n.KeyLeftPreset)+":"),
		sd.leftSelect,

		widget.NewLabel(text(i18n.KeyRightPreset)+":"),
		sd.rightSelect,

		widget.NewLabel(text(i18n.KeyAnimationSpeed)+":"),
		container.NewBorder(nil, nil, nil, sd.speedLabel, sd.speedSlider),

		widget.NewSeparator(),

		widget.NewLabel(text(i18n.KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(text(i18n.KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewLabel(text(i18n.KeyDatabase)+":"),
		databaseRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(i18n.KeySettings),
		text(i18n.KeySave),
		text(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.hapticsCheck.SetChecked(sd.settings.GetHapticsEnabled())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.leftSelect.SetSelected(string(sd.settings.GetPreset(model.OrientationLeft)))
	sd.rightSelect.SetSelected(string(sd.settings.GetPreset(model.OrientationRight)))
	sd.speedSlider.SetValue(sd.settings.GetAnimationSpeed())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.databaseEntry.SetText(sd.settings.GetDatabasePath())
}

// onReveal opens the folder holding the database
func (sd *SettingsDialog) onReveal() {
	dir := filepath.Dir(sd.databaseEntry.Text)
	if err := platform.RevealInFileManager(dir); err != nil {
		logging.Logger().Warn("failed to reveal database folder", "dir", dir, "error", err)
		dialog.ShowError(err, sd.window)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetHapticsEnabled(sd.hapticsCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if preset := config.Preset(sd.leftSelect.Selected); preset.Valid() {
		sd.settings.SetPreset(model.OrientationLeft, preset)
	}
	if preset := config.Preset(sd.rightSelect.Selected); preset.Valid() {
		sd.settings.SetPreset(model.OrientationRight, preset)
	}
	sd.settings.SetAnimationSpeed(sd.speedSlider.Value)

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
		logging.SetRawLogLevel(sd.logLevelSelect.Selected)
	}
	if sd.databaseEntry.Text != "" {
		sd.settings.SetDatabasePath(sd.databaseEntry.Text)
	}

	if sd.OnSaved != nil {
		sd.OnSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(i18n.KeySettings), sd.localization.GetText(i18n.KeySettingsSaved), sd.window)
}
