package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
)

// RootOptions wires the demo window
type RootOptions struct {
	Mailbox mailbox.Mailbox
	// FileOptions, when set, replaces the presets chosen in settings
	FileOptions *config.SwipeOptions
	// Reseed restores the sample inbox; nil hides the reset button
	Reseed func() error
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *i18n.Localization
	mailbox      mailbox.Mailbox
	fileOptions  *config.SwipeOptions
	reseed       func() error

	list     *SwipeList
	haptics  *Haptics
	router   *TouchRouter
	mobileUI *MobileUI

	editBtn     *widget.Button
	resetBtn    *widget.Button
	countLabel  *widget.Label
	detailLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimer     *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts RootOptions) *RootUI {
	settings := config.NewSettings(app)

	localization := i18n.New()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mailbox:      opts.Mailbox,
		fileOptions:  opts.FileOptions,
		reseed:       opts.Reseed,
		mobileUI:     NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(i18n.KeyAppTitle))
	ui.setupUI()

	logging.Logger().Info("root UI initialized", "messages", len(opts.Mailbox.Messages()), "language", localization.GetCurrentLanguage())
	return ui
}

// List returns the message list
func (ui *RootUI) List() *SwipeList {
	return ui.list
}

// TouchRouter returns the router feeding raw touch samples into the list
func (ui *RootUI) TouchRouter() *TouchRouter {
	return ui.router
}

// options returns the strip options for a side
func (ui *RootUI) options(o model.Orientation) model.Options {
	if ui.fileOptions != nil {
		return ui.fileOptions.For(o)
	}
	return ui.settings.Options(o)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.countLabel = widget.NewLabel("")
	ui.detailLabel = widget.NewLabel("")
	ui.detailLabel.Truncation = fyne.TextTruncateEllipsis

	ui.haptics = NewHaptics(ui.settings.GetHapticsEnabled)
	ui.list = NewSwipeList(ListConfig{
		Mailbox:      ui.mailbox,
		Localization: ui.localization,
		Options:      ui.options,
		Animator:     NewAnimator(ui.settings.GetAnimationSpeed),
		Haptics:      ui.haptics,
		RowHeight:    ui.mobileUI.RowHeight(),
	})
	ui.list.OnChanged = ui.updateCount
	ui.list.OnNotify = func(text string) { ui.showNotification(text) }
	ui.list.OnSelected = func(msg mailbox.Message) {
		ui.detailLabel.SetText(msg.Subject)
	}

	ui.router = NewTouchRouter(ui.list)
	ui.router.Origin = func(p fyne.Position) fyne.Position {
		origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(ui.list)
		return p.Subtract(origin)
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.editBtn = widget.NewButton(ui.localization.GetText(i18n.KeyEdit), ui.onToggleEditing)
	ui.resetBtn = widget.NewButton(IconReset+" "+ui.localization.GetText(i18n.KeyResetDemo), ui.onReseed)
	if ui.reseed == nil {
		ui.resetBtn.Hide()
	}

	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn, ui.countLabel), container.NewHBox(ui.resetBtn, ui.editBtn))

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.notificationContainer), // top
		ui.detailLabel, // bottom
		nil,
		nil,
		container.NewStack(ui.list, ui.haptics.Overlay()),
	)

	ui.window.SetContent(content)
	ui.updateCount()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(i18n.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))
	ui.setEditText()
	ui.resetBtn.SetText(IconReset + " " + ui.localization.GetText(i18n.KeyResetDemo))
	ui.updateCount()
	ui.list.Reload()
}

func (ui *RootUI) setEditText() {
	if ui.list.IsEditing() {
		ui.editBtn.SetText(ui.localization.GetText(i18n.KeyDone))
		return
	}
	ui.editBtn.SetText(ui.localization.GetText(i18n.KeyEdit))
}

// updateCount shows the number of unread messages
func (ui *RootUI) updateCount() {
	unread := 0
	for _, msg := range ui.mailbox.Messages() {
		if msg.Unread {
			unread++
		}
	}
	ui.countLabel.SetText(ui.localization.GetCount(i18n.KeyUnreadCount, unread))
}

func (ui *RootUI) onToggleEditing() {
	ui.list.SetEditing(!ui.list.IsEditing())
	ui.setEditText()
}

func (ui *RootUI) onReseed() {
	if ui.reseed == nil {
		return
	}
	if err := ui.reseed(); err != nil {
		logging.Logger().Error("failed to reseed mailbox", "error", err)
		ui.showNotification(ui.localization.GetText(i18n.KeyError) + ": " + err.Error())
		return
	}
	if err := ui.mailbox.Reload(); err != nil {
		logging.Logger().Error("failed to reload mailbox", "error", err)
	}
	ui.list.Reload()
}

// showNotification displays a message under the toolbar and hides it after a while
func (ui *RootUI) showNotification(message string) {
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(ToastAutoHide, ui.hideNotification)
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	settingsDialog := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	settingsDialog.OnSaved = func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}
	settingsDialog.Show()
}
