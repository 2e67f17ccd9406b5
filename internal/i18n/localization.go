// Package i18n loads the translated UI strings shared by the graphical and
// terminal front ends. Message files are TOML, one per language.
package i18n

import (
	"embed"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/ytget/swipecell/internal/logging"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyEdit            = "edit"
	KeyDone            = "done"
	KeyResetDemo       = "reset_demo"
	KeyRead            = "read"
	KeyUnread          = "unread"
	KeyFlag            = "flag"
	KeyUnflag          = "unflag"
	KeyTrash           = "trash"
	KeyArchive         = "archive"
	KeyHaptics         = "haptics"
	KeyLeftPreset      = "left_preset"
	KeyRightPreset     = "right_preset"
	KeyAnimationSpeed  = "animation_speed"
	KeyLogLevel        = "log_level"
	KeyDatabase        = "database"
	KeyReveal          = "reveal"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyUnreadCount     = "unread_count"
	KeyMessageDeleted  = "message_deleted"
	KeyMessageArchived = "message_archived"
	KeyEmptyInbox      = "empty_inbox"
	KeyError           = "error"
)

// Localization manages UI text translations
type Localization struct {
	bundle          *i18n.Bundle
	localizer       *i18n.Localizer
	currentLanguage string
}

// New loads the embedded message files
func New() *Localization {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		logging.Logger().Error("failed to list locales", "error", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", entry.Name())); err != nil {
			logging.Logger().Error("failed to load locale", "file", entry.Name(), "error", err)
		}
	}

	l := &Localization{bundle: bundle}
	l.SetLanguage("en")
	return l
}

// SetLanguage sets the current language. "system" follows the environment.
// Unsupported languages fall back to the closest match or English.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		lang = systemLanguage()
	}
	matcher := language.NewMatcher(l.bundle.LanguageTags())
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()

	l.currentLanguage = base.String()
	l.localizer = i18n.NewLocalizer(l.bundle, l.currentLanguage)
}

func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		// en_US.UTF-8 -> en-US
		v, _, _ := strings.Cut(os.Getenv(key), ".")
		if v != "" && v != "C" && v != "POSIX" {
			return strings.ReplaceAll(v, "_", "-")
		}
	}
	return "en"
}

// GetText returns localized text for the given key, or the key itself
func (l *Localization) GetText(key string) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return text
}

// GetCount returns the plural form of key for count
func (l *Localization) GetCount(key string, count int) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]int{"Count": count},
	})
	if err != nil {
		return key
	}
	return text
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns the languages with message files
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}
