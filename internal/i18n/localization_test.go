package i18n

import "testing"

func TestLocalizationTexts(t *testing.T) {
	l := New()

	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"en", KeyTrash, "Trash"},
		{"ru", KeyTrash, "Удалить"},
		{"pt", KeyArchive, "Arquivar"},
		{"pt-BR", KeySave, "Salvar"},
		{"de", KeyFlag, "Flag"},
		{"en", "missing_key", "missing_key"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			l.SetLanguage(tt.lang)
			if got := l.GetText(tt.key); got != tt.want {
				t.Errorf("GetText(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLocalizationCurrentLanguage(t *testing.T) {
	l := New()
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("default language = %q, want en", got)
	}

	l.SetLanguage("ru-RU")
	if got := l.GetCurrentLanguage(); got != "ru" {
		t.Errorf("GetCurrentLanguage() = %q, want ru", got)
	}

	l.SetLanguage("xx")
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("unsupported language = %q, want en", got)
	}
}

func TestLocalizationPlurals(t *testing.T) {
	l := New()

	tests := []struct {
		lang  string
		count int
		want  string
	}{
		{"en", 1, "1 unread message"},
		{"en", 0, "0 unread messages"},
		{"en", 7, "7 unread messages"},
		{"ru", 1, "1 непрочитанное письмо"},
		{"ru", 3, "3 непрочитанных письма"},
		{"ru", 5, "5 непрочитанных писем"},
		{"pt", 1, "1 mensagem não lida"},
		{"pt", 4, "4 mensagens não lidas"},
	}

	for _, tt := range tests {
		l.SetLanguage(tt.lang)
		if got := l.GetCount(KeyUnreadCount, tt.count); got != tt.want {
			t.Errorf("%s GetCount(%d) = %q, want %q", tt.lang, tt.count, got, tt.want)
		}
	}
}

func TestAvailableLanguagesHaveMessages(t *testing.T) {
	l := New()
	for code := range l.GetAvailableLanguages() {
		l.SetLanguage(code)
		if got := l.GetCurrentLanguage(); got != code {
			t.Errorf("SetLanguage(%q) selected %q", code, got)
		}
		if got := l.GetText(KeyAppTitle); got == KeyAppTitle {
			t.Errorf("%s has no app title", code)
		}
	}
}
