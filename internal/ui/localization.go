package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyReload             = "reload"
	KeySettings           = "settings"
	KeyOpenConfigFolder   = "open_config_folder"
	KeyLanguage           = "language"
	KeySearchPlaceholder  = "search_placeholder"
	KeyNewNote            = "new_note"
	KeyTitlePlaceholder   = "title_placeholder"
	KeyContentPlaceholder = "content_placeholder"
	KeyAdd                = "add"
	KeyFavorites          = "favorites"
	KeyOthers             = "others"
	KeyNoNotes            = "no_notes"
	KeyLoading            = "loading"
	KeyEdit               = "edit"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyDelete             = "delete"
	KeyFavorite           = "favorite"
	KeyDeleteNoteTitle    = "delete_note_title"
	KeyDeleteNoteMessage  = "delete_note_message"
	KeyTitleRequired      = "title_required"
	KeyNoteCreated        = "note_created"
	KeyNoteUpdated        = "note_updated"
	KeyNoteDeleted        = "note_deleted"
	KeyLoadFailed         = "load_failed"
	KeyCreateFailed       = "create_failed"
	KeyUpdateFailed       = "update_failed"
	KeyDeleteFailed       = "delete_failed"
	KeySettingsSaved      = "settings_saved"
	KeyAPIRoot            = "api_root"
	KeyBannerSeconds      = "banner_seconds"
	KeyConfirmDelete      = "confirm_delete"
	KeyRequestTimeout     = "request_timeout"
	KeyInvalidAPIRoot     = "invalid_api_root"
	KeyConnection         = "connection"
	KeyInterface          = "interface"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage guesses the language from the POSIX locale variables.
// Anything unsupported ends up as English.
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(env)
		if len(value) < 2 {
			continue
		}
		switch code := strings.ToLower(value[:2]); code {
		case "en", "pt", "ru":
			return code
		}
		return "en"
	}
	return "en"
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "CoreNotes",
		KeyFile:               "File",
		KeyReload:             "Reload",
		KeySettings:           "Settings",
		KeyOpenConfigFolder:   "Open config folder",
		KeyLanguage:           "Language",
		KeySearchPlaceholder:  "Search notes",
		KeyNewNote:            "New note",
		KeyTitlePlaceholder:   "Title",
		KeyContentPlaceholder: "Take a note...",
		KeyAdd:                "Add",
		KeyFavorites:          "Favorites",
		KeyOthers:             "Others",
		KeyNoNotes:            "No notes yet",
		KeyLoading:            "Loading notes...",
		KeyEdit:               "Edit",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyDelete:             "Delete",
		KeyFavorite:           "Favorite",
		KeyDeleteNoteTitle:    "Delete note",
		KeyDeleteNoteMessage:  "Do you really want to delete this note?",
		KeyTitleRequired:      "Title is required",
		KeyNoteCreated:        "Note created",
		KeyNoteUpdated:        "Note updated",
		KeyNoteDeleted:        "Note deleted",
		KeyLoadFailed:         "Could not load notes",
		KeyCreateFailed:       "Could not create note",
		KeyUpdateFailed:       "Could not update note",
		KeyDeleteFailed:       "Could not delete note",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyAPIRoot:            "API root",
		KeyBannerSeconds:      "Message duration (seconds)",
		KeyConfirmDelete:      "Ask before deleting",
		KeyRequestTimeout:     "Request timeout (seconds)",
		KeyInvalidAPIRoot:     "API root must be an http(s) URL",
		KeyConnection:         "Connection",
		KeyInterface:          "Interface",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "CoreNotes",
		KeyFile:               "Файл",
		KeyReload:             "Обновить",
		KeySettings:           "Настройки",
		KeyOpenConfigFolder:   "Открыть папку настроек",
		KeyLanguage:           "Язык",
		KeySearchPlaceholder:  "Поиск заметок",
		KeyNewNote:            "Новая заметка",
		KeyTitlePlaceholder:   "Заголовок",
		KeyContentPlaceholder: "Текст заметки...",
		KeyAdd:                "Добавить",
		KeyFavorites:          "Избранное",
		KeyOthers:             "Остальные",
		KeyNoNotes:            "Заметок пока нет",
		KeyLoading:            "Загрузка заметок...",
		KeyEdit:               "Изменить",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyDelete:             "Удалить",
		KeyFavorite:           "В избранное",
		KeyDeleteNoteTitle:    "Удаление заметки",
		KeyDeleteNoteMessage:  "Удалить эту заметку?",
		KeyTitleRequired:      "Нужен заголовок",
		KeyNoteCreated:        "Заметка создана",
		KeyNoteUpdated:        "Заметка обновлена",
		KeyNoteDeleted:        "Заметка удалена",
		KeyLoadFailed:         "Не удалось загрузить заметки",
		KeyCreateFailed:       "Не удалось создать заметку",
		KeyUpdateFailed:       "Не удалось обновить заметку",
		KeyDeleteFailed:       "Не удалось удалить заметку",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyAPIRoot:            "Адрес API",
		KeyBannerSeconds:      "Показ сообщений (секунды)",
		KeyConfirmDelete:      "Спрашивать перед удалением",
		KeyRequestTimeout:     "Таймаут запроса (секунды)",
		KeyInvalidAPIRoot:     "Адрес API должен быть http(s) URL",
		KeyConnection:         "Подключение",
		KeyInterface:          "Интерфейс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "CoreNotes",
		KeyFile:               "Arquivo",
		KeyReload:             "Recarregar",
		KeySettings:           "Configurações",
		KeyOpenConfigFolder:   "Abrir pasta de configuração",
		KeyLanguage:           "Idioma",
		KeySearchPlaceholder:  "Pesquisar notas",
		KeyNewNote:            "Nova nota",
		KeyTitlePlaceholder:   "Título",
		KeyContentPlaceholder: "Criar nota...",
		KeyAdd:                "Adicionar",
		KeyFavorites:          "Favoritas",
		KeyOthers:             "Outras",
		KeyNoNotes:            "Nenhuma nota ainda",
		KeyLoading:            "Carregando notas...",
		KeyEdit:               "Editar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyDelete:             "Excluir",
		KeyFavorite:           "Favoritar",
		KeyDeleteNoteTitle:    "Excluir nota",
		KeyDeleteNoteMessage:  "Deseja realmente excluir esta nota?",
		KeyTitleRequired:      "O título é obrigatório",
		KeyNoteCreated:        "Nota criada",
		KeyNoteUpdated:        "Nota atualizada",
		KeyNoteDeleted:        "Nota excluída",
		KeyLoadFailed:         "Não foi possível carregar as notas",
		KeyCreateFailed:       "Não foi possível criar a nota",
		KeyUpdateFailed:       "Não foi possível atualizar a nota",
		KeyDeleteFailed:       "Não foi possível excluir a nota",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyAPIRoot:            "Raiz da API",
		KeyBannerSeconds:      "Duração das mensagens (segundos)",
		KeyConfirmDelete:      "Confirmar antes de excluir",
		KeyRequestTimeout:     "Tempo limite da requisição (segundos)",
		KeyInvalidAPIRoot:     "A raiz da API deve ser uma URL http(s)",
		KeyConnection:         "Conexão",
		KeyInterface:          "Interface",
	}
}
