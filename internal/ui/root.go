package ui

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/corenotes/corenotes/internal/api"
	"github.com/corenotes/corenotes/internal/config"
	"github.com/corenotes/corenotes/internal/logging"
	"github.com/corenotes/corenotes/internal/model"
	"github.com/corenotes/corenotes/internal/notes"
	"github.com/corenotes/corenotes/internal/platform"
)

// bannerMessages maps the store's banner prefixes to localization keys
var bannerMessages = []struct {
	prefix string
	key    string
}{
	{notes.MessageLoadFailed, KeyLoadFailed},
	{notes.MessageCreateFailed, KeyCreateFailed},
	{notes.MessageUpdateFailed, KeyUpdateFailed},
	{notes.MessageDeleteFailed, KeyDeleteFailed},
	{notes.MessageCreated, KeyNoteCreated},
	{notes.MessageUpdated, KeyNoteUpdated},
	{notes.MessageDeleted, KeyNoteDeleted},
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        notes.Store
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// runAsync moves store calls off the UI goroutine
	runAsync func(func())

	// Header
	titleText   *canvas.Text
	searchEntry *widget.Entry
	newNoteBtn  *widget.Button
	reloadBtn   *widget.Button
	settingsBtn *widget.Button

	form      *NoteForm
	favorites *NotesSection
	others    *NotesSection
	cards     map[int64]*NoteCard

	// Loading indicator
	loadingContainer *fyne.Container
	loadingLabel     *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationClose     *widget.Button

	bannerMu    sync.Mutex
	bannerTimer *time.Timer
	bannerGen   int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, store notes.Store, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		store:        store,
		settings:     settings,
		localization: localization,
		logger:       logging.NewModuleLogger("ui", "root"),
		ctx:          ctx,
		cancel:       cancel,
		runAsync:     func(f func()) { go f() },
		cards:        make(map[int64]*NoteCard),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LogoResource)

	ui.store.SetUpdateCallback(ui.onStoreEvent)

	ui.setupUI()
	return ui
}

// Close cancels requests still in flight
func (ui *RootUI) Close() {
	ui.cancel()
	ui.bannerMu.Lock()
	if ui.bannerTimer != nil {
		ui.bannerTimer.Stop()
	}
	ui.bannerMu.Unlock()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	logo := canvas.NewImageFromResource(LogoResource)
	logo.SetMinSize(fyne.NewSquareSize(32))
	logo.FillMode = canvas.ImageFillContain

	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), theme.Color(theme.ColorNameForeground))
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.TextSize = 20

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.OnChanged = ui.onSearchChanged

	ui.newNoteBtn = widget.NewButton("", ui.onToggleForm)
	ui.newNoteBtn.Importance = widget.HighImportance

	ui.reloadBtn = widget.NewButton(IconReload, ui.Reload)
	ui.reloadBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(logo, container.NewCenter(ui.titleText)),
		container.NewHBox(ui.newNoteBtn, ui.reloadBtn, ui.settingsBtn),
		ui.searchEntry,
	)

	// Notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationClose = widget.NewButton(IconClose, ui.dismissBanner)
	ui.notificationClose.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, ui.notificationClose, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.loadingLabel = widget.NewLabel("")
	ui.loadingContainer = container.NewBorder(nil, nil, ui.loadingLabel, nil, widget.NewProgressBarInfinite())
	ui.loadingContainer.Hide()

	ui.form = NewNoteForm(ui.localization, ui.onAddNote)

	ui.favorites = NewNotesSection("", "")
	ui.favorites.Hide()
	ui.others = NewNotesSection("", "")

	top := container.NewVBox(header, ui.notificationContainer, ui.loadingContainer, ui.form.Container())
	sections := container.NewVScroll(container.NewVBox(ui.favorites.Container(), ui.others.Container()))

	ui.refreshUITexts()
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, sections))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.Reload)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	configFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenConfigFolder), ui.onOpenConfigFolder)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, configFolderItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()

	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.newNoteBtn.SetText(IconAdd + " " + ui.localization.GetText(KeyNewNote))
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))

	ui.form.RefreshTexts()
	ui.favorites.SetTexts(ui.localization.GetText(KeyFavorites), "")
	ui.others.SetTexts(ui.localization.GetText(KeyOthers), ui.localization.GetText(KeyNoNotes))

	for _, card := range ui.cards {
		card.RefreshTexts()
	}
}

// Reload fetches the list again
func (ui *RootUI) Reload() {
	ui.runAsync(func() {
		err := ui.store.Load(ui.ctx)
		if err != nil && !errors.Is(err, notes.ErrLoadSuperseded) {
			ui.logger.Warn("reload failed", "error", err)
		}
	})
}

// Reconnect points the store at another API root and reloads
func (ui *RootUI) Reconnect(root string, timeout time.Duration) error {
	client, err := api.NewClient(root, api.WithTimeout(timeout))
	if err != nil {
		return err
	}
	ui.logger.Info("switching API root", "root", client.Root())
	ui.store.SetClient(client)
	ui.Reload()
	return nil
}

// onStoreEvent handles state changes published by the store
func (ui *RootUI) onStoreEvent(ev notes.Event) {
	ui.logger.Debug("store event", "kind", ev.Kind, "id", ev.NoteID)
	fyne.Do(func() {
		ui.render(ev)
	})
}

// render updates the widgets affected by ev; must run on the UI goroutine
func (ui *RootUI) render(ev notes.Event) {
	switch ev.Kind {
	case notes.EventState:
		ui.updateLoading()
	case notes.EventBanner:
		ui.showBanner(ui.store.Banner())
	case notes.EventBusy:
		if card, ok := ui.cards[ev.NoteID]; ok {
			card.SetBusy(ui.store.IsBusy(ev.NoteID))
		}
	default:
		ui.refreshNotes()
	}
}

func (ui *RootUI) updateLoading() {
	if ui.store.State().IsBusy() {
		ui.loadingContainer.Show()
		return
	}
	ui.loadingContainer.Hide()
}

// refreshNotes syncs cards with the store and fills both sections
func (ui *RootUI) refreshNotes() {
	present := make(map[int64]struct{})
	for _, note := range ui.store.Notes() {
		present[note.ID] = struct{}{}
		card, ok := ui.cards[note.ID]
		if !ok {
			ui.cards[note.ID] = ui.newCard(note)
			continue
		}
		if card.Note() != note {
			card.UpdateNote(note)
		}
	}
	for id := range ui.cards {
		if _, ok := present[id]; !ok {
			delete(ui.cards, id)
		}
	}

	view := ui.store.Visible()
	ui.favorites.SetCards(ui.cardsFor(view.Favorites))
	if len(view.Favorites) > 0 {
		ui.favorites.Show()
	} else {
		ui.favorites.Hide()
	}
	ui.others.SetCards(ui.cardsFor(view.Others))
}

func (ui *RootUI) newCard(note model.Note) *NoteCard {
	card := NewNoteCard(note, ui.localization)
	card.SetBusy(ui.store.IsBusy(note.ID))
	card.SetCallbacks(
		ui.onToggleFavorite,
		ui.onChangeColor,
		ui.onSaveNote,
		ui.onDeleteNote,
	)
	return card
}

func (ui *RootUI) cardsFor(list []model.Note) []*NoteCard {
	cards := make([]*NoteCard, 0, len(list))
	for _, note := range list {
		if card, ok := ui.cards[note.ID]; ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// onSearchChanged re-filters on every keystroke
func (ui *RootUI) onSearchChanged(term string) {
	ui.store.SetSearch(term)
}

// onToggleForm opens or closes the creation form
func (ui *RootUI) onToggleForm() {
	ui.form.Toggle()
}

// onAddNote validates locally, then creates the note
func (ui *RootUI) onAddNote(draft model.NoteDraft) {
	if err := draft.Validate(); err != nil {
		ui.showBanner(model.Banner{Kind: model.BannerError, Message: ui.localization.GetText(KeyTitleRequired)})
		return
	}

	ui.form.SetBusy(true)
	ui.runAsync(func() {
		_, err := ui.store.Create(ui.ctx, draft)
		fyne.Do(func() {
			ui.form.SetBusy(false)
			if err != nil {
				ui.logger.Warn("create failed", "error", err)
				return
			}
			ui.form.Reset()
			ui.form.Hide()
		})
	})
}

func (ui *RootUI) onToggleFavorite(id int64) {
	ui.runAsync(func() {
		if _, err := ui.store.ToggleFavorite(ui.ctx, id); err != nil {
			ui.logger.Warn("toggle favorite failed", "id", id, "error", err)
		}
	})
}

func (ui *RootUI) onChangeColor(id int64, color string) {
	ui.runAsync(func() {
		if _, err := ui.store.SetColor(ui.ctx, id, color); err != nil {
			ui.logger.Warn("set color failed", "id", id, "color", color, "error", err)
		}
	})
}

// onSaveNote commits an inline edit; the editor stays open when it fails
func (ui *RootUI) onSaveNote(id int64, title, content string) {
	if strings.TrimSpace(title) == "" {
		ui.showBanner(model.Banner{Kind: model.BannerError, Message: ui.localization.GetText(KeyTitleRequired)})
		return
	}

	ui.runAsync(func() {
		if _, err := ui.store.Edit(ui.ctx, id, title, content); err != nil {
			ui.logger.Warn("edit failed", "id", id, "error", err)
			return
		}
		fyne.Do(func() {
			if card, ok := ui.cards[id]; ok {
				card.SetEditing(false)
			}
		})
	})
}

// onDeleteNote asks for confirmation unless disabled in settings
func (ui *RootUI) onDeleteNote(id int64) {
	if !ui.settings.GetConfirmDelete() {
		ui.deleteNote(id)
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteNoteTitle),
		ui.localization.GetText(KeyDeleteNoteMessage),
		func(confirmed bool) {
			if confirmed {
				ui.deleteNote(id)
			}
		},
		ui.window,
	)
}

func (ui *RootUI) deleteNote(id int64) {
	ui.runAsync(func() {
		if err := ui.store.Delete(ui.ctx, id); err != nil {
			ui.logger.Warn("delete failed", "id", id, "error", err)
		}
	})
}

// showBanner displays a message in the notification panel under the header.
// It hides itself after the configured duration.
func (ui *RootUI) showBanner(banner model.Banner) {
	if banner.IsZero() {
		ui.hideBanner()
		return
	}

	ui.notificationLabel.SetText(ui.localizeBanner(banner.Message))
	if banner.Kind == model.BannerError {
		ui.notificationLabel.Importance = widget.DangerImportance
	} else {
		ui.notificationLabel.Importance = widget.SuccessImportance
	}
	ui.notificationLabel.Refresh()
	ui.notificationContainer.Show()

	ui.bannerMu.Lock()
	defer ui.bannerMu.Unlock()
	ui.bannerGen++
	gen := ui.bannerGen
	if ui.bannerTimer != nil {
		ui.bannerTimer.Stop()
	}
	ui.bannerTimer = time.AfterFunc(ui.bannerDuration(), func() {
		fyne.Do(func() {
			ui.bannerMu.Lock()
			current := ui.bannerGen == gen
			ui.bannerMu.Unlock()
			if current {
				ui.dismissBanner()
			}
		})
	})
}

// hideBanner hides the notification panel
func (ui *RootUI) hideBanner() {
	ui.notificationContainer.Hide()
}

// dismissBanner hides the panel and clears the store's banner
func (ui *RootUI) dismissBanner() {
	ui.hideBanner()
	ui.store.DismissBanner()
}

func (ui *RootUI) bannerDuration() time.Duration {
	if ui.settings == nil {
		return DefaultBannerAutoHide
	}
	return ui.settings.GetBannerDuration()
}

// localizeBanner translates the store's English prefix, keeping the cause
func (ui *RootUI) localizeBanner(message string) string {
	for _, m := range bannerMessages {
		if strings.HasPrefix(message, m.prefix) {
			return ui.localization.GetText(m.key) + message[len(m.prefix):]
		}
	}
	return message
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)
	sd.Show()
}

func (ui *RootUI) onSettingsSaved(endpointChanged bool) {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	if endpointChanged {
		if err := ui.Reconnect(ui.settings.GetAPIRoot(), ui.settings.GetTimeout()); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
	}
	ui.showBanner(model.Banner{Kind: model.BannerSuccess, Message: ui.localization.GetText(KeySettingsSaved)})
}

// onOpenConfigFolder reveals ~/.corenotes in the file manager
func (ui *RootUI) onOpenConfigFolder() {
	dir, err := platform.ConfigDir()
	if err == nil {
		err = platform.CreateDirectoryIfNotExists(dir)
	}
	if err == nil {
		err = platform.OpenInFileManager(dir)
	}
	if err != nil {
		ui.logger.Error("failed to open config folder", "error", err)
		dialog.ShowError(err, ui.window)
	}
}
