package ui

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/corenotes/corenotes/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	apiRootEntry       *widget.Entry
	bannerSecondsEntry *widget.Entry
	timeoutEntry       *widget.Entry
	confirmDeleteCheck *widget.Check
	languageSelect     *widget.Select

	// label -> language code
	languageCodes map[string]string

	onSaved func(endpointChanged bool)
}

// NewSettingsDialog creates a new settings dialog.
// onSaved runs after the values were stored; endpointChanged reports
// whether the API root or the timeout differ from before.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(endpointChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
		onSaved:       onSaved,
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
	sd.apiRootEntry = widget.NewEntry()
	sd.apiRootEntry.SetPlaceHolder(config.DefaultAPIRoot)
	sd.apiRootEntry.Validator = validateAPIRoot

	sd.bannerSecondsEntry = widget.NewEntry()
	sd.bannerSecondsEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinBannerSeconds, config.MaxBannerSeconds))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinTimeoutSeconds, config.MaxTimeoutSeconds))

	sd.confirmDeleteCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmDelete), nil)

	// System default first, then the languages by code
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		if code != config.DefaultLanguage {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	codes = append([]string{config.DefaultLanguage}, codes...)

	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, options[code])
		sd.languageCodes[options[code]] = code
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(sd.localization.GetText(KeyConnection), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyAPIRoot)),
		sd.apiRootEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabelWithStyle(sd.localization.GetText(KeyInterface), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyBannerSeconds)),
		sd.bannerSecondsEntry,

		sd.confirmDeleteCheck,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiRootEntry.SetText(sd.settings.GetAPIRoot())
	sd.bannerSecondsEntry.SetText(strconv.Itoa(sd.settings.GetBannerSeconds()))
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetTimeoutSeconds()))
	sd.confirmDeleteCheck.SetChecked(sd.settings.GetConfirmDelete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	endpointChanged, err := sd.apply()
	if err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved(endpointChanged)
	}
}

// apply stores the entered values. An invalid API root is rejected and
// nothing else is saved.
func (sd *SettingsDialog) apply() (endpointChanged bool, err error) {
	root := strings.TrimSpace(sd.apiRootEntry.Text)
	if root != "" {
		if err := validateAPIRoot(root); err != nil {
			return false, errors.New(sd.localization.GetText(KeyInvalidAPIRoot))
		}
	}

	oldRoot := sd.settings.GetAPIRoot()
	oldTimeout := sd.settings.GetTimeoutSeconds()

	sd.settings.SetAPIRoot(strings.TrimRight(root, "/"))

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetTimeoutSeconds(seconds)
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.bannerSecondsEntry.Text)); err == nil {
		sd.settings.SetBannerSeconds(seconds)
	}

	sd.settings.SetConfirmDelete(sd.confirmDeleteCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	rootChanged := oldRoot != sd.settings.GetAPIRoot()
	if rootChanged {
		// a root chosen here wins over the profile remembered from the command line
		sd.settings.SetLastProfile("")
	}

	endpointChanged = rootChanged || oldTimeout != sd.settings.GetTimeoutSeconds()
	return endpointChanged, nil
}

// validateAPIRoot accepts empty input (reset to default) and absolute http(s) URLs
func validateAPIRoot(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return errors.New("URL must contain a host")
	}

	return nil
}
