// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the notes store and renders the search header,
// the creation form, favorite and other note sections, banners and settings.
// All UI strings are localized via Localization.
package ui
