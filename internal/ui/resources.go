package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "corenotes.svg"
)

//go:embed assets/corenotes.svg
var logoSVG []byte

// LogoResource is the application icon, also shown in the header
var LogoResource = fyne.NewStaticResource(AppIcon, logoSVG)

