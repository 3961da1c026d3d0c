package model

// LoadState represents the state of the notes list fetch
type LoadState string

const (
	// LoadStateIdle means nothing was requested yet
	LoadStateIdle LoadState = "Idle"

	// LoadStateLoading means the list request is in flight
	LoadStateLoading LoadState = "Loading"

	// LoadStateReady means the list was fetched successfully
	LoadStateReady LoadState = "Ready"

	// LoadStateFailed means the last fetch failed
	LoadStateFailed LoadState = "Failed"
)

// String returns the string representation of LoadState
func (ls LoadState) String() string {
	return string(ls)
}

// IsBusy returns true while a fetch is in flight
func (ls LoadState) IsBusy() bool {
	return ls == LoadStateLoading
}

// BannerKind tells the UI how to style a banner
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is a short message shown under the header for a limited time
type Banner struct {
	Kind    BannerKind
	Message string
}

// IsZero reports whether there is no banner to show
func (b Banner) IsZero() bool {
	return b.Message == ""
}
