package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/corenotes/corenotes/internal/api"
	"github.com/corenotes/corenotes/internal/config"
)

// Endpoint sources, in the order they are tried
const (
	SourceFlag     = "flag"
	SourceProfile  = "profile"
	SourceSettings = "settings"
	SourceDefault  = "default"
)

// settingsReader is the part of config.Settings endpoint resolution reads
type settingsReader interface {
	GetAPIRoot() string
	GetTimeout() time.Duration
	GetLastProfile() string
}

// Endpoint is the API root and timeout the client is built with
type Endpoint struct {
	Root    string
	Timeout time.Duration

	// Profile is the profile the root came from, if any
	Profile string

	// Source tells which of the Source* constants won
	Source string
}

// ResolveEndpoint picks the API root: the --api flag, then the --profile
// entry, then the profile used last time, then the settings value.
// Settings fall back to api.DefaultAPIRoot on their own.
//
// An explicitly requested profile must exist; a remembered one that
// disappeared is skipped.
func ResolveEndpoint(opts Options, settings settingsReader, profiles config.ProfileStore) (Endpoint, error) {
	timeout := settings.GetTimeout()

	if opts.APIRoot != "" {
		return Endpoint{Root: opts.APIRoot, Timeout: timeout, Source: SourceFlag}, nil
	}

	if opts.Profile != "" {
		p, err := profiles.Get(opts.Profile)
		if err != nil {
			return Endpoint{}, err
		}
		return fromProfile(opts.Profile, p, timeout), nil
	}

	if last := settings.GetLastProfile(); last != "" {
		if p, err := profiles.Get(last); err == nil {
			return fromProfile(last, p, timeout), nil
		}
	}

	root := settings.GetAPIRoot()
	source := SourceSettings
	if root == api.DefaultAPIRoot {
		source = SourceDefault
	}
	return Endpoint{Root: root, Timeout: timeout, Source: source}, nil
}

// settingsWriter is the part of config.Settings that remembers the profile
type settingsWriter interface {
	SetLastProfile(name string)
}

// rememberEndpoint keeps the profile for the next start. Any other source
// forgets it, so a root given by flag or settings is not shadowed later.
func rememberEndpoint(settings settingsWriter, endpoint Endpoint) {
	if endpoint.Source == SourceProfile {
		settings.SetLastProfile(endpoint.Profile)
		return
	}
	settings.SetLastProfile("")
}

func fromProfile(name string, p *config.Profile, fallback time.Duration) Endpoint {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = fallback
	}
	return Endpoint{Root: p.APIRoot, Timeout: timeout, Profile: name, Source: SourceProfile}
}

// loadProfiles reads the profiles file; a missing file is an empty store
func loadProfiles(path string) (config.ProfileStore, error) {
	profiles, err := config.LoadProfileStore(path)
	if errors.Is(err, config.ErrProfileStoreNotFound) {
		return config.ProfileStore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profiles from %s: %w", path, err)
	}
	return profiles, nil
}
