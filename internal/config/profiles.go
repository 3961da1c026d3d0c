package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/corenotes/corenotes/internal/platform"
)

// ProfilesFileName is the file under platform.ConfigDir holding profiles
const ProfilesFileName = "profiles.yaml"

var ErrProfileStoreNotFound = errors.New("profiles file is not found")
var ErrProfileNotFound = errors.New("profile is not found")
var ErrProfileInvalid = errors.New("profile is invalid")

// ProfileStore is a map from profile name to Profile.
type ProfileStore map[string]*Profile

// Profile names a notes server.
type Profile struct {
	// endpoint of the notes API, e.g. http://localhost:3001/api
	APIRoot string `yaml:"apiRoot"`

	// request timeout; zero keeps the application setting
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Verify Profile
//
// # Return
//
// nil if it is valid. Otherwise, ErrProfileInvalid error.
func (p *Profile) Verify() error {
	u, err := url.Parse(p.APIRoot)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: apiRoot is not URL: %s", ErrProfileInvalid, p.APIRoot)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("%w: timeout is negative", ErrProfileInvalid)
	}
	return nil
}

// DefaultProfilesPath returns ~/.corenotes/profiles.yaml
func DefaultProfilesPath() (string, error) {
	dir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProfilesFileName), nil
}

// LoadProfileStore loads profile store from file.
func LoadProfileStore(path string) (ProfileStore, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrProfileStoreNotFound, path)
		}
		return nil, err
	}
	return Unmarshal(buf)
}

// Unmarshal profile store from yaml in byte array.
func Unmarshal(buf []byte) (ProfileStore, error) {
	ret := ProfileStore{}
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Get returns the named profile after verifying it
func (ps ProfileStore) Get(name string) (*Profile, error) {
	p, ok := ps[name]
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err := p.Verify(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}
	return p, nil
}

// Names returns profile names in sorted order
func (ps ProfileStore) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save profile store to file.
//
// The file is written to a temporary sibling first and renamed into place.
func (ps ProfileStore) Save(path string) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}

	buf, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
