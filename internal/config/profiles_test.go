package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfiles = `
local:
  apiRoot: http://localhost:3001/api
staging:
  apiRoot: https://notes.staging.example.com/api
  timeout: 30s
broken:
  apiRoot: not-a-url
`

func TestUnmarshal(t *testing.T) {
	store, err := Unmarshal([]byte(sampleProfiles))
	require.NoError(t, err)

	assert.Equal(t, []string{"broken", "local", "staging"}, store.Names())
	assert.Equal(t, "http://localhost:3001/api", store["local"].APIRoot)
	assert.Equal(t, time.Duration(0), store["local"].Timeout)
	assert.Equal(t, 30*time.Second, store["staging"].Timeout)
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, err := Unmarshal([]byte("local: [unterminated"))
	assert.Error(t, err)
}

func TestProfileStore_Get(t *testing.T) {
	store, err := Unmarshal([]byte(sampleProfiles))
	require.NoError(t, err)

	p, err := store.Get("staging")
	require.NoError(t, err)
	assert.Equal(t, "https://notes.staging.example.com/api", p.APIRoot)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = store.Get("broken")
	assert.ErrorIs(t, err, ErrProfileInvalid)
}

func TestProfile_Verify(t *testing.T) {
	tests := []struct {
		profile Profile
		valid   bool
	}{
		{Profile{APIRoot: "http://localhost:3001/api"}, true},
		{Profile{APIRoot: "https://example.com", Timeout: time.Second}, true},
		{Profile{APIRoot: ""}, false},
		{Profile{APIRoot: "/api"}, false},
		{Profile{APIRoot: "http://localhost", Timeout: -time.Second}, false},
	}

	for _, test := range tests {
		err := test.profile.Verify()
		if test.valid {
			assert.NoError(t, err, "profile %+v", test.profile)
		} else {
			assert.ErrorIs(t, err, ErrProfileInvalid, "profile %+v", test.profile)
		}
	}
}

func TestLoadProfileStore(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfileStore(filepath.Join(t.TempDir(), "profiles.yaml"))
		assert.ErrorIs(t, err, ErrProfileStoreNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "profiles.yaml")
		store := ProfileStore{
			"local": {APIRoot: "http://localhost:3001/api"},
			"prod":  {APIRoot: "https://notes.example.com/api", Timeout: 15 * time.Second},
		}
		require.NoError(t, store.Save(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		loaded, err := LoadProfileStore(path)
		require.NoError(t, err)
		assert.Equal(t, store, loaded)
	})
}

func TestDefaultProfilesPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := DefaultProfilesPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".corenotes", ProfilesFileName), path)
}

func TestWatchProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProfilesFileName)
	require.NoError(t, ProfileStore{"local": {APIRoot: "http://localhost:3001/api"}}.Save(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan ProfileStore, 8)
	require.NoError(t, WatchProfiles(ctx, path, func(store ProfileStore, err error) {
		if err == nil {
			changes <- store
		}
	}))

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0600))

	updated := ProfileStore{"local": {APIRoot: "http://127.0.0.1:4000/api"}}
	require.NoError(t, updated.Save(path))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case store := <-changes:
			if p, ok := store["local"]; ok && p.APIRoot == "http://127.0.0.1:4000/api" {
				return
			}
		case <-deadline:
			t.Fatal("profile change was not observed")
		}
	}
}
