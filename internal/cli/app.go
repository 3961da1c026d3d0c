package cli

import (
	"context"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2/app"

	"github.com/corenotes/corenotes/internal/api"
	"github.com/corenotes/corenotes/internal/config"
	"github.com/corenotes/corenotes/internal/logging"
	"github.com/corenotes/corenotes/internal/notes"
	"github.com/corenotes/corenotes/internal/platform"
	"github.com/corenotes/corenotes/internal/ui"
)

// runApp opens the main window and blocks until it is closed
func runApp(ctx context.Context, opts Options) error {
	logger := logging.NewModuleLogger("cli", "app")
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.LogoResource)

	settings := config.NewSettings(myApp)

	path, err := profilesPath(opts)
	if err != nil {
		return err
	}
	profiles, err := loadProfiles(path)
	if err != nil {
		if opts.Profile != "" {
			return err
		}
		logger.Warn("ignoring unreadable profiles file", "path", path, "error", err)
		profiles = config.ProfileStore{}
	}

	endpoint, err := ResolveEndpoint(opts, settings, profiles)
	if err != nil {
		return err
	}
	logger.Info("using notes API", "root", endpoint.Root, "source", endpoint.Source, "profile", endpoint.Profile)

	client, err := api.NewClient(endpoint.Root, api.WithTimeout(endpoint.Timeout))
	if err != nil {
		return err
	}
	rememberEndpoint(settings, endpoint)

	store := notes.NewService(client)
	window := myApp.NewWindow(AppName)
	root := ui.NewRootUI(window, store, settings)
	defer root.Close()

	if endpoint.Profile != "" {
		watchProfile(ctx, path, endpoint, settings.GetTimeout(), root)
	}

	root.Reload()
	window.ShowAndRun()
	return nil
}

// watchProfile follows edits of the active profile and reconnects when its
// API root or timeout changes
func watchProfile(ctx context.Context, path string, current Endpoint, fallback time.Duration, root *ui.RootUI) {
	logger := logging.NewModuleLogger("cli", "profile-watch")

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		logger.Warn("cannot watch profiles", "path", path, "error", err)
		return
	}

	err := config.WatchProfiles(ctx, path, func(profiles config.ProfileStore, err error) {
		if err != nil {
			logger.Warn("profiles reload failed", "error", err)
			return
		}
		p, err := profiles.Get(current.Profile)
		if err != nil {
			logger.Warn("active profile unusable, keeping endpoint", "profile", current.Profile, "error", err)
			return
		}
		next := fromProfile(current.Profile, p, fallback)
		if next.Root == current.Root && next.Timeout == current.Timeout {
			return
		}
		if err := root.Reconnect(next.Root, next.Timeout); err != nil {
			logger.Error("reconnect failed", "root", next.Root, "error", err)
			return
		}
		current = next
	})
	if err != nil {
		logger.Warn("cannot watch profiles", "path", path, "error", err)
	}
}
