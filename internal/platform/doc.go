package platform

// Package platform contains OS integration: the per-user config directory and
// opening folders in the system file manager.
