package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// OpenInFileManager opens a directory in the system file manager
func OpenInFileManager(dirPath string) error {
	if _, err := os.Stat(dirPath); err != nil {
		return fmt.Errorf("directory does not exist: %s", dirPath)
	}

	cmd, err := fileManagerCommand(runtime.GOOS, dirPath)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func fileManagerCommand(goos, dirPath string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, dirPath), nil
	case OSWindows:
		return exec.Command(ExplorerCommand, dirPath), nil
	case OSLinux:
		return exec.Command(XDGOpenCommand, dirPath), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
