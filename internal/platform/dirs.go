package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AppDirName is the directory created under the user config dir
const AppDirName = "swipecell"

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsAndroid reports whether the process runs as an Android app
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// GetDataDir returns the directory application data is stored in, creating it if needed
func GetDataDir() (string, error) {
	var dir string
	if files := os.Getenv("FILESDIR"); IsAndroid() && files != "" {
		dir = files
	} else {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user config directory: %w", err)
		}
		dir = filepath.Join(base, AppDirName)
	}

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// RevealCommand returns the command that shows path in the file manager of goos
func RevealCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, "-R", path), nil
	case OSWindows:
		return exec.Command(ExplorerCommand, "/select,", path), nil
	case OSLinux:
		// File selection is not standardized on Linux, open the parent directory
		return exec.Command(XDGOpenCommand, filepath.Dir(path)), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// RevealInFileManager opens the system file manager at path
func RevealInFileManager(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}
	cmd, err := RevealCommand(runtime.GOOS, abs)
	if err != nil {
		return err
	}
	return cmd.Start()
}
