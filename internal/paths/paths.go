package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "iconset"
	ConfigFileName = "iconset-config.json"
	LogFileName    = "iconset.log"
	DirPerm        = 0755
	FilePerm       = 0644

	// ManifestFileName is the Xcode asset-catalog manifest written next
	// to the icons when the manifest option is enabled.
	ManifestFileName = "Contents.json"

	// DefaultOutputDir is the Flutter project's iOS asset catalog, the
	// location the icons are expected to land in.
	DefaultOutputDir = "ios/Runner/Assets.xcassets/AppIcon.appiconset"

	// DefaultSourcePath is the artwork the resize command resamples when
	// no other source is configured.
	DefaultSourcePath = "icon/bond_to_ten_icon_167x167.png"
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for iconset:
//   - Windows: %APPDATA%\iconset
//   - Unix:    ~/.config/iconset
//
// Falls back to os.TempDir()/iconset if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
