package patlog

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// LogDirectory returns the conventional per-user log directory for an
// application, creating it if needed:
//
//   - Windows: %LOCALAPPDATA%\<app>\logs
//   - macOS:   ~/Library/Logs/<app>
//   - other:   $XDG_STATE_HOME/<app>/logs, else ~/.local/state/<app>/logs
//
// If no home directory can be determined it falls back to "logs"
// under the working directory.
func LogDirectory(app string) (string, error) {
	dir := platformLogDirectory(app)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func platformLogDirectory(app string) string {
	switch runtime.GOOS {
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, app, "logs")
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "AppData", "Local", app, "logs")
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Logs", app)
		}
	default:
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, app, "logs")
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "state", app, "logs")
		}
	}
	return "logs"
}

// TimestampedLogFile returns a path for filename inside a run-scoped
// subdirectory of baseDir named after the current local time, e.g.
// baseDir/2026-08-29_14-03-07/app.log. The directory is created; on
// failure the file lands in baseDir itself.
func TimestampedLogFile(baseDir, filename string) string {
	stamp := time.Now().Format("2006-01-02_15-04-05")
	dir := filepath.Join(baseDir, stamp)
	if err := os.MkdirAll(dir, 0755); err == nil {
		return filepath.Join(dir, filename)
	}
	if err := os.MkdirAll(baseDir, 0755); err == nil {
		return filepath.Join(baseDir, filename)
	}
	return filename
}
