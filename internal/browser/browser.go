// Package browser opens movie pages in the system web browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// IMDBURL builds the public IMDb title page for a cross-reference id.
func IMDBURL(imdbID string) string {
	return "https://www.imdb.com/title/" + imdbID
}

// OpenIMDB opens the IMDb page for the given id.
func OpenIMDB(imdbID string) error {
	if imdbID == "" {
		return fmt.Errorf("no IMDb id")
	}
	return Open(IMDBURL(imdbID))
}

// Open launches the system browser for an http(s) URL.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "linux":
		return exec.Command("xdg-open", rawURL).Start()
	case "windows":
		// Use rundll32 instead of cmd /c start to avoid shell interpretation
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
