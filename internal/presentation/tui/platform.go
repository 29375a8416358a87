package tui

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// OSOpenCmd allows mocking the open command.
var OSOpenCmd = func(url string) *exec.Cmd {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		cmd = "xdg-open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		cmd = "open"
		args = []string{url}
	default:
		return nil
	}
	return exec.Command(cmd, args...) //nolint:gosec
}

// openBrowser starts the platform opener for an http(s) link.
func openBrowser(link string) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q", link)
	}
	cmd := OSOpenCmd(u.String())
	if cmd == nil {
		return fmt.Errorf("unsupported platform")
	}
	return cmd.Start()
}
