package sink

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// openURL hands the URL to the platform opener so the application
// registered for its scheme picks it up.
func openURL(rawURL string, dryRun bool) error {
	if dryRun {
		return nil
	}
	return runCommand(openerCommand(), rawURL)
}

func openerCommand() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
