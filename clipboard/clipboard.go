// Package clipboard copies text to the system clipboard, falling back to the
// OSC52 escape sequence when no clipboard utility is available (SSH, tmux,
// headless Linux).
package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/andareed/siftly-activity/logging"
)

// Copy puts text on the clipboard.
func Copy(text string) error {
	if !sysclip.Unsupported {
		err := sysclip.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes via system clipboard", len(text))
			return nil
		}
		logging.Debugf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	return copyOSC52(text)
}
