package clipboard

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/andareed/siftly-activity/logging"
)

var errOSC52Unsupported = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

func copyOSC52(text string) error {
	if !osc52Supported(os.Getenv("TERM"), os.Stdout.Fd()) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errOSC52Unsupported
	}
	if err := writeOSC52(os.Stdout, text); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Sequence(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

func writeOSC52(w io.Writer, text string) error {
	_, err := io.WriteString(w, osc52Sequence(text))
	return err
}

func osc52Supported(term string, fd uintptr) bool {
	if term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
