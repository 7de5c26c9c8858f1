package clipboard

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52Sequence(t *testing.T) {
	assert.Equal(t, "\x1b]52;c;aGk=\x07", osc52Sequence("hi"))

	var buf bytes.Buffer
	require.NoError(t, writeOSC52(&buf, "Male: 15.00"))
	assert.Equal(t, osc52Sequence("Male: 15.00"), buf.String())
}

func TestOSC52Supported(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	// a regular file is never a terminal
	assert.False(t, osc52Supported("xterm-256color", f.Fd()))
	assert.False(t, osc52Supported("", f.Fd()))
	assert.False(t, osc52Supported("dumb", f.Fd()))
}
