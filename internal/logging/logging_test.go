package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests exercise the facade's public surface in whichever build
// (tagged "logging" or not) the test binary was compiled with. Without
// the tag, every call is a no-op and these just assert nothing panics.
func TestFacadeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		IncrementIndentationLevel()
		Log("hello")
		Logf("value=%d", 42)
		DecrementIndentationLevel()
	})
}

func TestSetLogFilepathEmptyDetaches(t *testing.T) {
	err := SetLogFilepath("")
	assert.NoError(t, err)
}

// TestSetLogFilepathDashRoutesToStderr covers the "-" convention: in the
// "logging"-tagged build it must route to stderr rather than creating a
// file literally named "-"; in the default build it is a no-op that
// succeeds and creates nothing.
func TestSetLogFilepathDashRoutesToStderr(t *testing.T) {
	err := SetLogFilepath("-")
	assert.NoError(t, err)

	_, statErr := os.Stat("-")
	assert.True(t, os.IsNotExist(statErr), `SetLogFilepath("-") must not create a file named "-"`)
}
