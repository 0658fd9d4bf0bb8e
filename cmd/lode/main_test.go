package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	t.Setenv("LODE_DIR", t.TempDir())
	os.Args = []string{"lode", "version"}

	assert.Equal(t, 0, run())
}

func TestRun_UnknownCommand(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	t.Setenv("LODE_DIR", t.TempDir())
	os.Args = []string{"lode", "definitely-not-a-command"}

	assert.Equal(t, 1, run())
}
