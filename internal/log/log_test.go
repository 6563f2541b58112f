/*
 * Copyright (c) YugabyteDB, Inc.
 */

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestSetLogLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.NilError(t, SetLogLevel("warn", false))
	assert.Check(t, is.Equal(logrus.WarnLevel, logrus.GetLevel()))

	assert.NilError(t, SetLogLevel("", false))
	assert.Check(t, is.Equal(logrus.InfoLevel, logrus.GetLevel()))

	assert.ErrorContains(t, SetLogLevel("loud", false), "error parsing log level: loud")

	assert.NilError(t, SetLogLevel("error", true))
	assert.Check(t, is.Equal(logrus.DebugLevel, logrus.GetLevel()))
	SetFormatter()
}

func TestSetLogFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	SetFormatter()
	path := filepath.Join(t.TempDir(), "console.log")

	closer := SetLogFile(path)
	logrus.Info("console started\n")
	assert.NilError(t, closer.Close())

	content, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Check(t, is.Equal("console started\n", string(content)))
}
