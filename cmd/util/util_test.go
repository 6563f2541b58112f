/*
 * Copyright (c) YugabyteDB, Inc.
 */

package util

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestIsYBVersion(t *testing.T) {
	for _, v := range []string{"2.20.1.0-b97", "2.20.1.0", "2.21.0.0-custom", "2.20.1.0-b97-x"} {
		ok, err := IsYBVersion(v)
		assert.NilError(t, err, v)
		assert.Check(t, ok, v)
	}
	_, err := IsYBVersion("2.20")
	assert.ErrorContains(t, err, "unable to parse")
}

func TestValidateUUID(t *testing.T) {
	assert.NilError(t, ValidateUUID("uuid", "0b2d3b1e-8c3a-4f4e-9a39-7d5a3c0e6f11"))
	assert.ErrorContains(t, ValidateUUID("backup-uuid", "b-1"),
		`backup-uuid "b-1" is not a valid UUID`)
}

func TestIsEmptyString(t *testing.T) {
	assert.Check(t, IsEmptyString("  "))
	assert.Check(t, !IsEmptyString(" a "))
}

func TestSpinnerProgress(t *testing.T) {
	s := spinner.New(spinner.CharSets[36], time.Millisecond, spinner.WithWriter(io.Discard))
	s.Start()
	defer s.Stop()

	progress := spinnerProgress(s, "Universe upgrade")
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			progress(model.TaskStatus{Title: "Upgrading", Status: "Running", Percent: 42.4})
		}()
	}
	wg.Wait()

	s.Lock()
	suffix := s.Suffix
	s.Unlock()
	assert.Check(t, is.Equal(
		` Universe upgrade: Running [Task "Upgrading" completion percentage: 42%]`, suffix))
}
