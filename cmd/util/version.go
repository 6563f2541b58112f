/*
 * Copyright (c) YugaByte, Inc.
 */

package util

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ybVersionPattern = regexp.MustCompile(ybVersionRegex)

// IsYBVersion checks if the given string is a valid YB version string
func IsYBVersion(v string) (bool, error) {
	// After the second dash, a user can add anything, and it will be ignored.
	vParts := strings.Split(v, "-")
	if len(vParts) > 2 {
		v = fmt.Sprintf("%v%v", vParts[0]+"-", vParts[1])
	}
	if !ybVersionPattern.MatchString(v) {
		return false, errors.New("unable to parse YB version strings")
	}
	return true, nil
}
