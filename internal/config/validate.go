// SPDX-License-Identifier: Apache-2.0

package config

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	thresholdRe = regexp.MustCompile(`(?i)^(\d+)\s*(b|kb|mb)?$`)
	versionRe   = regexp.MustCompile(`^(?:\d+\.\d+(?:-f)?|stable|latest)$`)
)

// ValidateBool normalizes the raw value of a boolean option. Only
// case-insensitive "true" and "false" are accepted. The option name appears
// in the error so the user knows which flag or config field is malformed.
//
// The function is pure: it is called eagerly while flags are parsed and
// again lazily when the same option arrives only through the config file.
func ValidateBool(option, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, newValidationError("%s must be true or false, got %q", option, value)
	}
}

// ValidateCodeHardeningThreshold parses a size literal into a byte count.
// Accepted forms are a number with an optional unit among b, kb and mb,
// case-insensitive. A value of 0 is valid and distinct from an unset option.
func ValidateCodeHardeningThreshold(value string) (int64, error) {
	m := thresholdRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, newValidationError(
			"invalid code hardening threshold %q: expected a size such as 200b, 150kb or 1mb", value)
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, newValidationError(
			"invalid code hardening threshold %q: expected a size such as 200b, 150kb or 1mb", value)
	}

	switch strings.ToLower(m[2]) {
	case "kb":
		n *= 1024
	case "mb":
		n *= 1024 * 1024
	}
	return n, nil
}

// ValidatePort parses a port option into an integer and checks its range.
func ValidatePort(value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || port < 1 || port > 65535 {
		return 0, newValidationError("port must be an integer between 1 and 65535, got %q", value)
	}
	return port, nil
}

// ValidateVersion checks the engine version format. Accepted values are
// "stable", "latest" or a major.minor pair with an optional -f suffix,
// e.g. "5.2" or "5.2-f". The check runs after the merge, whichever layer
// supplied the value.
func ValidateVersion(value string) error {
	if !versionRe.MatchString(value) {
		return newValidationError(
			"invalid version %q: expected a version such as 5.2, 5.2-f, stable or latest", value)
	}
	return nil
}
