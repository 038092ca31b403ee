// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "strings"

// redactSecretValue replaces a sensitive value with a stable token.
// If the value is empty, it returns the empty string to avoid adding tokens where not needed.
func redactSecretValue(v string) string {
	if v == "" {
		return ""
	}
	return "[REDACTED]"
}

// sanitizeValidationError returns a copy of the given validation error with secrets redacted.
func sanitizeValidationError(e validationErr, rc resolvedConfig) validationErr {
	// Build a mapping of raw -> redacted tokens
	replacements := map[string]string{}

	if pw := rc.conn.AdminPassword.Reveal(); pw != "" {
		replacements[pw] = redactSecretValue(pw)
	}

	summary := e.summary
	detail := e.detail
	for raw, red := range replacements {
		summary = strings.ReplaceAll(summary, raw, red)
		detail = strings.ReplaceAll(detail, raw, red)
	}

	e.summary = RedactSecrets(summary)
	e.detail = RedactSecrets(detail)
	return e
}
