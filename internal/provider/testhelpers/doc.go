// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package testhelpers provides shared testing utilities used across unit and
// acceptance tests.
//
// Intended use:
//   - Unit tests: connection fixtures, profile files and driver probes.
//   - Acceptance tests: HCL rendered from templates under testdata/templates.
//
// Conventions:
//   - Keep dependencies minimal and avoid importing production-only paths.
//   - Never leak secrets in logs, errors, or golden files; always redact.
//
// This package is for test code and is not part of the provider's public API.
package testhelpers
