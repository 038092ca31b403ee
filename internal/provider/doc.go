// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package provider implements the dbconn Terraform provider.
//
// Highlights:
//   - Strategy resolution: the provider block selects exactly one of data source,
//     URL, network driver or local alias; ambiguous or incomplete blocks fail at plan.
//   - Configuration: attributes override DBCONN_* environment variables, which
//     override an optional YAML profile_file.
//   - Drivers: driver_name must name a database/sql driver registered in the
//     provider binary (postgres and sqlite3 are built in).
//   - Redaction: admin_password and credentials embedded in URLs never reach
//     diagnostics, logs or state.
package provider
