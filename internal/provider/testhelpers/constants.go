// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"path/filepath"
)

const (
	// TmplPath defines the base path for template files.
	TmplPath = "./testdata/templates"
	// ConnectionTmpl is the filename for the provider block plus data.dbconn_connection template.
	ConnectionTmpl = "connection.tf.tmpl"

	// TestDriver is a driver name known only to static probes in unit tests.
	TestDriver = "com.example.db2.Driver"
	// SQLiteDriver is registered by github.com/mattn/go-sqlite3.
	SQLiteDriver = "sqlite3"
	// PostgresDriver is registered by github.com/lib/pq.
	PostgresDriver = "postgres"
)

var (
	// ConnectionTmplPath defines the file path for the connection template based on the base template path.
	ConnectionTmplPath = filepath.Join(TmplPath, ConnectionTmpl)
)
