// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

// Drivers registered with database/sql and therefore loadable by the default probe.
import (
	_ "github.com/lib/pq"           // "postgres"
	_ "github.com/mattn/go-sqlite3" // "sqlite3"
)
