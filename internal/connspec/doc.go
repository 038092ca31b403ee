// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package connspec decides which connection strategy a database connection
// configuration describes.
//
// A configuration may describe exactly one of four strategies, tried in this
// fixed priority:
//   - DataSource: a named data source looked up by name.
//   - URL: a raw connection URL plus driver and admin credentials.
//   - NetworkDriver: host, port and database reached through a driver.
//   - LocalAlias: a locally cataloged alias (database name) reached through a driver.
//
// The first strategy whose required fields are all satisfied wins. Fields
// that belong to any other strategy must then be blank, except for the few
// fields two strategies legitimately share. Resolution is a pure function of
// the configuration; nothing here opens a connection.
package connspec
