// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

// ConnectionTmplCfg holds the provider attributes rendered by ConnectionTmpl.
// Empty fields are omitted from the provider block.
type ConnectionTmplCfg struct {
	DataSource    string
	DataSourceEnv []string
	URL           string
	Host          string
	Port          string
	DatabaseName  string
	SubProtocol   string
	DriverName    string
	AdminUser     string
	AdminPassword string
	ProfileFile   string

	// DataName is the label of the data.dbconn_connection block.
	DataName string
}
