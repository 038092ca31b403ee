// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

// Centralized attribute names used in provider configuration schema and validation.
// Connection attribute names match connspec.Field keys.
const (
	attrDataSource    = "data_source"
	attrDataSourceEnv = "data_source_env"
	attrURL           = "url"
	attrHost          = "host"
	attrPort          = "port"
	attrDatabaseName  = "database_name"
	attrSubProtocol   = "sub_protocol"
	attrDriverName    = "driver_name"
	attrAdminUser     = "admin_user"
	attrAdminPassword = "admin_password"
	attrProfileFile   = "profile_file"
)

// Environment variables read when the matching attribute is not set in HCL.
const (
	envDataSource    = "DBCONN_DATA_SOURCE"
	envURL           = "DBCONN_URL"
	envHost          = "DBCONN_HOST"
	envPort          = "DBCONN_PORT"
	envDatabaseName  = "DBCONN_DATABASE_NAME"
	envSubProtocol   = "DBCONN_SUB_PROTOCOL"
	envDriverName    = "DBCONN_DRIVER_NAME"
	envAdminUser     = "DBCONN_ADMIN_USER"
	envAdminPassword = "DBCONN_ADMIN_PASSWORD"
	envProfileFile   = "DBCONN_PROFILE_FILE"

	// aliases
	envUsernameAlias = "DBCONN_USERNAME"
	envPasswordAlias = "DBCONN_PASSWORD"
)

// providerEnvVars lists every variable deriveResolvedConfig may read.
var providerEnvVars = []string{
	envDataSource, envURL, envHost, envPort, envDatabaseName, envSubProtocol,
	envDriverName, envAdminUser, envAdminPassword, envProfileFile,
	envUsernameAlias, envPasswordAlias,
}
