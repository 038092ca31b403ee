// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "github.com/devops-wiz/terraform-provider-dbconn/internal/connspec"

// validationErr captures a configuration validation error and optional attribute path.
type validationErr struct {
	attr    string // empty for general error
	summary string
	detail  string
}

// resolvedConfig contains the connection configuration merged from HCL, env and profile.
type resolvedConfig struct {
	conn          connspec.Config
	dataSourceEnv []string
	profileFile   string
}
