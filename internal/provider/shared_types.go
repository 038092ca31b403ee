// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"

	"github.com/devops-wiz/terraform-provider-dbconn/internal/connspec"
	"github.com/hashicorp/terraform-plugin-framework/diag"
)

// baseConnection is embedded by data sources that read the configured connection.
type baseConnection struct {
	connection  *connspec.Configuration
	environment map[string]string
}

// configureFrom copies the provider state. It reports whether providerData was usable.
func (b *baseConnection) configureFrom(providerData any, diags *diag.Diagnostics) bool {
	if providerData == nil {
		return false
	}
	p, ok := providerData.(*DBConnProvider)
	if !ok {
		diags.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *DBConnProvider, got: %T. Please report this issue to the provider developers.", providerData),
		)
		return false
	}
	b.connection = p.connection
	b.environment = p.environment
	return true
}
