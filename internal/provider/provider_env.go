// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"os"

	"github.com/devops-wiz/terraform-provider-dbconn/internal/connspec"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// generic readers (HCL over env, then the profile as a last resort)
func readString(s types.String, env string) string {
	if !s.IsNull() && !s.IsUnknown() {
		return s.ValueString()
	}
	if env == "" {
		return ""
	}
	return os.Getenv(env)
}

// readStringWithAliases reads a string preferring the HCL value, then a canonical env var,
// then any number of alias env vars in order.
func readStringWithAliases(s types.String, canonical string, aliases ...string) string {
	if v := readString(s, canonical); v != "" {
		return v
	}
	for _, a := range aliases {
		if a == "" {
			continue
		}
		if v := os.Getenv(a); v != "" {
			return v
		}
	}
	return ""
}

// readSecret keeps an explicitly empty HCL value present. Empty env vars count as unset.
func readSecret(s types.String, canonical string, aliases ...string) connspec.Secret {
	if !s.IsNull() && !s.IsUnknown() {
		return connspec.NewSecret(s.ValueString())
	}
	for _, env := range append([]string{canonical}, aliases...) {
		if v := os.Getenv(env); v != "" {
			return connspec.NewSecret(v)
		}
	}
	return connspec.Secret{}
}

// orProfile returns v unless it is empty.
func orProfile(v, profile string) string {
	if v != "" {
		return v
	}
	return profile
}
