// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Tiny mapping helpers to reduce verbosity in map-to-state code.
func stringOrNull(s string) types.String {
	if s != "" {
		return types.StringValue(s)
	}
	return types.StringNull()
}

func int64OrNull(v int64) types.Int64 {
	if v != 0 {
		return types.Int64Value(v)
	}
	return types.Int64Null()
}

// listHasUnknown reports if the list itself or any of its elements are unknown.
func listHasUnknown(l types.List) bool {
	if l.IsUnknown() {
		return true
	}
	elems := l.Elements()
	for i := range elems {
		if elems[i].IsUnknown() {
			return true
		}
	}
	return false
}

// getKnownStrings parses a Terraform list of strings into a Go slice.
// Returns (nil, true) if the list or any of its elements are unknown at plan time, so the caller can defer evaluation.
// On conversion failures with known values, records an attribute-scoped error and returns (nil, false).
func getKnownStrings(ctx context.Context, l types.List, attr string, diags *diag.Diagnostics) (vals []string, deferEval bool) {
	if l.IsNull() {
		return nil, false
	}
	if listHasUnknown(l) {
		return nil, true
	}
	vals = make([]string, len(l.Elements()))
	if d := l.ElementsAs(ctx, &vals, false); d.HasError() {
		diags.AddAttributeError(
			path.Root(attr),
			fmt.Sprintf("Invalid %s list", attr),
			fmt.Sprintf("Failed to read '%s' as a list of strings. Ensure all elements are known and of type string.", attr),
		)
		diags.Append(d...)
		return nil, false
	}
	return vals, false
}
