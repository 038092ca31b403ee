// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

// Type identifies the connection strategy selected for a configuration.
type Type int

const (
	// TypeUnset is the zero value; no strategy has been resolved.
	TypeUnset Type = iota
	// TypeDataSource connects through a named data source.
	TypeDataSource
	// TypeURL connects through a raw connection URL.
	TypeURL
	// TypeNetworkDriver connects to host and port through a network driver.
	TypeNetworkDriver
	// TypeLocalAlias connects to a locally registered alias.
	TypeLocalAlias
)

// priority is the fixed order in which strategies are tried.
var priority = []Type{TypeDataSource, TypeURL, TypeNetworkDriver, TypeLocalAlias}

// Types returns every resolvable strategy in priority order.
func Types() []Type {
	out := make([]Type, len(priority))
	copy(out, priority)
	return out
}

func (t Type) String() string {
	switch t {
	case TypeDataSource:
		return "data_source"
	case TypeURL:
		return "url"
	case TypeNetworkDriver:
		return "network_driver"
	case TypeLocalAlias:
		return "local_alias"
	default:
		return "unset"
	}
}

// IsSet reports whether t names a resolved strategy.
func (t Type) IsSet() bool { return t != TypeUnset }
