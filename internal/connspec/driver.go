// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import (
	"database/sql"
	"slices"
)

// DriverProbe reports whether a named driver can be loaded in this process.
type DriverProbe interface {
	CanLoadDriver(name string) bool
}

// DriverProbeFunc adapts a function to DriverProbe.
type DriverProbeFunc func(name string) bool

func (f DriverProbeFunc) CanLoadDriver(name string) bool { return f(name) }

// RegisteredDrivers probes the database/sql driver registry. Drivers are
// loadable once their package has been imported and registered itself.
func RegisteredDrivers() DriverProbe {
	return DriverProbeFunc(func(name string) bool {
		return slices.Contains(sql.Drivers(), name)
	})
}

// StaticDrivers returns a probe that knows exactly the given names.
func StaticDrivers(names ...string) DriverProbe {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}
	return DriverProbeFunc(func(name string) bool {
		_, ok := known[name]
		return ok
	})
}
