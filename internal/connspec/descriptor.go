// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Descriptor summarizes how a resolved configuration reaches its target.
type Descriptor struct {
	Type Type
	// Target is the data source name, the URL, or the rendered jdbc URL.
	Target string
	// Driver is empty for the DataSource strategy.
	Driver string
	Host   string
	Port   int
	// Database is the database name, or the alias for LocalAlias.
	Database string
}

// Describe renders the descriptor of cfg for the resolved strategy t. It
// does not validate cfg; call it after Resolve succeeded.
func Describe(cfg Config, t Type) (Descriptor, error) {
	d := Descriptor{Type: t}
	switch t {
	case TypeDataSource:
		d.Target = strings.TrimSpace(cfg.DataSourceName)
	case TypeURL:
		d.Target = strings.TrimSpace(cfg.URL)
		d.Driver = cfg.DriverName
	case TypeNetworkDriver:
		port, err := strconv.Atoi(cfg.Port)
		if err != nil {
			return Descriptor{}, fmt.Errorf("describe %s: %w", t, err)
		}
		d.Driver = cfg.DriverName
		d.Host = strings.TrimSpace(cfg.Host)
		d.Port = port
		d.Database = strings.TrimSpace(cfg.DatabaseName)
		d.Target = fmt.Sprintf("jdbc:%s://%s:%d/%s", strings.TrimSpace(cfg.SubProtocol), d.Host, d.Port, d.Database)
	case TypeLocalAlias:
		d.Driver = cfg.DriverName
		d.Database = strings.TrimSpace(cfg.DatabaseName)
		d.Target = fmt.Sprintf("jdbc:%s:%s", strings.TrimSpace(cfg.SubProtocol), d.Database)
	default:
		return Descriptor{}, fmt.Errorf("describe: strategy %s", t)
	}
	return d, nil
}
