// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import "strings"

// Secret carries a sensitive value. The zero value is absent; an empty
// string wrapped by NewSecret is present.
type Secret struct {
	value string
	set   bool
}

// NewSecret returns a present secret holding v.
func NewSecret(v string) Secret { return Secret{value: v, set: true} }

// IsSet reports whether the secret was supplied at all.
func (s Secret) IsSet() bool { return s.set }

// Reveal returns the raw value. Callers must not log it.
func (s Secret) Reveal() string { return s.value }

// String never prints the value.
func (s Secret) String() string {
	if !s.set {
		return ""
	}
	return "[REDACTED]"
}

// GoString keeps %#v from leaking the value.
func (s Secret) GoString() string { return s.String() }

// Config is the connection configuration as supplied by the user.
// Blank means empty or whitespace only.
type Config struct {
	// DataSourceName names a data source (DataSource strategy).
	DataSourceName string
	// URL is a raw connection URL (URL strategy).
	URL string
	// Host and Port address the server (NetworkDriver strategy).
	Host string
	Port string
	// DatabaseName is the remote database (NetworkDriver) or the local
	// alias name (LocalAlias).
	DatabaseName string
	// SubProtocol selects the driver dialect, e.g. "db2".
	SubProtocol string
	// DriverName is the registered driver the URL, NetworkDriver and
	// LocalAlias strategies connect through.
	DriverName string

	AdminUser     string
	AdminPassword Secret
}

// Field identifies one configuration field.
type Field int

const (
	FieldDataSourceName Field = iota + 1
	FieldURL
	FieldHost
	FieldPort
	FieldDatabaseName
	FieldSubProtocol
	FieldDriverName
	FieldAdminUser
	FieldAdminPassword
)

var fieldKeys = map[Field]string{
	FieldDataSourceName: "data_source",
	FieldURL:            "url",
	FieldHost:           "host",
	FieldPort:           "port",
	FieldDatabaseName:   "database_name",
	FieldSubProtocol:    "sub_protocol",
	FieldDriverName:     "driver_name",
	FieldAdminUser:      "admin_user",
	FieldAdminPassword:  "admin_password",
}

// Key returns the stable attribute key of the field.
func (f Field) Key() string { return fieldKeys[f] }

func (f Field) String() string { return f.Key() }

// isSecret reports whether the field is compared by presence rather than blankness.
func (f Field) isSecret() bool { return f == FieldAdminPassword }

// value returns the string value of a non secret field.
func (c Config) value(f Field) string {
	switch f {
	case FieldDataSourceName:
		return c.DataSourceName
	case FieldURL:
		return c.URL
	case FieldHost:
		return c.Host
	case FieldPort:
		return c.Port
	case FieldDatabaseName:
		return c.DatabaseName
	case FieldSubProtocol:
		return c.SubProtocol
	case FieldDriverName:
		return c.DriverName
	case FieldAdminUser:
		return c.AdminUser
	default:
		return ""
	}
}

// populated reports whether the field carries a value: non blank for
// strings, present for secrets.
func (c Config) populated(f Field) bool {
	if f.isSecret() {
		return c.AdminPassword.IsSet()
	}
	return !isBlank(c.value(f))
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
