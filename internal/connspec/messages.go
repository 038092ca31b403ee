// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import "fmt"

// MessageKey names a message template in a Messages catalog.
type MessageKey string

const (
	// MsgMissingField takes the field label.
	MsgMissingField MessageKey = "connspec.missing_field"
	// MsgDriverNotFound takes the driver name.
	MsgDriverNotFound MessageKey = "connspec.driver_not_found"
	// MsgAmbiguous takes the offending field label, the resolved strategy
	// and the label of the field that selected it.
	MsgAmbiguous MessageKey = "connspec.ambiguous"
	// MsgValidateFail takes the joined per strategy messages.
	MsgValidateFail MessageKey = "connspec.validate_fail"
	// MsgMalformedPort takes the field label and the raw value.
	MsgMalformedPort MessageKey = "connspec.malformed_port"
	// MsgMalformedEnvEntry takes the entry index.
	MsgMalformedEnvEntry MessageKey = "connspec.malformed_env_entry"
)

// Messages renders field labels and error text.
type Messages interface {
	Label(f Field) string
	Format(key MessageKey, args ...any) string
}

type catalog struct {
	labels  map[Field]string
	formats map[MessageKey]string
}

// DefaultMessages returns the built-in English catalog.
func DefaultMessages() Messages {
	return catalog{
		labels: map[Field]string{
			FieldDataSourceName: "Data source name",
			FieldURL:            "Connection URL",
			FieldHost:           "Host",
			FieldPort:           "Port",
			FieldDatabaseName:   "Database name",
			FieldSubProtocol:    "Sub-protocol",
			FieldDriverName:     "Driver name",
			FieldAdminUser:      "Admin user",
			FieldAdminPassword:  "Admin password",
		},
		formats: map[MessageKey]string{
			MsgMissingField:      "%s must be set",
			MsgDriverNotFound:    "driver %q is not registered",
			MsgAmbiguous:         "%s must be blank when connecting through %s (selected by %s)",
			MsgValidateFail:      "no connection strategy could be resolved: %s",
			MsgMalformedPort:     "%s %q is not a valid integer",
			MsgMalformedEnvEntry: "entry %d must have the form key=value",
		},
	}
}

func (c catalog) Label(f Field) string {
	if l, ok := c.labels[f]; ok {
		return l
	}
	return f.Key()
}

func (c catalog) Format(key MessageKey, args ...any) string {
	if f, ok := c.formats[key]; ok {
		return fmt.Sprintf(f, args...)
	}
	if len(args) == 0 {
		return string(key)
	}
	return fmt.Sprintf("%s: %v", key, args)
}
