// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

// checker describes one strategy: the fields it requires, the fields it owns
// exclusively, and whether its driver must be loadable.
type checker struct {
	typ Type
	// key is the field whose presence selects the strategy.
	key Field
	// required is checked in order; the first failure is reported.
	required []Field
	// owned must be blank when another strategy resolved, minus exemptions.
	owned []Field
	// pairedCredentials requires admin user and password together or not at all.
	pairedCredentials bool
	needsDriver       bool
}

var checkers = map[Type]checker{
	TypeDataSource: {
		typ:               TypeDataSource,
		key:               FieldDataSourceName,
		required:          []Field{FieldDataSourceName},
		owned:             []Field{FieldDataSourceName},
		pairedCredentials: true,
	},
	TypeURL: {
		typ:         TypeURL,
		key:         FieldURL,
		required:    []Field{FieldURL, FieldAdminUser, FieldAdminPassword, FieldDriverName},
		owned:       []Field{FieldURL, FieldDriverName},
		needsDriver: true,
	},
	TypeNetworkDriver: {
		typ: TypeNetworkDriver,
		key: FieldHost,
		required: []Field{
			FieldHost, FieldPort, FieldAdminUser, FieldAdminPassword,
			FieldDriverName, FieldDatabaseName, FieldSubProtocol,
		},
		owned:       []Field{FieldDatabaseName, FieldSubProtocol, FieldDriverName, FieldHost, FieldPort},
		needsDriver: true,
	},
	TypeLocalAlias: {
		typ: TypeLocalAlias,
		key: FieldDatabaseName,
		required: []Field{
			FieldDatabaseName, FieldAdminUser, FieldAdminPassword,
			FieldDriverName, FieldSubProtocol,
		},
		owned:       []Field{FieldDatabaseName, FieldSubProtocol, FieldDriverName},
		needsDriver: true,
	},
}

// exemption is a field legitimately shared by the resolved strategy and another one.
type exemption struct {
	resolved Type
	other    Type
	field    Field
}

var exemptions = map[exemption]struct{}{
	{TypeNetworkDriver, TypeLocalAlias, FieldDriverName}:   {},
	{TypeNetworkDriver, TypeLocalAlias, FieldDatabaseName}: {},
	{TypeNetworkDriver, TypeLocalAlias, FieldSubProtocol}:  {},
	{TypeLocalAlias, TypeNetworkDriver, FieldDriverName}:   {},
	{TypeLocalAlias, TypeNetworkDriver, FieldDatabaseName}: {},
	{TypeLocalAlias, TypeNetworkDriver, FieldSubProtocol}:  {},
	{TypeURL, TypeNetworkDriver, FieldDriverName}:          {},
	{TypeURL, TypeLocalAlias, FieldDriverName}:             {},
	{TypeNetworkDriver, TypeURL, FieldDriverName}:          {},
	{TypeLocalAlias, TypeURL, FieldDriverName}:             {},
}

func exempt(resolved, other Type, f Field) bool {
	_, ok := exemptions[exemption{resolved: resolved, other: other, field: f}]
	return ok
}

// checkRequired returns the first missing field or unloadable driver.
func (r *Resolver) checkRequired(c checker, cfg Config) error {
	for _, f := range c.required {
		if !cfg.populated(f) {
			return r.missing(c.typ, f)
		}
	}
	if c.pairedCredentials {
		switch user, pass := cfg.populated(FieldAdminUser), cfg.populated(FieldAdminPassword); {
		case user && !pass:
			return r.missing(c.typ, FieldAdminPassword)
		case pass && !user:
			return r.missing(c.typ, FieldAdminUser)
		}
	}
	if c.needsDriver && !r.probe.CanLoadDriver(cfg.DriverName) {
		return &UnloadableDriverError{
			Strategy: c.typ,
			Driver:   cfg.DriverName,
			Err:      ErrDriverNotRegistered,
			msg:      r.messages.Format(MsgDriverNotFound, cfg.DriverName),
		}
	}
	return nil
}

// checkEmpty asserts that c's owned fields are blank now that resolved won.
func (r *Resolver) checkEmpty(c checker, resolved checker, cfg Config) error {
	for _, f := range c.owned {
		if exempt(resolved.typ, c.typ, f) || !cfg.populated(f) {
			continue
		}
		return &AmbiguousConfigurationError{
			Field:         f,
			Label:         r.messages.Label(f),
			Resolved:      resolved.typ,
			ResolvedField: resolved.key,
			msg:           r.messages.Format(MsgAmbiguous, r.messages.Label(f), resolved.typ, r.messages.Label(resolved.key)),
		}
	}
	return nil
}

func (r *Resolver) missing(t Type, f Field) error {
	label := r.messages.Label(f)
	return &MissingFieldError{
		Strategy: t,
		Field:    f,
		Label:    label,
		msg:      r.messages.Format(MsgMissingField, label),
	}
}
