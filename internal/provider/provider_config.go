// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/devops-wiz/terraform-provider-dbconn/internal/connspec"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
)

// configuration derivation (unified) to avoid duplicated parsing across ValidateConfig and Configure
func deriveResolvedConfig(ctx context.Context, data DBConnProviderModel) (resolvedConfig, []validationErr) {
	rc := resolvedConfig{profileFile: readString(data.ProfileFile, envProfileFile)}

	var profile connectionProfile
	if rc.profileFile != "" {
		p, err := loadProfile(rc.profileFile)
		if err != nil {
			return rc, []validationErr{{attr: attrProfileFile, summary: "Invalid Profile File Configuration.", detail: fmt.Sprintf("Could not load the connection profile: %v", err)}}
		}
		profile = p
	}

	rc.conn = connspec.Config{
		DataSourceName: orProfile(readString(data.DataSource, envDataSource), profile.DataSource),
		URL:            orProfile(readString(data.URL, envURL), profile.URL),
		Host:           orProfile(readString(data.Host, envHost), profile.Host),
		Port:           orProfile(readString(data.Port, envPort), profile.Port),
		DatabaseName:   orProfile(readString(data.DatabaseName, envDatabaseName), profile.DatabaseName),
		SubProtocol:    orProfile(readString(data.SubProtocol, envSubProtocol), profile.SubProtocol),
		DriverName:     orProfile(readString(data.DriverName, envDriverName), profile.DriverName),
		AdminUser:      orProfile(readStringWithAliases(data.AdminUser, envAdminUser, envUsernameAlias), profile.AdminUser),
		AdminPassword:  readSecret(data.AdminPassword, envAdminPassword, envPasswordAlias),
	}
	if !rc.conn.AdminPassword.IsSet() && profile.AdminPassword != nil {
		rc.conn.AdminPassword = connspec.NewSecret(*profile.AdminPassword)
	}

	var diags diag.Diagnostics
	env, _ := getKnownStrings(ctx, data.DataSourceEnv, attrDataSourceEnv, &diags)
	if diags.HasError() {
		return rc, []validationErr{{attr: attrDataSourceEnv, summary: "Invalid Data Source Environment Configuration.", detail: "data_source_env must be a list of key=value strings."}}
	}
	if env == nil {
		env = profile.DataSourceEnv
	}
	rc.dataSourceEnv = env
	return rc, nil
}

// validateConnection resolves the connection strategy and checks the data source environment.
func validateConnection(rc resolvedConfig, resolver *connspec.Resolver) (*connspec.Configuration, []validationErr) {
	conn := connspec.NewConfiguration(rc.conn, resolver)
	var errs []validationErr
	if err := conn.Validate(); err != nil {
		errs = append(errs, validationErrFromResolve(err))
	}
	if len(errs) == 0 {
		errs = append(errs, validateDataSourceEnv(rc, conn.ResolvedType())...)
	}

	// Before returning, sanitize any secrets from messages to prevent leakage.
	for i := range errs {
		errs[i] = sanitizeValidationError(errs[i], rc)
	}
	return conn, errs
}

func validateDataSourceEnv(rc resolvedConfig, t connspec.Type) []validationErr {
	if len(rc.dataSourceEnv) == 0 {
		return nil
	}
	if t != connspec.TypeDataSource {
		return []validationErr{{attr: attrDataSourceEnv, summary: fmt.Sprintf("Attribute not allowed with the %s strategy.", t), detail: "Remove 'data_source_env'; it is only used to look up a data source by name."}}
	}
	if _, err := connspec.ParseEnvironment(rc.dataSourceEnv, nil); err != nil {
		return []validationErr{{attr: attrDataSourceEnv, summary: "Invalid Data Source Environment Configuration.", detail: err.Error()}}
	}
	return nil
}

// validationErrFromResolve maps resolver errors onto attributes where a field is known.
func validationErrFromResolve(err error) validationErr {
	var (
		unresolved *connspec.UnresolvableConfigurationError
		ambiguous  *connspec.AmbiguousConfigurationError
		port       *connspec.MalformedPortError
	)
	switch {
	case errors.As(err, &unresolved):
		return validationErr{
			summary: "Incomplete Connection Configuration.",
			detail:  "Set the attributes of exactly one connection strategy. Each strategy failed because:\n" + unresolved.Detail(),
		}
	case errors.As(err, &ambiguous):
		return validationErr{
			attr:    ambiguous.Field.Key(),
			summary: "Conflicting Connection Configuration.",
			detail:  fmt.Sprintf("%s. Remove '%s' or '%s' so that only one connection strategy is configured.", ambiguous.Error(), ambiguous.Field.Key(), ambiguous.ResolvedField.Key()),
		}
	case errors.As(err, &port):
		return validationErr{attr: attrPort, summary: "Invalid Port Configuration.", detail: port.Error()}
	}
	if f, ok := connspec.FieldOf(err); ok {
		return validationErr{attr: f.Key(), summary: "Invalid Connection Configuration.", detail: err.Error()}
	}
	return validationErr{summary: "Invalid Connection Configuration.", detail: err.Error()}
}

// appendValidationErrs adds errs to diags, attribute-scoped when attr is set.
func appendValidationErrs(diags *diag.Diagnostics, errs []validationErr) {
	for _, e := range errs {
		if e.attr == "" {
			diags.AddError(e.summary, e.detail)
			continue
		}
		diags.AddAttributeError(path.Root(e.attr), e.summary, e.detail)
	}
}
