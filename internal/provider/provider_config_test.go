// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devops-wiz/terraform-provider-dbconn/internal/connspec"
	"github.com/devops-wiz/terraform-provider-dbconn/internal/provider/testhelpers"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_deriveResolvedConfig_env_precedence(t *testing.T) {
	ctx := context.Background()

	t.Run("HCL overrides env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envHost, "env.example.com")

		rc, errs := deriveResolvedConfig(ctx, DBConnProviderModel{})
		require.Empty(t, errs)
		if rc.conn.Host != "env.example.com" {
			t.Fatalf("expected env host, got %q", rc.conn.Host)
		}

		rc, errs = deriveResolvedConfig(ctx, DBConnProviderModel{Host: types.StringValue("hcl.example.com")})
		require.Empty(t, errs)
		if rc.conn.Host != "hcl.example.com" {
			t.Fatalf("expected HCL host, got %q", rc.conn.Host)
		}
	})

	t.Run("canonical over alias", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envUsernameAlias, "alias-user")
		t.Setenv(envPasswordAlias, "alias-pw")

		rc, _ := deriveResolvedConfig(ctx, DBConnProviderModel{})
		assert.Equal(t, "alias-user", rc.conn.AdminUser)
		assert.Equal(t, "alias-pw", rc.conn.AdminPassword.Reveal())

		t.Setenv(envAdminUser, "canon-user")
		t.Setenv(envAdminPassword, "canon-pw")
		rc, _ = deriveResolvedConfig(ctx, DBConnProviderModel{})
		assert.Equal(t, "canon-user", rc.conn.AdminUser)
		assert.Equal(t, "canon-pw", rc.conn.AdminPassword.Reveal())
	})

	t.Run("password presence", func(t *testing.T) {
		clearEnv(t)

		rc, _ := deriveResolvedConfig(ctx, DBConnProviderModel{})
		assert.False(t, rc.conn.AdminPassword.IsSet(), "empty env must count as unset")

		rc, _ = deriveResolvedConfig(ctx, DBConnProviderModel{AdminPassword: types.StringValue("")})
		assert.True(t, rc.conn.AdminPassword.IsSet(), "explicit empty HCL value is present")
		assert.Equal(t, "", rc.conn.AdminPassword.Reveal())
	})

	t.Run("data_source_env from HCL list", func(t *testing.T) {
		clearEnv(t)
		l, d := types.ListValueFrom(ctx, types.StringType, []string{"a=1", "b=2"})
		require.False(t, d.HasError())

		rc, errs := deriveResolvedConfig(ctx, DBConnProviderModel{DataSourceEnv: l})
		require.Empty(t, errs)
		assert.Equal(t, []string{"a=1", "b=2"}, rc.dataSourceEnv)
	})
}

func Test_deriveResolvedConfig_profile(t *testing.T) {
	ctx := context.Background()
	profile := strings.Join([]string{
		`host: profile.example.com`,
		`port: "50000"`,
		`database_name: SAMPLE`,
		`sub_protocol: db2`,
		`driver_name: com.example.db2.Driver`,
		`admin_user: profile-user`,
		`admin_password: profile-pw`,
	}, "\n")

	t.Run("profile fills unset attributes", func(t *testing.T) {
		clearEnv(t)
		p := testhelpers.MustWriteFile(t, "profile.yaml", profile)

		rc, errs := deriveResolvedConfig(ctx, DBConnProviderModel{ProfileFile: types.StringValue(p)})
		require.Empty(t, errs)
		assert.Equal(t, "profile.example.com", rc.conn.Host)
		assert.Equal(t, "50000", rc.conn.Port)
		assert.Equal(t, "profile-user", rc.conn.AdminUser)
		assert.Equal(t, "profile-pw", rc.conn.AdminPassword.Reveal())
		assert.Equal(t, p, rc.profileFile)
	})

	t.Run("env and HCL override profile", func(t *testing.T) {
		clearEnv(t)
		p := testhelpers.MustWriteFile(t, "profile.yaml", profile)
		t.Setenv(envProfileFile, p)
		t.Setenv(envPort, "60000")

		rc, errs := deriveResolvedConfig(ctx, DBConnProviderModel{
			Host:          types.StringValue("hcl.example.com"),
			AdminPassword: types.StringValue("hcl-pw"),
		})
		require.Empty(t, errs)
		assert.Equal(t, "hcl.example.com", rc.conn.Host)
		assert.Equal(t, "60000", rc.conn.Port)
		assert.Equal(t, "SAMPLE", rc.conn.DatabaseName)
		assert.Equal(t, "hcl-pw", rc.conn.AdminPassword.Reveal())
	})

	t.Run("empty profile", func(t *testing.T) {
		clearEnv(t)
		p := testhelpers.MustWriteFile(t, "empty.yaml", "")

		rc, errs := deriveResolvedConfig(ctx, DBConnProviderModel{ProfileFile: types.StringValue(p)})
		require.Empty(t, errs)
		assert.Equal(t, connspec.Config{}, rc.conn)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		clearEnv(t)
		p := testhelpers.MustWriteFile(t, "typo.yaml", "hostname: db.example.com\n")

		_, errs := deriveResolvedConfig(ctx, DBConnProviderModel{ProfileFile: types.StringValue(p)})
		require.Len(t, errs, 1)
		assert.Equal(t, attrProfileFile, errs[0].attr)
		assert.Contains(t, errs[0].detail, "hostname")
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, errs := deriveResolvedConfig(ctx, DBConnProviderModel{ProfileFile: types.StringValue(t.TempDir() + "/absent.yaml")})
		require.Len(t, errs, 1)
		assert.Equal(t, "Invalid Profile File Configuration.", errs[0].summary)
	})

	t.Run("profile supplies data_source_env", func(t *testing.T) {
		clearEnv(t)
		p := testhelpers.MustWriteFile(t, "ds.yaml", "data_source: jdbc/sample\ndata_source_env:\n  - a=1\n")

		rc, errs := deriveResolvedConfig(ctx, DBConnProviderModel{ProfileFile: types.StringValue(p)})
		require.Empty(t, errs)
		assert.Equal(t, "jdbc/sample", rc.conn.DataSourceName)
		assert.Equal(t, []string{"a=1"}, rc.dataSourceEnv)
	})
}

func networkDriverResolved() resolvedConfig {
	return resolvedConfig{conn: connspec.Config{
		Host:          "db.example.com",
		Port:          "50000",
		DatabaseName:  "SAMPLE",
		SubProtocol:   "db2",
		DriverName:    testhelpers.TestDriver,
		AdminUser:     "db2admin",
		AdminPassword: connspec.NewSecret("s3cr3t-pw"),
	}}
}

func Test_validateConnection(t *testing.T) {
	t.Run("resolves and stamps", func(t *testing.T) {
		conn, errs := validateConnection(networkDriverResolved(), testResolver())
		require.Empty(t, errs)
		assert.Equal(t, connspec.TypeNetworkDriver, conn.ResolvedType())
	})

	t.Run("incomplete is a general error", func(t *testing.T) {
		conn, errs := validateConnection(resolvedConfig{}, testResolver())
		require.Len(t, errs, 1)
		assert.False(t, conn.ResolvedType().IsSet())
		assert.Empty(t, errs[0].attr)
		assert.Equal(t, "Incomplete Connection Configuration.", errs[0].summary)
		for _, s := range connspec.Types() {
			assert.Contains(t, errs[0].detail, "* "+s.String()+":")
		}
	})

	t.Run("unregistered driver is reported per strategy", func(t *testing.T) {
		rc := networkDriverResolved()
		rc.conn.DriverName = "org.example.Missing"
		_, errs := validateConnection(rc, testResolver())
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].detail, "org.example.Missing")
	})

	t.Run("data source env allowed with data source", func(t *testing.T) {
		rc := resolvedConfig{conn: connspec.Config{DataSourceName: "jdbc/sample"}, dataSourceEnv: []string{"a=1"}}
		_, errs := validateConnection(rc, testResolver())
		assert.Empty(t, errs)
	})

	t.Run("malformed data source env", func(t *testing.T) {
		rc := resolvedConfig{conn: connspec.Config{DataSourceName: "jdbc/sample"}, dataSourceEnv: []string{"a=1", "=2"}}
		_, errs := validateConnection(rc, testResolver())
		require.Len(t, errs, 1)
		assert.Equal(t, attrDataSourceEnv, errs[0].attr)
		assert.Contains(t, errs[0].detail, "entry 1")
	})

	t.Run("password redacted from detail", func(t *testing.T) {
		rc := networkDriverResolved()
		rc.conn.Port = "s3cr3t-pw"
		_, errs := validateConnection(rc, testResolver())
		require.Len(t, errs, 1)
		assert.Equal(t, attrPort, errs[0].attr)
		assert.NotContains(t, errs[0].detail, "s3cr3t-pw")
		assert.Contains(t, errs[0].detail, "[REDACTED]")
	})
}

func Test_validationErrFromResolve_fallback(t *testing.T) {
	e := validationErrFromResolve(errors.New("boom"))
	assert.Empty(t, e.attr)
	assert.Equal(t, "Invalid Connection Configuration.", e.summary)
	assert.Equal(t, "boom", e.detail)
}

func Test_appendValidationErrs(t *testing.T) {
	var diags diag.Diagnostics
	appendValidationErrs(&diags, []validationErr{
		{summary: "general", detail: "d1"},
		{attr: attrHost, summary: "scoped", detail: "d2"},
	})
	require.Equal(t, 2, diags.ErrorsCount())
	_, general := diags[0].(diag.DiagnosticWithPath)
	assert.False(t, general)
	scoped, ok := diags[1].(diag.DiagnosticWithPath)
	require.True(t, ok)
	assert.True(t, scoped.Path().Equal(path.Root(attrHost)))
}

func Test_sanitizeValidationError(t *testing.T) {
	rc := resolvedConfig{conn: connspec.Config{AdminPassword: connspec.NewSecret("hunter22")}}
	e := sanitizeValidationError(validationErr{
		summary: "bad hunter22",
		detail:  "url jdbc:db2://app:other@h:1/db failed with hunter22",
	}, rc)
	assert.Equal(t, "bad [REDACTED]", e.summary)
	assert.NotContains(t, e.detail, "hunter22")
	assert.NotContains(t, e.detail, "other")
}
