// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"regexp"

	"github.com/devops-wiz/terraform-provider-dbconn/internal/connspec"
	"github.com/hashicorp/terraform-plugin-framework-validators/listvalidator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure DBConnProvider satisfies various provider interfaces.
var _ provider.Provider = &DBConnProvider{}
var _ provider.ProviderWithValidateConfig = &DBConnProvider{}

// DBConnProvider defines the provider implementation.
type DBConnProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
	// resolver picks the connection strategy.
	resolver *connspec.Resolver
	// connection is the validated configuration, set by Configure.
	connection *connspec.Configuration
	// environment holds the parsed data_source_env entries.
	environment map[string]string
}

// DBConnProviderModel describes the provider data model.
type DBConnProviderModel struct {
	// Data source strategy
	DataSource    types.String `tfsdk:"data_source"`
	DataSourceEnv types.List   `tfsdk:"data_source_env"`

	// URL strategy
	URL types.String `tfsdk:"url"`

	// Network driver and local alias strategies
	Host         types.String `tfsdk:"host"`
	Port         types.String `tfsdk:"port"`
	DatabaseName types.String `tfsdk:"database_name"`
	SubProtocol  types.String `tfsdk:"sub_protocol"`
	DriverName   types.String `tfsdk:"driver_name"`

	// Credentials
	AdminUser     types.String `tfsdk:"admin_user"`
	AdminPassword types.String `tfsdk:"admin_password"`

	ProfileFile types.String `tfsdk:"profile_file"`
}

// hasUnknown reports whether any attribute is unknown at plan time.
func (m DBConnProviderModel) hasUnknown() bool {
	for _, s := range []types.String{m.DataSource, m.URL, m.Host, m.Port, m.DatabaseName, m.SubProtocol, m.DriverName, m.AdminUser, m.AdminPassword, m.ProfileFile} {
		if s.IsUnknown() {
			return true
		}
	}
	return listHasUnknown(m.DataSourceEnv)
}

func (p *DBConnProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "dbconn"
	resp.Version = p.version
}

func (p *DBConnProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Validates a database connection configuration and resolves exactly one connection strategy: " +
			"a named data source, a raw URL, a network-addressed driver, or a locally registered alias.",
		Attributes: map[string]schema.Attribute{
			attrDataSource: schema.StringAttribute{
				MarkdownDescription: "Name of a data source registered in a naming context. Selects the data source strategy. Env: `DBCONN_DATA_SOURCE`.",
				Optional:            true,
			},
			attrDataSourceEnv: schema.ListAttribute{
				MarkdownDescription: "`key=value` entries of the naming context used to look up `data_source`. Only valid with the data source strategy.",
				ElementType:         types.StringType,
				Optional:            true,
				Validators: []validator.List{
					listvalidator.UniqueValues(),
					listvalidator.ValueStringsAre(stringvalidator.RegexMatches(regexp.MustCompile(`^[^=]+=`), "each entry must have the form key=value")),
				},
			},
			attrURL: schema.StringAttribute{
				MarkdownDescription: "Raw connection URL, e.g. `jdbc:db2://db.example.com:50000/SAMPLE`. Selects the URL strategy together with `driver_name`. Env: `DBCONN_URL`.",
				Optional:            true,
			},
			attrHost: schema.StringAttribute{
				MarkdownDescription: "Database host. Selects the network driver strategy. Env: `DBCONN_HOST`.",
				Optional:            true,
			},
			attrPort: schema.StringAttribute{
				MarkdownDescription: "Database port. Must be an integer when set. Env: `DBCONN_PORT`.",
				Optional:            true,
			},
			attrDatabaseName: schema.StringAttribute{
				MarkdownDescription: "Database name, or the local alias when no host is set. Env: `DBCONN_DATABASE_NAME`.",
				Optional:            true,
			},
			attrSubProtocol: schema.StringAttribute{
				MarkdownDescription: "Driver sub-protocol such as `db2`. Env: `DBCONN_SUB_PROTOCOL`.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.RegexMatches(regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)?$`), "sub_protocol must start with a letter and contain only letters and digits."),
				},
			},
			attrDriverName: schema.StringAttribute{
				MarkdownDescription: "Name of a registered `database/sql` driver. Env: `DBCONN_DRIVER_NAME`.",
				Optional:            true,
			},
			attrAdminUser: schema.StringAttribute{
				MarkdownDescription: "Administrative user. Env: `DBCONN_ADMIN_USER` (alias `DBCONN_USERNAME`).",
				Optional:            true,
			},
			attrAdminPassword: schema.StringAttribute{
				MarkdownDescription: "Administrative password. Env: `DBCONN_ADMIN_PASSWORD` (alias `DBCONN_PASSWORD`).",
				Optional:            true,
				Sensitive:           true,
			},
			attrProfileFile: schema.StringAttribute{
				MarkdownDescription: "Path to a YAML connection profile supplying defaults for any attribute above. Env: `DBCONN_PROFILE_FILE`.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
		},
	}
}

func (p *DBConnProvider) ValidateConfig(ctx context.Context, req provider.ValidateConfigRequest, resp *provider.ValidateConfigResponse) {
	var data DBConnProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if data.hasUnknown() {
		tflog.Debug(ctx, "connection validation deferred until all values are known")
		return
	}

	rc, errs := deriveResolvedConfig(ctx, data)
	if len(errs) == 0 {
		_, errs = validateConnection(rc, p.resolver)
	}
	appendValidationErrs(&resp.Diagnostics, errs)
}

func (p *DBConnProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data DBConnProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx = tflog.MaskFieldValuesWithFieldKeys(ctx, attrAdminPassword)

	rc, errs := deriveResolvedConfig(ctx, data)
	var conn *connspec.Configuration
	if len(errs) == 0 {
		conn, errs = validateConnection(rc, p.resolver)
	}
	if len(errs) > 0 {
		appendValidationErrs(&resp.Diagnostics, errs)
		return
	}

	env, err := connspec.ParseEnvironment(rc.dataSourceEnv, nil)
	if err != nil {
		resp.Diagnostics.AddError("Invalid Data Source Environment Configuration.", RedactSecrets(err.Error()))
		return
	}

	ctx = tflog.SetField(ctx, "strategy", conn.ResolvedType().String())
	tflog.Debug(ctx, "connection strategy resolved", map[string]interface{}{
		"profile_file": rc.profileFile,
		"env_entries":  len(env),
	})

	p.connection = conn
	p.environment = env

	resp.DataSourceData = p
}

func (p *DBConnProvider) Resources(_ context.Context) []func() resource.Resource {
	return nil
}

func (p *DBConnProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewConnectionDataSource,
	}
}

// New returns a provider factory probing the database/sql driver registry.
func New(version string) func() provider.Provider {
	return newWithResolver(version, connspec.NewResolver())
}

func newWithResolver(version string, r *connspec.Resolver) func() provider.Provider {
	return func() provider.Provider {
		return &DBConnProvider{
			version:  version,
			resolver: r,
		}
	}
}
