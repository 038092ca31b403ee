// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/devops-wiz/terraform-provider-dbconn/internal/connspec"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

var _ datasource.DataSource = (*connectionDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*connectionDataSource)(nil)

// NewConnectionDataSource returns the Terraform data source implementation for dbconn_connection.
func NewConnectionDataSource() datasource.DataSource { return &connectionDataSource{} }

type connectionDataSource struct {
	baseConnection
}

type connectionDataSourceModel struct {
	// Outputs (all computed)
	ID           types.String `tfsdk:"id"`
	Strategy     types.String `tfsdk:"strategy"`
	Target       types.String `tfsdk:"target"`
	DriverName   types.String `tfsdk:"driver_name"`
	Host         types.String `tfsdk:"host"`
	Port         types.Int64  `tfsdk:"port"`
	DatabaseName types.String `tfsdk:"database_name"`
	Environment  types.Map    `tfsdk:"environment"`
}

func (d *connectionDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_connection"
}

func (d *connectionDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Describes the connection resolved from the provider configuration. Credentials are never exposed.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Stable identifier derived from the strategy and target.",
			},
			"strategy": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Resolved strategy: `data_source`, `url`, `network_driver` or `local_alias`.",
			},
			"target": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Data source name, URL, or the rendered `jdbc:` URL. Embedded credentials are redacted.",
			},
			"driver_name": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Driver used by the URL, network driver and local alias strategies.",
			},
			"host": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Host of the network driver strategy.",
			},
			"port": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "Port of the network driver strategy.",
			},
			"database_name": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Database name, or the alias of the local alias strategy.",
			},
			"environment": schema.MapAttribute{
				Computed:            true,
				ElementType:         types.StringType,
				MarkdownDescription: "Parsed `data_source_env` entries.",
			},
		},
	}
}

func (d *connectionDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.configureFrom(req.ProviderData, &resp.Diagnostics)
}

func (d *connectionDataSource) Read(ctx context.Context, _ datasource.ReadRequest, resp *datasource.ReadResponse) {
	if d.connection == nil || !d.connection.ResolvedType().IsSet() {
		resp.Diagnostics.AddError(
			"Provider not configured",
			"The dbconn provider has no resolved connection. Ensure the provider block is valid and configured before reading dbconn_connection.",
		)
		return
	}

	desc, err := connspec.Describe(d.connection.Config, d.connection.ResolvedType())
	if err != nil {
		resp.Diagnostics.AddError("Failed to describe connection", RedactSecrets(err.Error()))
		return
	}

	target := RedactSecrets(desc.Target)
	strategy := desc.Type.String()
	data := connectionDataSourceModel{
		ID:           types.StringValue(connectionID(strategy, target)),
		Strategy:     types.StringValue(strategy),
		Target:       stringOrNull(target),
		DriverName:   stringOrNull(desc.Driver),
		Host:         stringOrNull(desc.Host),
		Port:         int64OrNull(int64(desc.Port)),
		DatabaseName: stringOrNull(desc.Database),
	}

	env, diags := types.MapValueFrom(ctx, types.StringType, d.environment)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	data.Environment = env

	tflog.Debug(ctx, "connection described", map[string]interface{}{
		"strategy": strategy,
		"id":       data.ID.ValueString(),
	})

	if diags := resp.State.Set(ctx, &data); diags.HasError() {
		resp.Diagnostics.AddError(
			"Failed to set data source state",
			"An unexpected error occurred while writing computed data to Terraform state. See diagnostics for details.",
		)
		resp.Diagnostics.Append(diags...)
		return
	}
}
