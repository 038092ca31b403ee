// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "github.com/google/uuid"

// connectionIDNamespace scopes the name-based UUIDs of dbconn_connection.
var connectionIDNamespace = uuid.MustParse("5b1f4f7e-3c1a-4d3e-9a57-6c0f2d8e1b42")

// connectionID derives a stable identifier from the resolved strategy and target.
func connectionID(strategy, target string) string {
	return uuid.NewSHA1(connectionIDNamespace, []byte(strategy+"\n"+target)).String()
}
