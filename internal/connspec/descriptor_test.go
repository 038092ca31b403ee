// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		name       string
		cfg        Config
		typ        Type
		wantTarget string
		wantDriver string
		wantPort   int
	}{
		{name: "data source", cfg: Config{DataSourceName: " jdbc/ds1 "}, typ: TypeDataSource, wantTarget: "jdbc/ds1"},
		{name: "url", cfg: urlConfig(), typ: TypeURL, wantTarget: "jdbc:db2://db.example.com:50000/SAMPLE", wantDriver: testDriver},
		{name: "network driver", cfg: networkDriverConfig(), typ: TypeNetworkDriver, wantTarget: "jdbc:db2://db.example.com:50000/SAMPLE", wantDriver: testDriver, wantPort: 50000},
		{name: "local alias", cfg: localAliasConfig(), typ: TypeLocalAlias, wantTarget: "jdbc:db2:SAMPLEAL", wantDriver: testDriver},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Describe(tc.cfg, tc.typ)
			require.NoError(t, err)
			assert.Equal(t, tc.typ, d.Type)
			assert.Equal(t, tc.wantTarget, d.Target)
			assert.Equal(t, tc.wantDriver, d.Driver)
			assert.Equal(t, tc.wantPort, d.Port)
		})
	}
}

func TestDescribe_errors(t *testing.T) {
	_, err := Describe(Config{DataSourceName: "jdbc/ds1"}, TypeUnset)
	assert.Error(t, err)

	cfg := networkDriverConfig()
	cfg.Port = "abc"
	_, err = Describe(cfg, TypeNetworkDriver)
	assert.Error(t, err)
}

func TestParseEnvironment(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		env, err := ParseEnvironment(nil, nil)
		require.NoError(t, err)
		assert.Nil(t, env)
	})

	t.Run("entries", func(t *testing.T) {
		env, err := ParseEnvironment([]string{
			"java.naming.provider.url=iiop://appsrv:2809",
			" java.naming.factory.initial =com.example.Factory",
			"query=a=b",
			"empty=",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"java.naming.provider.url":    "iiop://appsrv:2809",
			"java.naming.factory.initial": "com.example.Factory",
			"query":                       "a=b",
			"empty":                       "",
		}, env)
	})

	for _, bad := range []string{"novalue", "=value"} {
		t.Run("malformed "+bad, func(t *testing.T) {
			_, err := ParseEnvironment([]string{"ok=1", bad}, nil)
			require.ErrorIs(t, err, ErrMalformedEnvEntry)
			var entryErr *EnvEntryError
			require.ErrorAs(t, err, &entryErr)
			assert.Equal(t, 1, entryErr.Index)
			assert.Contains(t, err.Error(), "entry 1")
		})
	}
}
