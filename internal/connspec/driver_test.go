// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return nil, errors.New("stub driver does not connect") }

const registeredStub = "connspec-stub"

func init() {
	sql.Register(registeredStub, stubDriver{})
}

func TestRegisteredDrivers(t *testing.T) {
	p := RegisteredDrivers()
	assert.True(t, p.CanLoadDriver(registeredStub))
	assert.False(t, p.CanLoadDriver("com.example.Missing"))
	assert.False(t, p.CanLoadDriver(""))
}

func TestNewResolver_defaultsToRegisteredDrivers(t *testing.T) {
	cfg := networkDriverConfig()
	cfg.DriverName = registeredStub
	got, err := NewResolver().Resolve(cfg)
	assert.NoError(t, err)
	assert.Equal(t, TypeNetworkDriver, got)
}

func TestStaticDrivers(t *testing.T) {
	p := StaticDrivers("a", "b")
	assert.True(t, p.CanLoadDriver("a"))
	assert.False(t, p.CanLoadDriver("c"))
}

func TestSecret(t *testing.T) {
	var absent Secret
	assert.False(t, absent.IsSet())
	assert.Equal(t, "", absent.String())

	s := NewSecret("hunter2")
	assert.True(t, s.IsSet())
	assert.Equal(t, "hunter2", s.Reveal())
	for _, verb := range []string{"%v", "%s", "%#v", "%+v"} {
		assert.NotContains(t, fmt.Sprintf(verb, s), "hunter2", verb)
	}
	cfg := Config{AdminPassword: s}
	assert.NotContains(t, fmt.Sprintf("%+v", cfg), "hunter2")
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, []string{"data_source", "url", "network_driver", "local_alias"}, func() []string {
		var out []string
		for _, typ := range Types() {
			out = append(out, typ.String())
		}
		return out
	}())
	assert.Equal(t, "unset", TypeUnset.String())
	assert.False(t, TypeUnset.IsSet())
}
