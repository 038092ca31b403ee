// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Resolver selects the connection strategy of a Config. A Resolver is
// immutable and may be shared between goroutines.
type Resolver struct {
	probe    DriverProbe
	messages Messages
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDriverProbe sets the driver loadability probe. Defaults to RegisteredDrivers.
func WithDriverProbe(p DriverProbe) Option {
	return func(r *Resolver) {
		if p != nil {
			r.probe = p
		}
	}
}

// WithMessages sets the catalog used for labels and error text. Defaults to DefaultMessages.
func WithMessages(m Messages) Option {
	return func(r *Resolver) {
		if m != nil {
			r.messages = m
		}
	}
}

// NewResolver returns a Resolver configured by opts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		probe:    RegisteredDrivers(),
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the strategy cfg describes.
//
// Strategies are tried in priority order and the first one whose required
// fields are satisfied wins; failures of earlier strategies are then
// dropped. Fields owned by any other strategy must be blank unless shared
// with the winner, otherwise an *AmbiguousConfigurationError is returned.
// When no strategy can be satisfied the result is an
// *UnresolvableConfigurationError carrying every attempt. A non blank port
// must finally parse as an integer.
func (r *Resolver) Resolve(cfg Config) (Type, error) {
	var attempts *multierror.Error
	resolved := TypeUnset
	for _, t := range priority {
		c := checkers[t]
		if err := r.checkRequired(c, cfg); err != nil {
			attempts = multierror.Append(attempts, err)
			continue
		}
		for _, other := range priority {
			if other == t {
				continue
			}
			if err := r.checkEmpty(checkers[other], c, cfg); err != nil {
				return TypeUnset, err
			}
		}
		resolved = t
		break
	}
	if !resolved.IsSet() {
		attempts.ErrorFormat = attemptFormat
		return TypeUnset, &UnresolvableConfigurationError{
			attempts: attempts,
			msg:      r.messages.Format(MsgValidateFail, joinMessages(attempts.WrappedErrors())),
		}
	}
	if err := r.checkPort(cfg); err != nil {
		return TypeUnset, err
	}
	return resolved, nil
}

func (r *Resolver) checkPort(cfg Config) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return nil
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return &MalformedPortError{
			Value: cfg.Port,
			Err:   err,
			msg:   r.messages.Format(MsgMalformedPort, r.messages.Label(FieldPort), cfg.Port),
		}
	}
	return nil
}

// Configuration binds a Config to the strategy resolved for it. The
// strategy is stamped once, after every check passed, and never reset.
// A Configuration is not safe for concurrent use.
type Configuration struct {
	Config

	resolver *Resolver
	resolved Type
}

// NewConfiguration binds cfg to r. A nil r uses NewResolver().
func NewConfiguration(cfg Config, r *Resolver) *Configuration {
	if r == nil {
		r = NewResolver()
	}
	return &Configuration{Config: cfg, resolver: r}
}

// Validate resolves the strategy unless one is already stamped.
func (c *Configuration) Validate() error {
	if c.resolved.IsSet() {
		return nil
	}
	t, err := c.resolver.Resolve(c.Config)
	if err != nil {
		return err
	}
	c.resolved = t
	return nil
}

// ResolvedType returns the stamped strategy, TypeUnset before a successful Validate.
func (c *Configuration) ResolvedType() Type { return c.resolved }
