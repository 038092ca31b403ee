// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package connspec

import (
	"errors"
	"strings"
)

// ErrMalformedEnvEntry matches an EnvEntryError.
var ErrMalformedEnvEntry = errors.New("connspec: malformed environment entry")

// EnvEntryError reports a data source environment entry that is not key=value.
type EnvEntryError struct {
	Index int
	msg   string
}

func (e *EnvEntryError) Error() string        { return e.msg }
func (e *EnvEntryError) Is(target error) bool { return target == ErrMalformedEnvEntry }

// ParseEnvironment turns key=value entries into the lookup environment of a
// data source. The value may contain further '=' characters. A nil
// messages uses DefaultMessages.
func ParseEnvironment(entries []string, messages Messages) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	if messages == nil {
		messages = DefaultMessages()
	}
	env := make(map[string]string, len(entries))
	for i, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &EnvEntryError{Index: i, msg: messages.Format(MsgMalformedEnvEntry, i)}
		}
		env[key] = value
	}
	return env, nil
}
