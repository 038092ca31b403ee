// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"text/template"
)

// TemplatePath returns a path to a template file under testdata/templates.
func TemplatePath(name string) string {
	return filepath.Join("testdata", "templates", name)
}

// MustReadTemplate reads a template by name or fails the test.
func MustReadTemplate(t *testing.T, name string) string {
	t.Helper()
	p := TemplatePath(name)
	absPath, _ := filepath.Abs(p)
	b, err := os.ReadFile(p)
	if err != nil {
		wd, _ := os.Getwd()
		dir := filepath.Dir(p)
		var candidates []string
		if entries, dirErr := os.ReadDir(dir); dirErr == nil {
			for _, e := range entries {
				if !e.IsDir() {
					candidates = append(candidates, e.Name())
				}
			}
		}
		t.Fatalf(
			"failed to read template %q\n  path: %s\n  abs:  %s\n  cwd:  %s\n  dir:  %s\n  available templates: %v\n  error: %v",
			name, p, absPath, wd, dir, candidates, err,
		)
	}
	return string(b)
}

// MustWriteFile writes content to name inside a fresh temp dir and returns its path.
func MustWriteFile(t *testing.T, name, content string) string {
	t.Helper()
	dst := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(dst, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return dst
}

// TestAccConnectionConfig renders a provider block and a dbconn_connection data source.
func TestAccConnectionConfig(t *testing.T, cfg ConnectionTmplCfg) string {
	t.Helper()

	if cfg.DataName == "" {
		cfg.DataName = "this"
	}

	tmpl, err := template.New(ConnectionTmpl).Parse(MustReadTemplate(t, ConnectionTmpl))
	if err != nil {
		t.Fatal(err)
	}

	var tf bytes.Buffer
	if err = tmpl.Execute(&tf, cfg); err != nil {
		t.Fatal(err)
	}
	return tf.String()
}
