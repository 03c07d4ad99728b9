package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/defkit/internal/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var kerr *errors.KitError
	if !stderrors.As(err, &kerr) {
		t.Fatalf("err = %v, want *errors.KitError", err)
	}
	return kerr.Code
}

func TestRenderList(t *testing.T) {
	out, _, err := execute(t, "render", "--list")
	if err != nil {
		t.Fatalf("render --list: %v", err)
	}
	if out != "counter\ngreeting\nthemed\ntodos\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRenderGreeting(t *testing.T) {
	out, _, err := execute(t, "render", "greeting", "--prop", "name=Ada")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<p class=\"greeting\">Hello, Ada!</p>\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRenderMetrics(t *testing.T) {
	out, _, err := execute(t, "render", "todos", "-p", "items=a,b", "--metrics")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<li>a</li>", "defkit_defcomp_adaptations_total 1", "defkit_defcomp_cached_definitions 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderLogLevel(t *testing.T) {
	_, logs, err := execute(t, "--log-level", "debug", "render", "themed")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"adapted component definition", "component=ThemeProvider", "mounted component"} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}

func TestRenderUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := `{"render": {"pretty": true, "indent": "\t"}}`
	if err := os.WriteFile(filepath.Join(dir, "defkit.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "todos", "--config", dir, "-p", "items=x"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(stdout.String(), "\n\t<ul>\n\t\t<li>") {
		t.Errorf("expected tab-indented output:\n%s", stdout.String())
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"no component", []string{"render"}, "X001"},
		{"unknown component", []string{"render", "nope"}, "X001"},
		{"bad prop", []string{"render", "greeting", "-p", "name"}, "C002"},
		{"bad log level", []string{"--log-level", "loud", "render", "greeting"}, "C002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if got := codeOf(t, err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestParseProps(t *testing.T) {
	props, err := parseProps([]string{"a=1", "b=x=y", "c="})
	if err != nil {
		t.Fatalf("parseProps: %v", err)
	}
	if props["a"] != "1" || props["b"] != "x=y" || props["c"] != "" {
		t.Errorf("props = %v", props)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "dev\n" {
		t.Errorf("output = %q", out)
	}
}
