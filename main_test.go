package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDisplay(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "display_config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestRunMissingConfigFails(t *testing.T) {
	var stderr bytes.Buffer
	code := run([]string{"-headless", "-ticks", "1", "-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stderr)
	if code == 0 {
		t.Fatalf("exit code 0 for missing config")
	}
	if !strings.Contains(stderr.String(), "load display config") {
		t.Fatalf("stderr=%q", stderr.String())
	}
	if strings.Contains(stderr.String(), "headless run") {
		t.Fatalf("frame loop started despite config failure")
	}
}

func TestRunMalformedConfigFails(t *testing.T) {
	var stderr bytes.Buffer
	p := writeDisplay(t, "dimensions: [1, 2, 3]\n")
	if code := run([]string{"-headless", "-ticks", "1", "-config", p}, &stderr); code != 1 {
		t.Fatalf("exit code=%d, want 1 (stderr=%q)", code, stderr.String())
	}
}

func TestRunHeadlessScriptAndSnapshot(t *testing.T) {
	var stderr bytes.Buffer
	p := writeDisplay(t, "title: test\ndimensions: [64, 64]\n")
	out := filepath.Join(t.TempDir(), "frame.png")
	code := run([]string{
		"-headless", "-hz", "1000",
		"-config", p,
		"-script", "key:a,key:escape",
		"-snapshot", out,
		"-log-level", "debug",
	}, &stderr)
	if code != 0 {
		t.Fatalf("exit code=%d (stderr=%q)", code, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	if !strings.Contains(stderr.String(), "quit requested") {
		t.Fatalf("expected quit log, got %q", stderr.String())
	}
}

func TestRunBadFlags(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"-no-such-flag"}, &stderr); code != 2 {
		t.Fatalf("exit code=%d, want 2", code)
	}
	if code := run([]string{"-log-level", "loud"}, &stderr); code != 2 {
		t.Fatalf("exit code=%d, want 2", code)
	}
	p := writeDisplay(t, "vsync: true\n")
	if code := run([]string{"-headless", "-config", p, "-script", "key:shift"}, &stderr); code != 2 {
		t.Fatalf("exit code=%d, want 2", code)
	}
}
