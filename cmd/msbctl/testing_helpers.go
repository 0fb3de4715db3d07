package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/msbkit/internal/logging"
	"github.com/joshuapare/msbkit/internal/testutil"
)

// sampleFile writes the standard fixture to a temp file and returns its path.
func sampleFile(t *testing.T) string {
	t.Helper()
	return testutil.WriteTemp(t, "m30_00_00_00.msb", testutil.Sample(t))
}

// resetFlags restores every global flag and the resolved config.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut, dryRun, backup = false, false, false, false, false
	configFile, logLevel = "", "warn"
	listIDsOnly = false
	exportFormat, exportOutput = "json", ""
	cfg = defaultConfig()
	logger = logging.Discard()
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return <-done, fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
