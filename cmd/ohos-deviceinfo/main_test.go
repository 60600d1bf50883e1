package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ilexum-group/ohos-deviceinfo/internal/store"
	"github.com/ilexum-group/ohos-deviceinfo/internal/utils"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/deviceinfo"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/models"
)

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"--version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "ohos-deviceinfo "+Version) {
		t.Errorf("unexpected version output: %q", stdout.String())
	}
}

func TestRunWritesReport(t *testing.T) {
	t.Cleanup(func() { utils.DefaultLogger = nil })
	dir := t.TempDir()
	out := filepath.Join(dir, "report.json")
	db := filepath.Join(dir, "history.db")

	var stdout, stderr bytes.Buffer
	args := []string{"--include-host=false", "-o", out, "--store", db}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("report should go to the file, stdout has %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), utils.AppName) {
		t.Errorf("expected syslog lines on stderr, got %q", stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var report models.DeviceReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("invalid report: %v", err)
	}
	if report.Supported != deviceinfo.Supported {
		t.Errorf("Supported = %v, want %v", report.Supported, deviceinfo.Supported)
	}
	if len(report.Fingerprint) != 64 {
		t.Errorf("report not sealed: %q", report.Fingerprint)
	}
	if len(report.Logs) == 0 {
		t.Error("expected captured logs in the report")
	}

	st, err := store.Open(context.Background(), db)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close() }()
	latest, err := st.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != report.ID {
		t.Errorf("stored %s, wrote %s", latest.ID, report.ID)
	}
	if latest.Report == nil || len(latest.Report.Logs) == 0 {
		t.Error("expected captured logs in the stored report")
	}
}

func TestRunWritesIntoDirectory(t *testing.T) {
	t.Cleanup(func() { utils.DefaultLogger = nil })
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	args := []string{"--include-host=false", "--format", "YML", "-o", dir}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	matches, err := filepath.Glob(filepath.Join(dir, "deviceinfo-*.yaml"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one yaml report in %s, got %v", dir, matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "fingerprint:") {
		t.Errorf("unexpected yaml report:\n%s", data)
	}
}

func TestRunRejectsBadFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"--format", "toml"}, &stdout, &stderr); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
