package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
	"howett.net/plist"

	"github.com/ilexum-group/ohos-deviceinfo/pkg/models"
)

func sampleReport() *models.DeviceReport {
	return &models.DeviceReport{
		ID:           "5d0c1c7e-51a8-4f4e-9d63-6f3f0f7c1a10",
		AgentVersion: "1.0.0",
		CollectedAt:  time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
		Supported:    true,
		Device: models.DeviceInfo{
			DeviceType:    "phone",
			DeviceKind:    "phone",
			Brand:         "HUAWEI",
			OSFullName:    "OpenHarmony-5.0.0.102",
			SDKAPIVersion: 12,
		},
		Distribution: models.DistributionInfo{Name: "HarmonyOS", APIVersion: 12},
		Fingerprint:  "abc123",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{"JSON", JSON},
		{"yaml", YAML},
		{"yml", YAML},
		{" plist ", Plist},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatExtension(t *testing.T) {
	for f, want := range map[Format]string{JSON: "json", YAML: "yaml", Plist: "plist"} {
		if got := f.Extension(); got != want {
			t.Errorf("%s.Extension() = %q, want %q", f, got, want)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, JSON, sampleReport()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var out models.DeviceReport
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Device.Brand != "HUAWEI" || out.Distribution.APIVersion != 12 {
		t.Errorf("unexpected decode: %+v", out)
	}
	if strings.Contains(buf.String(), "market_name") {
		t.Error("absent fields should be omitted")
	}
	if strings.Contains(buf.String(), `"host"`) {
		t.Error("nil host should be omitted")
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, YAML, sampleReport()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, buf.String())
	}
	device, ok := out["device"].(map[string]any)
	if !ok {
		t.Fatalf("device section missing: %v", out)
	}
	if device["device_type"] != "phone" || device["os_full_name"] != "OpenHarmony-5.0.0.102" {
		t.Errorf("unexpected device section: %v", device)
	}
}

func TestEncodePlist(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Plist, sampleReport()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Errorf("expected an XML plist, got %.40s", buf.String())
	}

	var out map[string]any
	if _, err := plist.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid plist: %v", err)
	}
	device, ok := out["device"].(map[string]any)
	if !ok {
		t.Fatalf("device section missing: %v", out)
	}
	if device["brand"] != "HUAWEI" {
		t.Errorf("brand = %v", device["brand"])
	}
	if out["id"] != "5d0c1c7e-51a8-4f4e-9d63-6f3f0f7c1a10" {
		t.Errorf("id = %v", out["id"])
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, Format("csv"), sampleReport()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(csv) error = %v, want ErrUnknownFormat", err)
	}
}
