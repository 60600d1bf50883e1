package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func sampleDevice() DeviceInfo {
	return DeviceInfo{
		DeviceType:    "phone",
		DeviceKind:    "phone",
		Brand:         "HUAWEI",
		ProductModel:  "ALN-AL00",
		OSFullName:    "OpenHarmony-5.0.0.102",
		SDKAPIVersion: 12,
	}
}

func TestNewDeviceReport(t *testing.T) {
	before := time.Now().UTC()
	r := NewDeviceReport("1.2.0")

	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", r.ID, err)
	}
	if r.AgentVersion != "1.2.0" {
		t.Errorf("AgentVersion = %q", r.AgentVersion)
	}
	if r.CollectedAt.Before(before) || r.CollectedAt.Location() != time.UTC {
		t.Errorf("CollectedAt = %v, want UTC time after %v", r.CollectedAt, before)
	}
	if r.Fingerprint != "" {
		t.Error("new report should not be sealed")
	}
	if other := NewDeviceReport("1.2.0"); other.ID == r.ID {
		t.Errorf("two reports share ID %q", r.ID)
	}
}

func TestSealIgnoresVolatileFields(t *testing.T) {
	a := NewDeviceReport("1.0.0")
	a.Device = sampleDevice()
	a.Distribution = DistributionInfo{Name: "HarmonyOS", APIVersion: 12}
	a.Logs = []string{"<14>1 ..."}

	b := NewDeviceReport("1.1.0")
	b.Device = sampleDevice()
	b.Distribution = DistributionInfo{Name: "HarmonyOS", APIVersion: 12}
	b.Host = &HostInfo{Hostname: "other"}

	if err := a.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if err := b.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if len(a.Fingerprint) != 64 {
		t.Errorf("Fingerprint %q is not a hex SHA-256", a.Fingerprint)
	}
	if a.Fingerprint != b.Fingerprint {
		t.Errorf("same device produced %s and %s", a.Fingerprint, b.Fingerprint)
	}

	b.Device.SecurityPatchTag = "2024-10-01"
	if err := b.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if a.Fingerprint == b.Fingerprint {
		t.Error("changed device kept the same fingerprint")
	}
}
