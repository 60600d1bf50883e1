package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ilexum-group/ohos-deviceinfo/internal/utils"
)

// NewDeviceReport creates an empty report stamped with a fresh UUID and the
// current UTC time.
func NewDeviceReport(agentVersion string) *DeviceReport {
	return &DeviceReport{
		ID:           utils.GenerateRandomID(),
		AgentVersion: agentVersion,
		CollectedAt:  time.Now().UTC(),
	}
}

// Seal computes the fingerprint of the report.
//
// The fingerprint is the SHA-256 of the JSON encoding of the device and
// distribution sections only, so every report of an unchanged device carries
// the same value regardless of ID, time, host facts or logs.
func (r *DeviceReport) Seal() error {
	fp, err := Fingerprint(r.Device, r.Distribution)
	if err != nil {
		return err
	}
	r.Fingerprint = fp
	return nil
}

// Fingerprint returns the hex SHA-256 of the identity sections.
func Fingerprint(device DeviceInfo, distribution DistributionInfo) (string, error) {
	payload, err := json.Marshal(struct {
		Device       DeviceInfo       `json:"device"`
		Distribution DistributionInfo `json:"distribution"`
	}{device, distribution})
	if err != nil {
		return "", fmt.Errorf("failed to encode identity: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
