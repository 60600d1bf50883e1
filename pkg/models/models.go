// Package models defines the device report produced by the agent
package models

import "time"

// DeviceReport represents the complete data collected by the agent
type DeviceReport struct {
	ID           string           `json:"id" yaml:"id" plist:"id"`
	AgentVersion string           `json:"agent_version" yaml:"agent_version" plist:"agent_version"`
	CollectedAt  time.Time        `json:"collected_at" yaml:"collected_at" plist:"collected_at"`
	Supported    bool             `json:"supported" yaml:"supported" plist:"supported"` // native deviceinfo compiled in
	Device       DeviceInfo       `json:"device" yaml:"device" plist:"device"`
	Distribution DistributionInfo `json:"distribution" yaml:"distribution" plist:"distribution"`
	Host         *HostInfo        `json:"host,omitempty" yaml:"host,omitempty" plist:"host,omitempty"`
	Fingerprint  string           `json:"fingerprint" yaml:"fingerprint" plist:"fingerprint"`
	Logs         []string         `json:"logs,omitempty" yaml:"logs,omitempty" plist:"logs,omitempty"`
}

// DeviceInfo holds the values reported by the native deviceinfo queries.
// Absent values are left empty.
type DeviceInfo struct {
	// Device identity
	DeviceType   string `json:"device_type" yaml:"device_type" plist:"device_type"`
	DeviceKind   string `json:"device_kind" yaml:"device_kind" plist:"device_kind"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty" plist:"manufacturer,omitempty"`
	Brand        string `json:"brand,omitempty" yaml:"brand,omitempty" plist:"brand,omitempty"`
	MarketName   string `json:"market_name,omitempty" yaml:"market_name,omitempty" plist:"market_name,omitempty"`

	// Hardware identity
	ProductSeries     string `json:"product_series,omitempty" yaml:"product_series,omitempty" plist:"product_series,omitempty"`
	ProductModel      string `json:"product_model,omitempty" yaml:"product_model,omitempty" plist:"product_model,omitempty"`
	SoftwareModel     string `json:"software_model,omitempty" yaml:"software_model,omitempty" plist:"software_model,omitempty"`
	HardwareModel     string `json:"hardware_model,omitempty" yaml:"hardware_model,omitempty" plist:"hardware_model,omitempty"`
	BootloaderVersion string `json:"bootloader_version,omitempty" yaml:"bootloader_version,omitempty" plist:"bootloader_version,omitempty"`
	AbiList           string `json:"abi_list,omitempty" yaml:"abi_list,omitempty" plist:"abi_list,omitempty"`

	// OS build identity
	SecurityPatchTag   string `json:"security_patch_tag,omitempty" yaml:"security_patch_tag,omitempty" plist:"security_patch_tag,omitempty"`
	DisplayVersion     string `json:"display_version,omitempty" yaml:"display_version,omitempty" plist:"display_version,omitempty"`
	IncrementalVersion string `json:"incremental_version,omitempty" yaml:"incremental_version,omitempty" plist:"incremental_version,omitempty"`
	OSReleaseType      string `json:"os_release_type,omitempty" yaml:"os_release_type,omitempty" plist:"os_release_type,omitempty"`
	OSFullName         string `json:"os_full_name,omitempty" yaml:"os_full_name,omitempty" plist:"os_full_name,omitempty"`
	SDKAPIVersion      uint32 `json:"sdk_api_version" yaml:"sdk_api_version" plist:"sdk_api_version"`
	FirstAPIVersion    uint32 `json:"first_api_version" yaml:"first_api_version" plist:"first_api_version"`
	VersionID          string `json:"version_id,omitempty" yaml:"version_id,omitempty" plist:"version_id,omitempty"`
	BuildType          string `json:"build_type,omitempty" yaml:"build_type,omitempty" plist:"build_type,omitempty"`
	BuildUser          string `json:"build_user,omitempty" yaml:"build_user,omitempty" plist:"build_user,omitempty"`
	BuildHost          string `json:"build_host,omitempty" yaml:"build_host,omitempty" plist:"build_host,omitempty"`
	BuildTime          string `json:"build_time,omitempty" yaml:"build_time,omitempty" plist:"build_time,omitempty"`
	BuildRootHash      string `json:"build_root_hash,omitempty" yaml:"build_root_hash,omitempty" plist:"build_root_hash,omitempty"`
}

// DistributionInfo holds the ISV distribution overlay
type DistributionInfo struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty" plist:"name,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty" plist:"version,omitempty"`
	APIVersion  uint32 `json:"api_version" yaml:"api_version" plist:"api_version"`
	ReleaseType string `json:"release_type,omitempty" yaml:"release_type,omitempty" plist:"release_type,omitempty"`
}

// HostInfo holds facts about the running host that do not come from deviceinfo
type HostInfo struct {
	Hostname        string `json:"hostname" yaml:"hostname" plist:"hostname"`
	OS              string `json:"os" yaml:"os" plist:"os"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty" plist:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty" plist:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty" plist:"kernel_version,omitempty"`
	KernelArch      string `json:"kernel_arch,omitempty" yaml:"kernel_arch,omitempty" plist:"kernel_arch,omitempty"`
	Uptime          uint64 `json:"uptime" yaml:"uptime" plist:"uptime"`
	CPUCount        int    `json:"cpu_count" yaml:"cpu_count" plist:"cpu_count"`
	MemoryTotal     uint64 `json:"memory_total" yaml:"memory_total" plist:"memory_total"`
}
