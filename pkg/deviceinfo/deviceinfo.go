package deviceinfo

// Package-level accessors backed by Default.

// GetDeviceType obtains the device type, e.g. phone or wearable.
func GetDeviceType() DeviceType { return std.DeviceType() }

// Manufacturer obtains the device manufacturer.
func Manufacturer() (string, bool) { return std.Manufacturer() }

// Brand obtains the device brand.
func Brand() (string, bool) { return std.Brand() }

// MarketName obtains the product name used in the market.
func MarketName() (string, bool) { return std.MarketName() }

// ProductSeries obtains the product series.
func ProductSeries() (string, bool) { return std.ProductSeries() }

// ProductModel obtains the product model.
func ProductModel() (string, bool) { return std.ProductModel() }

// SoftwareModel obtains the software model.
func SoftwareModel() (string, bool) { return std.SoftwareModel() }

// HardwareModel obtains the hardware model.
func HardwareModel() (string, bool) { return std.HardwareModel() }

// BootloaderVersion obtains the bootloader version.
func BootloaderVersion() (string, bool) { return std.BootloaderVersion() }

// AbiList obtains the list of supported application binary interfaces.
func AbiList() (string, bool) { return std.AbiList() }

// SecurityPatchTag obtains the security patch tag.
func SecurityPatchTag() (string, bool) { return std.SecurityPatchTag() }

// DisplayVersion obtains the product version displayed to the customer.
func DisplayVersion() (string, bool) { return std.DisplayVersion() }

// IncrementalVersion obtains the incremental version.
func IncrementalVersion() (string, bool) { return std.IncrementalVersion() }

// OSReleaseType obtains the OS release type.
func OSReleaseType() (string, bool) { return std.OSReleaseType() }

// OSFullName obtains the full OS version name.
func OSFullName() (string, bool) { return std.OSFullName() }

// SDKAPIVersion obtains the SDK API version number.
func SDKAPIVersion() uint32 { return std.SDKAPIVersion() }

// FirstAPIVersion obtains the first API version number.
func FirstAPIVersion() uint32 { return std.FirstAPIVersion() }

// VersionID obtains the version ID.
func VersionID() (string, bool) { return std.VersionID() }

// BuildType obtains the build type of the running OS.
func BuildType() (string, bool) { return std.BuildType() }

// BuildUser obtains the build user of the running OS.
func BuildUser() (string, bool) { return std.BuildUser() }

// BuildHost obtains the build host of the running OS.
func BuildHost() (string, bool) { return std.BuildHost() }

// BuildTime obtains the build time of the running OS.
func BuildTime() (string, bool) { return std.BuildTime() }

// BuildRootHash obtains the version hash of the running OS.
func BuildRootHash() (string, bool) { return std.BuildRootHash() }

// Distribution returns the ISV distribution information of this device.
func Distribution() DistributionInfo { return std.Distribution() }
