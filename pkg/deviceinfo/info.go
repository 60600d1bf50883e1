package deviceinfo

// Info answers deviceinfo queries from a native source. The zero value is not
// usable; use Default.
type Info struct {
	src nativeSource
}

var std = &Info{src: native}

// Default returns the Info backed by the facility compiled into this binary.
func Default() *Info {
	return std
}

// Text implements Provider.
func (i *Info) Text(q Query) (string, bool) {
	if !q.Valid() || q.Numeric() {
		return "", false
	}
	return staticString(i.src.text(q))
}

// Number implements Provider.
func (i *Info) Number(q Query) uint32 {
	if !q.Numeric() {
		return 0
	}
	return apiVersion(i.src.number(q))
}

// DeviceType obtains the device type, e.g. phone or wearable.
func (i *Info) DeviceType() DeviceType {
	return DeviceTypeOf(i)
}

// DeviceTypeOf classifies the device type reported by p.
func DeviceTypeOf(p Provider) DeviceType {
	name, ok := p.Text(QueryDeviceType)
	if !ok {
		return DeviceType{Kind: Unknown}
	}
	return ParseDeviceType(name)
}

// Manufacturer obtains the device manufacturer.
func (i *Info) Manufacturer() (string, bool) { return i.Text(QueryManufacturer) }

// Brand obtains the device brand.
func (i *Info) Brand() (string, bool) { return i.Text(QueryBrand) }

// MarketName obtains the product name used in the market.
func (i *Info) MarketName() (string, bool) { return i.Text(QueryMarketName) }

// ProductSeries obtains the product series.
func (i *Info) ProductSeries() (string, bool) { return i.Text(QueryProductSeries) }

// ProductModel obtains the product model.
func (i *Info) ProductModel() (string, bool) { return i.Text(QueryProductModel) }

// SoftwareModel obtains the software model.
func (i *Info) SoftwareModel() (string, bool) { return i.Text(QuerySoftwareModel) }

// HardwareModel obtains the hardware model.
func (i *Info) HardwareModel() (string, bool) { return i.Text(QueryHardwareModel) }

// BootloaderVersion obtains the bootloader version.
func (i *Info) BootloaderVersion() (string, bool) { return i.Text(QueryBootloaderVersion) }

// AbiList obtains the list of supported application binary interfaces.
func (i *Info) AbiList() (string, bool) { return i.Text(QueryAbiList) }

// SecurityPatchTag obtains the security patch tag.
func (i *Info) SecurityPatchTag() (string, bool) { return i.Text(QuerySecurityPatchTag) }

// DisplayVersion obtains the product version displayed to the customer.
func (i *Info) DisplayVersion() (string, bool) { return i.Text(QueryDisplayVersion) }

// IncrementalVersion obtains the incremental version.
func (i *Info) IncrementalVersion() (string, bool) { return i.Text(QueryIncrementalVersion) }

// OSReleaseType obtains the OS release type. The category is Release, Beta or
// Canary; the specific type may be Release, Beta1 and alike.
func (i *Info) OSReleaseType() (string, bool) { return i.Text(QueryOSReleaseType) }

// OSFullName obtains the full OS version name.
func (i *Info) OSFullName() (string, bool) { return i.Text(QueryOSFullName) }

// SDKAPIVersion obtains the SDK API version number.
func (i *Info) SDKAPIVersion() uint32 { return i.Number(QuerySDKAPIVersion) }

// FirstAPIVersion obtains the first API version number.
func (i *Info) FirstAPIVersion() uint32 { return i.Number(QueryFirstAPIVersion) }

// VersionID obtains the version ID.
func (i *Info) VersionID() (string, bool) { return i.Text(QueryVersionID) }

// BuildType obtains the build type of the running OS.
func (i *Info) BuildType() (string, bool) { return i.Text(QueryBuildType) }

// BuildUser obtains the build user of the running OS.
func (i *Info) BuildUser() (string, bool) { return i.Text(QueryBuildUser) }

// BuildHost obtains the build host of the running OS.
func (i *Info) BuildHost() (string, bool) { return i.Text(QueryBuildHost) }

// BuildTime obtains the build time of the running OS.
func (i *Info) BuildTime() (string, bool) { return i.Text(QueryBuildTime) }

// BuildRootHash obtains the version hash of the running OS.
func (i *Info) BuildRootHash() (string, bool) { return i.Text(QueryBuildRootHash) }

// Distribution returns the ISV distribution view of i.
func (i *Info) Distribution() DistributionInfo {
	return DistributionInfo{p: i}
}

// DistributionInfo describes this distribution of OpenHarmony.
//
// Independent software vendors may ship OpenHarmony with a custom OS name and
// distribution versions. Where they did not, the native layer reports the base
// OS values. The zero value reads from Default.
type DistributionInfo struct {
	p Provider
}

func (d DistributionInfo) provider() Provider {
	if d.p == nil {
		return std
	}
	return d.p
}

// Name obtains the distribution OS name. Absent when the vendor did not set one.
func (d DistributionInfo) Name() (string, bool) { return d.provider().Text(QueryDistributionOSName) }

// Version obtains the distribution OS version, the same as OSFullName unless
// customized.
func (d DistributionInfo) Version() (string, bool) { return d.provider().Text(QueryDistributionOSVersion) }

// APIVersion obtains the distribution API version, the same as SDKAPIVersion
// unless customized.
func (d DistributionInfo) APIVersion() uint32 { return d.provider().Number(QueryDistributionOSAPIVersion) }

// ReleaseType obtains the distribution release type, the same as OSReleaseType
// unless customized.
func (d DistributionInfo) ReleaseType() (string, bool) {
	return d.provider().Text(QueryDistributionOSReleaseType)
}
