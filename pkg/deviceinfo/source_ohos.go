//go:build ohos && cgo

package deviceinfo

/*
#cgo LDFLAGS: -ldeviceinfo_ndk.z
#include <deviceinfo.h>
*/
import "C"

import "unsafe"

// Supported reports whether the native deviceinfo facility is compiled in.
const Supported = true

var native nativeSource = ohosSource{}

// ohosSource calls into libdeviceinfo_ndk. All functions are side-effect free
// and return static strings owned by the system.
type ohosSource struct{}

func (ohosSource) text(q Query) unsafe.Pointer {
	var p *C.char
	switch q {
	case QueryDeviceType:
		p = C.OH_GetDeviceType()
	case QueryManufacturer:
		p = C.OH_GetManufacture()
	case QueryBrand:
		p = C.OH_GetBrand()
	case QueryMarketName:
		p = C.OH_GetMarketName()
	case QueryProductSeries:
		p = C.OH_GetProductSeries()
	case QueryProductModel:
		p = C.OH_GetProductModel()
	case QuerySoftwareModel:
		p = C.OH_GetSoftwareModel()
	case QueryHardwareModel:
		p = C.OH_GetHardwareModel()
	case QueryBootloaderVersion:
		p = C.OH_GetBootloaderVersion()
	case QueryAbiList:
		p = C.OH_GetAbiList()
	case QuerySecurityPatchTag:
		p = C.OH_GetSecurityPatchTag()
	case QueryDisplayVersion:
		p = C.OH_GetDisplayVersion()
	case QueryIncrementalVersion:
		p = C.OH_GetIncrementalVersion()
	case QueryOSReleaseType:
		p = C.OH_GetOsReleaseType()
	case QueryOSFullName:
		p = C.OH_GetOSFullName()
	case QueryVersionID:
		p = C.OH_GetVersionId()
	case QueryBuildType:
		p = C.OH_GetBuildType()
	case QueryBuildUser:
		p = C.OH_GetBuildUser()
	case QueryBuildHost:
		p = C.OH_GetBuildHost()
	case QueryBuildTime:
		p = C.OH_GetBuildTime()
	case QueryBuildRootHash:
		p = C.OH_GetBuildRootHash()
	case QueryDistributionOSName:
		p = C.OH_GetDistributionOSName()
	case QueryDistributionOSVersion:
		p = C.OH_GetDistributionOSVersion()
	case QueryDistributionOSReleaseType:
		p = C.OH_GetDistributionOSReleaseType()
	default:
		return nil
	}
	return unsafe.Pointer(p)
}

func (ohosSource) number(q Query) int32 {
	switch q {
	case QuerySDKAPIVersion:
		return int32(C.OH_GetSdkApiVersion())
	case QueryFirstAPIVersion:
		return int32(C.OH_GetFirstApiVersion())
	case QueryDistributionOSAPIVersion:
		return int32(C.OH_GetDistributionOSApiVersion())
	default:
		return 0
	}
}
