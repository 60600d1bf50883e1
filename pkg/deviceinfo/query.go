package deviceinfo

// Query identifies one native deviceinfo function.
type Query uint8

// Catalog of native queries.
const (
	QueryDeviceType Query = iota
	QueryManufacturer
	QueryBrand
	QueryMarketName
	QueryProductSeries
	QueryProductModel
	QuerySoftwareModel
	QueryHardwareModel
	QueryBootloaderVersion
	QueryAbiList
	QuerySecurityPatchTag
	QueryDisplayVersion
	QueryIncrementalVersion
	QueryOSReleaseType
	QueryOSFullName
	QuerySDKAPIVersion
	QueryFirstAPIVersion
	QueryVersionID
	QueryBuildType
	QueryBuildUser
	QueryBuildHost
	QueryBuildTime
	QueryBuildRootHash
	QueryDistributionOSName
	QueryDistributionOSVersion
	QueryDistributionOSAPIVersion
	QueryDistributionOSReleaseType

	queryCount
)

type queryDesc struct {
	name    string
	numeric bool
}

var queries = [queryCount]queryDesc{
	QueryDeviceType:                {name: "device_type"},
	QueryManufacturer:              {name: "manufacturer"},
	QueryBrand:                     {name: "brand"},
	QueryMarketName:                {name: "market_name"},
	QueryProductSeries:             {name: "product_series"},
	QueryProductModel:              {name: "product_model"},
	QuerySoftwareModel:             {name: "software_model"},
	QueryHardwareModel:             {name: "hardware_model"},
	QueryBootloaderVersion:         {name: "bootloader_version"},
	QueryAbiList:                   {name: "abi_list"},
	QuerySecurityPatchTag:          {name: "security_patch_tag"},
	QueryDisplayVersion:            {name: "display_version"},
	QueryIncrementalVersion:        {name: "incremental_version"},
	QueryOSReleaseType:             {name: "os_release_type"},
	QueryOSFullName:                {name: "os_full_name"},
	QuerySDKAPIVersion:             {name: "sdk_api_version", numeric: true},
	QueryFirstAPIVersion:           {name: "first_api_version", numeric: true},
	QueryVersionID:                 {name: "version_id"},
	QueryBuildType:                 {name: "build_type"},
	QueryBuildUser:                 {name: "build_user"},
	QueryBuildHost:                 {name: "build_host"},
	QueryBuildTime:                 {name: "build_time"},
	QueryBuildRootHash:             {name: "build_root_hash"},
	QueryDistributionOSName:        {name: "distribution_os_name"},
	QueryDistributionOSVersion:     {name: "distribution_os_version"},
	QueryDistributionOSAPIVersion:  {name: "distribution_os_api_version", numeric: true},
	QueryDistributionOSReleaseType: {name: "distribution_os_release_type"},
}

// String returns the snake_case name of the query.
func (q Query) String() string {
	if q >= queryCount {
		return "unknown"
	}
	return queries[q].name
}

// Numeric reports whether the native function returns an integer rather than a
// C string.
func (q Query) Numeric() bool {
	return q < queryCount && queries[q].numeric
}

// Valid reports whether q is part of the catalog.
func (q Query) Valid() bool {
	return q < queryCount
}

// Queries returns every query in catalog order.
func Queries() []Query {
	out := make([]Query, 0, queryCount)
	for q := Query(0); q < queryCount; q++ {
		out = append(out, q)
	}
	return out
}
