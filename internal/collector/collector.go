// Package collector builds device reports from deviceinfo queries and host facts.
package collector

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/ilexum-group/ohos-deviceinfo/internal/utils"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/deviceinfo"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/models"
)

// Options configures Collect.
type Options struct {
	AgentVersion string
	IncludeHost  bool
	// Supported is copied into the report; normally deviceinfo.Supported.
	Supported bool
	Logger    utils.Logger
}

// CollectDeviceInfo reads every device, hardware and build query from p.
func CollectDeviceInfo(p deviceinfo.Provider) models.DeviceInfo {
	text := func(q deviceinfo.Query) string {
		v, _ := p.Text(q)
		return v
	}

	deviceType := deviceinfo.DeviceTypeOf(p)
	return models.DeviceInfo{
		DeviceType:   deviceType.String(),
		DeviceKind:   deviceType.Kind.String(),
		Manufacturer: text(deviceinfo.QueryManufacturer),
		Brand:        text(deviceinfo.QueryBrand),
		MarketName:   text(deviceinfo.QueryMarketName),

		ProductSeries:     text(deviceinfo.QueryProductSeries),
		ProductModel:      text(deviceinfo.QueryProductModel),
		SoftwareModel:     text(deviceinfo.QuerySoftwareModel),
		HardwareModel:     text(deviceinfo.QueryHardwareModel),
		BootloaderVersion: text(deviceinfo.QueryBootloaderVersion),
		AbiList:           text(deviceinfo.QueryAbiList),

		SecurityPatchTag:   text(deviceinfo.QuerySecurityPatchTag),
		DisplayVersion:     text(deviceinfo.QueryDisplayVersion),
		IncrementalVersion: text(deviceinfo.QueryIncrementalVersion),
		OSReleaseType:      text(deviceinfo.QueryOSReleaseType),
		OSFullName:         text(deviceinfo.QueryOSFullName),
		SDKAPIVersion:      p.Number(deviceinfo.QuerySDKAPIVersion),
		FirstAPIVersion:    p.Number(deviceinfo.QueryFirstAPIVersion),
		VersionID:          text(deviceinfo.QueryVersionID),
		BuildType:          text(deviceinfo.QueryBuildType),
		BuildUser:          text(deviceinfo.QueryBuildUser),
		BuildHost:          text(deviceinfo.QueryBuildHost),
		BuildTime:          text(deviceinfo.QueryBuildTime),
		BuildRootHash:      text(deviceinfo.QueryBuildRootHash),
	}
}

// CollectDistributionInfo reads the ISV distribution overlay from p.
func CollectDistributionInfo(p deviceinfo.Provider) models.DistributionInfo {
	name, _ := p.Text(deviceinfo.QueryDistributionOSName)
	version, _ := p.Text(deviceinfo.QueryDistributionOSVersion)
	releaseType, _ := p.Text(deviceinfo.QueryDistributionOSReleaseType)
	return models.DistributionInfo{
		Name:        name,
		Version:     version,
		APIVersion:  p.Number(deviceinfo.QueryDistributionOSAPIVersion),
		ReleaseType: releaseType,
	}
}

// CollectHostInfo gathers host facts through gopsutil.
func CollectHostInfo(ctx context.Context) (*models.HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	hi := &models.HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		Uptime:          info.Uptime,
	}
	if hi.OS == "" {
		hi.OS = runtime.GOOS
	}

	// CPU and memory are best effort; some sandboxes hide them.
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		hi.CPUCount = n
	} else {
		hi.CPUCount = runtime.NumCPU()
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		hi.MemoryTotal = vm.Total
	}

	return hi, nil
}

// Collect assembles a device report. Failing to read host facts is logged and
// leaves the host section empty.
func Collect(ctx context.Context, p deviceinfo.Provider, opts Options) *models.DeviceReport {
	logger := opts.Logger
	if logger == nil {
		logger = utils.Default
	}

	report := models.NewDeviceReport(opts.AgentVersion)
	report.Supported = opts.Supported
	if !opts.Supported {
		logger.LogWarn("Native deviceinfo is not available on this platform", map[string]string{
			"goos":   runtime.GOOS,
			"goarch": runtime.GOARCH,
		})
	}

	report.Device = CollectDeviceInfo(p)
	report.Distribution = CollectDistributionInfo(p)
	logger.LogInfo("Device information collected", map[string]string{
		"device_type": report.Device.DeviceType,
		"os":          report.Device.OSFullName,
	})

	if opts.IncludeHost {
		hi, err := CollectHostInfo(ctx)
		if err != nil {
			logger.LogWarn("Host information unavailable", map[string]string{"error": err.Error()})
		} else {
			report.Host = hi
		}
	}

	return report
}
