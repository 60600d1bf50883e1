// Package main implements the deviceinfo agent that reports OpenHarmony device identity.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/ilexum-group/ohos-deviceinfo/internal/collector"
	"github.com/ilexum-group/ohos-deviceinfo/internal/config"
	"github.com/ilexum-group/ohos-deviceinfo/internal/export"
	"github.com/ilexum-group/ohos-deviceinfo/internal/sender"
	"github.com/ilexum-group/ohos-deviceinfo/internal/store"
	"github.com/ilexum-group/ohos-deviceinfo/internal/utils"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/deviceinfo"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/models"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if utils.DefaultLogger == nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			utils.LogError("Agent failed", map[string]string{"error": err.Error()})
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadFromFlags(args)
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "ohos-deviceinfo %s (native deviceinfo: %t)\n", Version, deviceinfo.Supported)
		return nil
	}

	utils.InitDefaultLogger(stderr, cfg.Verbose)
	utils.LogInfo("Starting deviceinfo agent", map[string]string{"version": Version})

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var provider deviceinfo.Provider = deviceinfo.Default()
	if cfg.Verbose {
		provider = collector.NewLoggingProvider(provider, utils.Default)
	}

	report := collector.Collect(ctx, provider, collector.Options{
		AgentVersion: Version,
		IncludeHost:  cfg.IncludeHost,
		Supported:    deviceinfo.Supported,
	})
	if err := report.Seal(); err != nil {
		return fmt.Errorf("failed to seal report: %w", err)
	}
	report.Logs = utils.GetLogs()

	if cfg.StorePath != "" {
		if err := saveReport(ctx, cfg.StorePath, report); err != nil {
			return err
		}
	}

	if cfg.SendEnabled() {
		if err := sender.SendData(ctx, cfg, report); err != nil {
			return err
		}
	}

	// The exported copy also carries the store and send lines.
	report.Logs = utils.GetLogs()
	return writeReport(cfg.OutputPath, stdout, format, report)
}

func saveReport(ctx context.Context, path string, report *models.DeviceReport) error {
	st, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	changed, err := st.Save(ctx, report)
	if err != nil {
		return err
	}
	utils.LogInfo("Report stored", map[string]string{
		"store":       path,
		"fingerprint": report.Fingerprint,
		"changed":     strconv.FormatBool(changed),
	})
	return nil
}

func writeReport(path string, stdout io.Writer, format export.Format, report *models.DeviceReport) error {
	if path == "" {
		return export.Encode(stdout, format, report)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "deviceinfo-"+report.ID+"."+format.Extension())
	}

	f, err := os.Create(path) //nolint:gosec // G304: output path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Encode(f, format, report); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	utils.LogInfo("Report written", map[string]string{"path": path, "format": string(format)})
	return nil
}
