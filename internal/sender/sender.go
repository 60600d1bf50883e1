// Package sender delivers device reports to a collection server.
package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ilexum-group/ohos-deviceinfo/internal/config"
	"github.com/ilexum-group/ohos-deviceinfo/internal/utils"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/models"
)

// UserAgent identifies the agent to the server.
const UserAgent = "OHOS-DeviceInfo-Agent/1.0"

// SendData posts the report as JSON to cfg.ServerURL.
func SendData(ctx context.Context, cfg *config.Config, report *models.DeviceReport) error {
	utils.LogInfo("Preparing to send report to server", map[string]string{"report_id": report.ID})

	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.ServerURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cfg.AgentToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.AgentToken)
	}
	req.Header.Set("User-Agent", UserAgent)

	utils.LogInfo("Sending request to server", map[string]string{"url": cfg.ServerURL})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		utils.LogError("Server returned non-OK status", map[string]string{"status_code": strconv.Itoa(resp.StatusCode)})
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	utils.LogInfo("Report sent successfully to server", map[string]string{"report_id": report.ID})
	return nil
}
