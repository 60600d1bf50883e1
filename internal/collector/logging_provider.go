package collector

import (
	"strconv"
	"time"

	"github.com/ilexum-group/ohos-deviceinfo/internal/utils"
	"github.com/ilexum-group/ohos-deviceinfo/pkg/deviceinfo"
)

// LoggingProvider wraps a Provider and logs every query with its timing
type LoggingProvider struct {
	provider deviceinfo.Provider
	logger   utils.Logger
}

// NewLoggingProvider creates a LoggingProvider around p. A nil logger follows
// the default logger.
func NewLoggingProvider(p deviceinfo.Provider, logger utils.Logger) *LoggingProvider {
	if logger == nil {
		logger = utils.Default
	}
	return &LoggingProvider{provider: p, logger: logger}
}

func (lp *LoggingProvider) logQuery(q deviceinfo.Query, start time.Time, present bool) {
	lp.logger.LogDebug("deviceinfo query", map[string]string{
		"query":    q.String(),
		"present":  strconv.FormatBool(present),
		"duration": time.Since(start).String(),
	})
}

// Text implements deviceinfo.Provider.
func (lp *LoggingProvider) Text(q deviceinfo.Query) (string, bool) {
	start := time.Now()
	v, ok := lp.provider.Text(q)
	lp.logQuery(q, start, ok)
	return v, ok
}

// Number implements deviceinfo.Provider.
func (lp *LoggingProvider) Number(q deviceinfo.Query) uint32 {
	start := time.Now()
	v := lp.provider.Number(q)
	lp.logQuery(q, start, v != 0)
	return v
}
