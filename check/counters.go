package check

import (
	"sort"
	"strings"
)

const statusCounterPrefix = "counter.status"

// statusCode extracts the HTTP status code from a metric name of the form
// counter.status.<code>.<path>.
func statusCode(name string) (string, bool) {
	if !strings.HasPrefix(name, statusCounterPrefix) {
		return "", false
	}
	parts := strings.SplitN(name, ".", 5)
	if len(parts) < 3 || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

// statusCounters sums counter.status metrics per HTTP status code.
type statusCounters map[string]float64

func (c statusCounters) add(code string, v float64) {
	c[code] += v
}

// codes returns the recorded status codes, sorted.
func (c statusCounters) codes() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
