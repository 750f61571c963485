package nagios

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonwraymond/check-actuator/health"
)

// Range is an inclusive numeric interval. Inverted ranges match values
// outside the interval.
type Range struct {
	Start    float64
	End      float64
	Inverted bool
}

// ParseRange parses "start..end", a single number "n" (n..n), with optional
// "inf"/"-inf" bounds and a leading "^" to invert the range. An empty bound
// is unbounded on that side.
func ParseRange(s string) (Range, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Range{}, fmt.Errorf("%w: empty", ErrInvalidRange)
	}

	var r Range
	if strings.HasPrefix(raw, "^") {
		r.Inverted = true
		raw = raw[1:]
	}

	start, end, found := strings.Cut(raw, "..")
	if !found {
		v, err := parseBound(start, 0)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
		}
		r.Start, r.End = v, v
		return r, nil
	}

	var err error
	if r.Start, err = parseBound(start, math.Inf(-1)); err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	if r.End, err = parseBound(end, math.Inf(1)); err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	if r.Start > r.End {
		return Range{}, fmt.Errorf("%w: start greater than end in %q", ErrInvalidRange, s)
	}
	return r, nil
}

func parseBound(s string, empty float64) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		if math.IsInf(empty, 0) {
			return empty, nil
		}
		return 0, ErrInvalidRange
	case "inf", "+inf", "infinity":
		return math.Inf(1), nil
	case "-inf", "~", "-infinity":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Contains reports whether v matches the range.
func (r Range) Contains(v float64) bool {
	in := v >= r.Start && v <= r.End
	if r.Inverted {
		return !in
	}
	return in
}

// String renders the range in the syntax accepted by ParseRange.
func (r Range) String() string {
	s := formatBound(r.Start) + ".." + formatBound(r.End)
	if r.Inverted {
		return "^" + s
	}
	return s
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return FormatValue(v)
	}
}

// Threshold maps ranges of one metric to statuses.
type Threshold struct {
	Metric   string
	OK       *Range
	Warning  *Range
	Critical *Range
}

// ParseThreshold parses "metric=<label>,ok=<range>,warning=<range>,critical=<range>".
// Only metric is required; "warn" and "crit" are accepted as aliases.
func ParseThreshold(s string) (Threshold, error) {
	var th Threshold
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Threshold{}, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidThreshold, part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if key == "metric" {
			th.Metric = value
			continue
		}

		r, err := ParseRange(value)
		if err != nil {
			return Threshold{}, fmt.Errorf("%w: %s: %v", ErrInvalidThreshold, key, err)
		}
		switch key {
		case "ok":
			th.OK = &r
		case "warning", "warn":
			th.Warning = &r
		case "critical", "crit":
			th.Critical = &r
		default:
			return Threshold{}, fmt.Errorf("%w: unknown key %q", ErrInvalidThreshold, key)
		}
	}

	if th.Metric == "" {
		return Threshold{}, fmt.Errorf("%w: metric is required in %q", ErrInvalidThreshold, s)
	}
	return th, nil
}

// ParseThresholds parses every definition in defs.
func ParseThresholds(defs []string) ([]Threshold, error) {
	out := make([]Threshold, 0, len(defs))
	for _, def := range defs {
		if strings.TrimSpace(def) == "" {
			continue
		}
		th, err := ParseThreshold(def)
		if err != nil {
			return nil, err
		}
		out = append(out, th)
	}
	return out, nil
}

// Evaluate returns the status of v. The ok range is tried first, then
// critical, then warning. A value matching none of them while an ok range is
// configured is CRITICAL.
func (t Threshold) Evaluate(v float64) health.Status {
	switch {
	case t.OK != nil && t.OK.Contains(v):
		return health.StatusOK
	case t.Critical != nil && t.Critical.Contains(v):
		return health.StatusCritical
	case t.Warning != nil && t.Warning.Contains(v):
		return health.StatusWarning
	case t.OK != nil:
		return health.StatusCritical
	default:
		return health.StatusOK
	}
}
