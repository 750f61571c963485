package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonwraymond/check-actuator/check"
	"github.com/jonwraymond/check-actuator/health"
	"github.com/jonwraymond/check-actuator/nagios"
	"github.com/jonwraymond/check-actuator/resilience"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. ACTUATOR_CHECK_URL or ACTUATOR_CHECK_USER_CREDENTIALS.
const EnvPrefix = "ACTUATOR_CHECK"

// Configuration keys. Flags carry the same names.
const (
	keyURL                = "url"
	keyNoCheckCertificate = "no-check-certificate"
	keyTrustStore         = "trust-store"
	keyMetrics            = "metrics"
	keyUserCredentials    = "user-credentials"
	keyThresholds         = "th"
	keyComponents         = "components"
	keySeparator          = "separator"
	keyTimeout            = "timeout"
	keyConfig             = "config"
	keyVerbose            = "verbose"
	keyLogLevel           = "log-level"
	keyTraceExporter      = "trace-exporter"
	keyMetricsExporter    = "metrics-exporter"
)

const (
	defaultURL      = "http://localhost:8080"
	defaultLogLevel = "error"
)

// Settings is the resolved plugin configuration.
type Settings struct {
	URL                string
	NoCheckCertificate bool
	TrustStore         string
	Metrics            []string
	UserCredentials    string
	Thresholds         []string
	Components         []string
	Separator          string
	Timeout            time.Duration
	Verbose            bool
	LogLevel           string
	TraceExporter      string
	MetricsExporter    string
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringP(keyURL, "U", defaultURL, "Base URL of the actuator endpoints")
	fs.BoolP(keyNoCheckCertificate, "N", false, "Do not verify the server TLS certificate")
	fs.StringP(keyTrustStore, "t", "", "PEM file with the CA certificates to trust")
	fs.StringSliceP(keyMetrics, "m", nil, "Comma separated metrics to report instead of health")
	fs.StringP(keyUserCredentials, "u", "", "Basic auth credentials as user:password (secretref and ${VAR} allowed)")
	fs.StringArray(keyThresholds, nil, "Threshold metric=<label>,ok=<range>,warning=<range>,critical=<range> (repeatable)")
	fs.StringSlice(keyComponents, nil, "Health components to report (default: "+strings.Join(health.DefaultComponents, ",")+")")
	fs.String(keySeparator, nagios.DefaultSeparator, "Separator between summary fragments")
	fs.Duration(keyTimeout, resilience.DefaultTimeout, "Overall deadline for the check")
	fs.String(keyConfig, "", "YAML configuration file")
	fs.BoolP(keyVerbose, "v", false, "Log debug output to stderr")
	fs.String(keyLogLevel, defaultLogLevel, "Log level: debug, info, warn or error")
	fs.String(keyTraceExporter, "none", "Trace exporter: otlp, jaeger, stdout or none")
	fs.String(keyMetricsExporter, "none", "Metrics exporter: otlp, stdout or none")
}

// newViper binds fs to a viper instance reading ACTUATOR_CHECK_* variables.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// loadSettings reads the configuration file named by the config key, when
// set, and resolves every key by viper precedence.
func loadSettings(v *viper.Viper) (Settings, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	s := Settings{
		URL:                strings.TrimSpace(v.GetString(keyURL)),
		NoCheckCertificate: v.GetBool(keyNoCheckCertificate),
		TrustStore:         strings.TrimSpace(v.GetString(keyTrustStore)),
		Metrics:            splitList(v.GetStringSlice(keyMetrics)),
		UserCredentials:    v.GetString(keyUserCredentials),
		Thresholds:         v.GetStringSlice(keyThresholds),
		Components:         splitList(v.GetStringSlice(keyComponents)),
		Separator:          v.GetString(keySeparator),
		Timeout:            v.GetDuration(keyTimeout),
		Verbose:            v.GetBool(keyVerbose),
		LogLevel:           strings.ToLower(v.GetString(keyLogLevel)),
		TraceExporter:      strings.ToLower(v.GetString(keyTraceExporter)),
		MetricsExporter:    strings.ToLower(v.GetString(keyMetricsExporter)),
	}
	if s.Verbose {
		s.LogLevel = "debug"
	}
	if s.URL == "" {
		s.URL = defaultURL
	}
	if s.Timeout <= 0 {
		return Settings{}, fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	return s, nil
}

// splitList flattens comma separated entries, as environment variables and
// YAML scalars arrive unsplit.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, check.SplitNames(v)...)
	}
	return out
}
