// Package cli wires the check_springboot_actuator command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/check-actuator/actuator"
	"github.com/jonwraymond/check-actuator/auth"
	"github.com/jonwraymond/check-actuator/check"
	"github.com/jonwraymond/check-actuator/health"
	"github.com/jonwraymond/check-actuator/nagios"
	"github.com/jonwraymond/check-actuator/observe"
	"github.com/jonwraymond/check-actuator/secret"
)

// ServiceName identifies the plugin in telemetry.
const ServiceName = "check_springboot_actuator"

// shutdownTimeout bounds flushing telemetry after the check.
const shutdownTimeout = 5 * time.Second

// Options holds process-level dependencies of the command.
type Options struct {
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Execute runs the plugin with args and returns the process exit code.
// The Nagios line is written to opts.Stdout; logs go to opts.Stderr.
// Help and version output exit 0; invalid usage exits UNKNOWN.
func Execute(ctx context.Context, args []string, opts Options) int {
	code := int(health.StatusOK)
	root := NewRootCmd(opts, &code)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return usageError(opts.Stdout, err)
	}
	return code
}

// NewRootCmd builds the cobra root command. The exit code of a completed
// run is stored in code.
func NewRootCmd(opts Options, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ServiceName,
		Short: "Nagios plugin for Spring Boot Actuator health and metrics",
		Long: "Polls the Spring Boot Actuator health endpoint, or the metrics endpoints when\n" +
			"metrics are requested, and prints a Nagios status line with performance data.",
		Version:       opts.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			settings, err := loadSettings(v)
			if err != nil {
				return err
			}
			*code = run(cmd.Context(), settings, opts)
			return nil
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	registerFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, s Settings, opts Options) int {
	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName:     ServiceName,
		Version:         opts.Version,
		TraceExporter:   s.TraceExporter,
		MetricsExporter: s.MetricsExporter,
		LogLevel:        s.LogLevel,
		Writer:          opts.Stderr,
	})
	if err != nil {
		return usageError(opts.Stdout, err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := obs.Shutdown(ctx); err != nil {
			obs.Logger().Warn(ctx, "telemetry shutdown failed", observe.Field{Key: "error", Value: err})
		}
	}()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return usageError(opts.Stdout, err)
	}

	cfg, err := buildConfig(ctx, s)
	if err != nil {
		return usageError(opts.Stdout, err)
	}
	obs.Logger().Debug(ctx, "starting check",
		observe.Field{Key: "url", Value: cfg.Actuator.BaseURL},
		observe.Field{Key: "metrics", Value: cfg.Metrics},
		observe.Field{Key: "user", Value: cfg.Actuator.Credentials.Username},
	)

	runner, err := check.New(cfg, check.WithMiddleware(mw))
	if err != nil {
		return usageError(opts.Stdout, err)
	}

	out := runner.Run(ctx)
	if err := out.Write(opts.Stdout); err != nil {
		obs.Logger().Error(ctx, "write output failed", observe.Field{Key: "error", Value: err})
	}
	return out.ExitCode()
}

// buildConfig turns settings into a check configuration, resolving
// credential references and parsing thresholds.
func buildConfig(ctx context.Context, s Settings) (check.Config, error) {
	resolver, err := secret.DefaultRegistry.NewResolver(true, nil)
	if err != nil {
		return check.Config{}, err
	}
	defer func() { _ = resolver.Close() }()

	var creds auth.Credentials
	if s.UserCredentials != "" {
		raw, err := resolver.ResolveValue(ctx, s.UserCredentials)
		if err != nil {
			return check.Config{}, fmt.Errorf("resolve credentials: %w", err)
		}
		if creds, err = auth.ParseCredentials(raw); err != nil {
			return check.Config{}, err
		}
	}

	trustStore := s.TrustStore
	if trustStore != "" {
		if trustStore, err = resolver.ResolveValue(ctx, trustStore); err != nil {
			return check.Config{}, fmt.Errorf("resolve trust store: %w", err)
		}
	}

	thresholds, err := nagios.ParseThresholds(s.Thresholds)
	if err != nil {
		return check.Config{}, err
	}

	return check.Config{
		Actuator: actuator.Config{
			BaseURL:            s.URL,
			InsecureSkipVerify: s.NoCheckCertificate,
			TrustStore:         trustStore,
			Credentials:        creds,
		},
		Metrics:    s.Metrics,
		Thresholds: thresholds,
		Components: s.Components,
		Separator:  s.Separator,
		Timeout:    s.Timeout,
	}, nil
}

// usageError reports err as an UNKNOWN plugin result.
func usageError(w io.Writer, err error) int {
	out := nagios.NewOutput("")
	out.SetStatus(health.StatusUnknown)
	out.AddSummary(usageMessage(err))
	_ = out.Write(w)
	return out.ExitCode()
}

func usageMessage(err error) string {
	if errors.Is(err, actuator.ErrTrustStore) || errors.Is(err, actuator.ErrInvalidURL) {
		return "invalid configuration: " + err.Error()
	}
	return err.Error()
}
