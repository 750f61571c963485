package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newHealthServer(t *testing.T, user, pass string, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user != "" {
			u, p, ok := r.BasicAuth()
			if !ok || u != user || p != pass {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		}
		w.Header().Set("Content-Type", "application/vnd.spring-boot.actuator.v3+json")
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(body))
		case "/metrics/jvm.threads.live":
			_, _ = w.Write([]byte(`{"measurements":[{"statistic":"VALUE","value":42}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, Options{
		Version: "test",
		Stdout:  &stdout,
		Stderr:  &stderr,
	})
	return stdout.String(), stderr.String(), code
}

func TestExecute_HealthOK(t *testing.T) {
	server := newHealthServer(t, "", "", `{"status":"UP","components":{"db":{"status":"UP"}}}`)

	out, _, code := execute(t, "-U", server.URL)

	if out != "OK - global status is UP. db status is UP\n" {
		t.Errorf("stdout = %q", out)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
}

func TestExecute_HealthDown(t *testing.T) {
	server := newHealthServer(t, "", "", `{"status":"DOWN"}`)

	out, _, code := execute(t, "--url", server.URL+"/")

	if !strings.HasPrefix(out, "CRITICAL - global status is DOWN") {
		t.Errorf("stdout = %q", out)
	}
	if code != 2 {
		t.Errorf("code = %d, want 2", code)
	}
}

func TestExecute_Credentials(t *testing.T) {
	server := newHealthServer(t, "admin", "s3:cret", `{"status":"UP"}`)

	t.Run("flag", func(t *testing.T) {
		_, _, code := execute(t, "-U", server.URL, "-u", "admin:s3:cret")
		if code != 0 {
			t.Errorf("code = %d, want 0", code)
		}
	})

	t.Run("secret reference", func(t *testing.T) {
		t.Setenv("CLI_TEST_PASSWORD", "s3:cret")
		_, _, code := execute(t, "-U", server.URL, "-u", "admin:secretref:env:CLI_TEST_PASSWORD")
		if code != 0 {
			t.Errorf("code = %d, want 0", code)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("ACTUATOR_CHECK_USER_CREDENTIALS", "admin:s3:cret")
		_, _, code := execute(t, "-U", server.URL)
		if code != 0 {
			t.Errorf("code = %d, want 0", code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		out, _, code := execute(t, "-U", server.URL, "-u", "admin:nope")
		if code != 2 || !strings.Contains(out, "unexpected status 401") {
			t.Errorf("stdout = %q, code = %d", out, code)
		}
	})
}

func TestExecute_CredentialsWithDollar(t *testing.T) {
	server := newHealthServer(t, "admin", "pa$word1", `{"status":"UP"}`)

	out, _, code := execute(t, "-U", server.URL, "-u", "admin:pa$word1")
	if code != 0 {
		t.Errorf("stdout = %q, code = %d, want 0", out, code)
	}
}

func TestExecute_MetricsAndThresholds(t *testing.T) {
	server := newHealthServer(t, "", "", `{"status":"UP"}`)

	out, _, code := execute(t,
		"-U", server.URL,
		"-m", "jvm.threads.live",
		"--th", "metric=jvm.threads.live.value,warning=40..100,critical=100..inf",
	)

	want := "WARNING - jvm.threads.live.value is 42. WARNING jvm.threads.live.value is 42 | jvm.threads.live.value=42\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
}

func TestExecute_ConfigFile(t *testing.T) {
	server := newHealthServer(t, "", "", `{"status":"UP","components":{"db":{"status":"UP"},"ping":{"status":"UP"}}}`)

	path := filepath.Join(t.TempDir(), "check.yaml")
	content := "url: " + server.URL + "\ncomponents:\n  - ping\nseparator: \", \"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, _, code := execute(t, "--config", path)

	if out != "OK - global status is UP, ping status is UP\n" {
		t.Errorf("stdout = %q", out)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
}

func TestExecute_FlagOverridesEnvironment(t *testing.T) {
	server := newHealthServer(t, "", "", `{"status":"UP"}`)
	t.Setenv("ACTUATOR_CHECK_URL", "http://127.0.0.1:1")

	_, _, code := execute(t, "-U", server.URL)
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
}

func TestExecute_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad threshold", []string{"--th", "warning=1..2"}, "UNKNOWN - nagios: invalid threshold"},
		{"bad credentials", []string{"-u", "nocolon"}, "UNKNOWN - auth: invalid credentials"},
		{"missing trust store", []string{"-t", "/nonexistent/ca.pem"}, "UNKNOWN - invalid configuration"},
		{"bad url", []string{"-U", "localhost"}, "UNKNOWN - invalid configuration"},
		{"unknown flag", []string{"--bogus"}, "UNKNOWN - unknown flag"},
		{"bad exporter", []string{"--trace-exporter", "zipkin"}, "UNKNOWN - observe"},
		{"missing config", []string{"--config", "/nonexistent/check.yaml"}, "UNKNOWN - read config"},
		{"unresolved secret", []string{"-u", "admin:secretref:env:CLI_TEST_UNSET_VAR"}, "UNKNOWN - resolve credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, code := execute(t, tt.args...)
			if code != 3 {
				t.Errorf("code = %d, want 3", code)
			}
			if !strings.HasPrefix(out, tt.want) {
				t.Errorf("stdout = %q, want prefix %q", out, tt.want)
			}
		})
	}
}

func TestExecute_Version(t *testing.T) {
	out, _, code := execute(t, "--version")
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
	if !strings.Contains(out, "test") {
		t.Errorf("stdout = %q", out)
	}
}

func TestExecute_VerboseLogsToStderr(t *testing.T) {
	server := newHealthServer(t, "", "", `{"status":"UP"}`)

	out, logs, code := execute(t, "-U", server.URL, "-v", "-u", "admin:hidden")

	if code != 0 {
		t.Fatalf("code = %d, stdout = %q", code, out)
	}
	if strings.Contains(out, `"level"`) {
		t.Errorf("stdout contains log output: %q", out)
	}
	if !strings.Contains(logs, "starting check") {
		t.Errorf("stderr = %q, want debug log", logs)
	}
	if strings.Contains(logs, "hidden") {
		t.Errorf("stderr leaks password: %q", logs)
	}
}
