// Command check_springboot_actuator is a Nagios plugin for Spring Boot
// Actuator endpoints.
//
//	check_springboot_actuator -U http://localhost:8080/actuator
//	check_springboot_actuator -U http://localhost:8080/actuator -m jvm.memory.used \
//	    --th "metric=jvm.memory.used.value,warning=500000000..inf"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonwraymond/check-actuator/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.Options{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	stop()
	os.Exit(code)
}
