// Command laundryctl is a terminal front end for the laundry API.
//
//	laundryctl [-api URL] [-yes] <resource> <list|add|edit|delete> [flags]
//
// Resources: customers, packages, payment-methods, perfumes, orders.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kendall-kelly/laundry-api/client"
	"github.com/kendall-kelly/laundry-api/dashboard"
	"github.com/rs/zerolog"
)

const defaultAPI = "http://localhost:8080/api/v1"

var errUsage = errors.New("usage: laundryctl [-api URL] [-yes] <customers|packages|payment-methods|perfumes|orders> <list|add|edit|delete> [flags]")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env is what a command needs to talk to the user and the API
type env struct {
	client    *client.Client
	notifier  dashboard.Notifier
	confirmer dashboard.Confirmer
	out       io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("laundryctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	apiURL := global.String("api", envOr("LAUNDRY_API_URL", defaultAPI), "API base URL")
	assumeYes := global.Bool("yes", false, "do not ask before deleting")
	timeout := global.Duration("timeout", 15*time.Second, "per-request timeout")
	if err := global.Parse(args); err != nil {
		return 2
	}

	rest := global.Args()
	if len(rest) < 2 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	e := &env{
		client:    client.New(*apiURL, client.WithTimeout(*timeout), client.WithLogger(logger.Level(zerolog.WarnLevel))),
		notifier:  dashboard.LogNotifier{Logger: logger},
		confirmer: &dashboard.PromptConfirmer{In: stdin, Out: stdout, AssumeYes: *assumeYes},
		out:       stdout,
	}

	resource, action := rest[0], rest[1]
	cmd, ok := commands[resource]
	if !ok {
		fmt.Fprintf(stderr, "unknown resource %q\n%v\n", resource, errUsage)
		return 2
	}

	fs := flag.NewFlagSet(resource+" "+action, flag.ContinueOnError)
	fs.SetOutput(stderr)
	err := cmd(context.Background(), e, action, fs, rest[2:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return 2
	case errors.Is(err, errFailed):
		return 1
	}
	fmt.Fprintln(stderr, err)
	return 1
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
