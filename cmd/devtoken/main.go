// Command devtoken mints a bearer token signed with the configured JWT
// secret, for calling write endpoints of a local server with auth enabled.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/phrazzld/boardgame-api/internal/config"
	"github.com/phrazzld/boardgame-api/internal/service/auth"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("devtoken", pflag.ContinueOnError)
	subject := flags.StringP("subject", "s", "dev", "token subject")
	ttl := flags.DurationP("ttl", "t", time.Hour, "token lifetime")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return mint(cfg.Auth, *subject, *ttl, clock.New(), out)
}

func mint(cfg config.AuthConfig, subject string, ttl time.Duration, clk clock.Clock, out io.Writer) error {
	svc, err := auth.NewJWTService(cfg, clk)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	token, err := svc.GenerateToken(context.Background(), subject, ttl)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
