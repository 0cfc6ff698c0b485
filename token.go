package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/beka-birhanu/vinom-jumpmaze/config"
	"github.com/beka-birhanu/vinom-jumpmaze/infrastruture/token"
)

// runToken mints a submitter token for the protected routes.
func runToken(out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("token", flag.ContinueOnError)
	flagSet.SetOutput(out)
	subject := flagSet.String("subject", "", "Name of the submitter the token is issued to.")
	ttl := flagSet.Duration("ttl", 24*time.Hour, "Token lifetime.")
	secret := flagSet.String("jwt-secret", config.Envs.JWTSecret, "Signing secret (defaults to JWT_SECRET).")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if *secret == "" {
		return &ExitError{Code: 2, Message: config.ErrMissingJWTSecret.Error()}
	}
	if *subject == "" {
		return &ExitError{Code: 2, Message: "token: -subject is required"}
	}

	signed, err := token.NewJwtService(*secret, config.Envs.JWTIssuer).Generate(*subject, *ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, signed)
	return nil
}
