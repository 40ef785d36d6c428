// Command checkwatch follows a ComplyCube check until it finishes and, given the
// applicant's details, prints the verification verdict.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	"github.com/DSACMS/kyc-onboarding-api/pkg/verification"
)

type pollLine struct {
	CheckID string `json:"checkId"`
	Status  string `json:"status"`
	At      string `json:"at"`
}

type resultLine struct {
	CheckID string               `json:"checkId"`
	Status  string               `json:"status"`
	Outcome verification.Outcome `json:"outcome,omitempty"`
}

type options struct {
	checkID  string
	interval time.Duration
	timeout  time.Duration
	claim    verification.Claim
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("checkwatch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.checkID, "check", "", "ComplyCube check ID (required)")
	fs.DurationVar(&opts.interval, "interval", complycube.DefaultPollInterval, "Delay between polls")
	fs.DurationVar(&opts.timeout, "timeout", 10*time.Minute, "Give up after this long (0 waits indefinitely)")
	fs.StringVar(&opts.claim.FirstName, "first-name", "", "Applicant first name; enables the verdict")
	fs.StringVar(&opts.claim.LastName, "last-name", "", "Applicant last name")
	fs.StringVar(&opts.claim.DateOfBirth, "dob", "", "Applicant date of birth, YYYY-MM-DD")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.checkID == "" {
		fs.Usage()
		return options{}, errors.New("-check is required")
	}

	return opts, nil
}

// run prints one JSON line per poll and a final line with the verdict when a
// claim was given.
func run(ctx context.Context, opts options, getter complycube.CheckGetter, out io.Writer) error {
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	enc := json.NewEncoder(out)

	result, err := complycube.WaitForCheck(ctx, getter, opts.checkID, opts.interval, func(r complycube.CheckResult) {
		_ = enc.Encode(pollLine{
			CheckID: opts.checkID,
			Status:  r.Status,
			At:      time.Now().UTC().Format(time.RFC3339),
		})
	})
	if err != nil {
		return err
	}

	line := resultLine{CheckID: opts.checkID, Status: result.Status}
	if opts.claim.FirstName != "" {
		line.Outcome = verification.Decide(opts.claim, result)
	}

	return enc.Encode(line)
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := core.LoadEnv(); err != nil {
		log.Printf("env files: %v", err)
	}

	cfg, err := core.NewConfigFromEnv(core.WithOtelDisable())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := core.NewLoggerTo(cfg, os.Stderr).With(slog.String("component", "checkwatch"))

	svc, err := complycube.New(&cfg.ComplyCube, complycube.Options{Logger: logger})
	if err != nil {
		log.Fatalf("complycube: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, svc, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "checkwatch: %v\n", err)
		stop()
		os.Exit(1)
	}
}
