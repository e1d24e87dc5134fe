package check

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/wmcgee3/zosmf/cmd/zosmfgen/internal/flags"
	"github.com/wmcgee3/zosmf/zosmfgen"
	"github.com/wmcgee3/zosmf/zosmfgen/ir"
	"github.com/wmcgee3/zosmf/zosmfgen/sink"
)

type Cmd struct {
	flags.Options `embed:""`
}

func (c *Cmd) Run() error {
	successColor := color.New(color.FgGreen, color.Bold)
	warningColor := color.New(color.FgYellow)
	errorColor := color.New(color.FgRed, color.Bold)

	cfg, err := c.Config()
	if err != nil {
		return err
	}

	out := sink.NewMemorySink()
	result, err := zosmfgen.FromConfig(*cfg).
		WithLogger(c.Logger()).
		Generate(context.Background(), out)
	if err != nil {
		printErrors(errorColor, err)
		return errors.New("schema check failed")
	}

	for _, w := range result.Warnings {
		where := w.Endpoint
		if w.Source != nil {
			where = w.Source.String()
		}
		warningColor.Fprintf(os.Stderr, "! %s: %s [%s]\n", where, w.Message, w.Code)
	}

	stale, err := out.Stale(cfg.Dir)
	if err != nil {
		return err
	}
	for _, p := range stale {
		errorColor.Fprintf(os.Stderr, "✗ %s is out of date\n", p)
	}
	if len(stale) > 0 {
		return fmt.Errorf("%d generated files out of date; run zosmfgen gen", len(stale))
	}

	successColor.Printf("✓ %d generated files up to date\n", len(result.Files))
	return nil
}

func printErrors(c *color.Color, err error) {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		c.Fprintf(os.Stderr, "✗ %v\n", err)
		return
	}
	for _, e := range joined.Unwrap() {
		var verr *ir.ValidationError
		if errors.As(e, &verr) {
			c.Fprintf(os.Stderr, "✗ %s [%s]\n", verr.Message, verr.Code)
			continue
		}
		c.Fprintf(os.Stderr, "✗ %v\n", e)
	}
}
