package gen

import (
	"context"
	"fmt"

	"github.com/wmcgee3/zosmf/cmd/zosmfgen/internal/flags"
	"github.com/wmcgee3/zosmf/zosmfgen"
	"github.com/wmcgee3/zosmf/zosmfgen/sink"
)

type Cmd struct {
	flags.Options `embed:""`
}

func (c *Cmd) Run() error {
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	logger := c.Logger()

	result, err := zosmfgen.FromConfig(*cfg).
		WithLogger(logger).
		Generate(context.Background(), sink.NewFilesystemSink(cfg.Dir))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	for _, w := range result.Warnings {
		logger.Warn(w.Message, "code", w.Code, "endpoint", w.Endpoint)
	}
	logger.Info("generated builders", "files", len(result.Files))
	return nil
}
