// Package flags holds the options shared by the generating subcommands.
package flags

import (
	"log/slog"
	"os"

	"github.com/wmcgee3/zosmf/zosmfgen"
)

// Options override values from zosmfgen.yaml.
type Options struct {
	Packages    []string `arg:"" optional:"" help:"Package patterns to read (default: from config, else \".\")."`
	Dir         string   `help:"Directory holding zosmfgen.yaml; patterns resolve from here." short:"C" default:"."`
	Provider    string   `help:"Schema provider: source or cue."`
	Output      string   `help:"Name of the generated file." short:"o"`
	CUE         string   `help:"CUE schema file for the cue provider." name:"cue" type:"path"`
	PackageName string   `help:"Go package name for the cue provider."`
	Verbose     bool     `help:"Log every generated file." short:"v"`
}

// Config loads the configuration file and applies the flags on top.
func (o *Options) Config() (*zosmfgen.Config, error) {
	cfg, err := zosmfgen.LoadConfig(o.Dir)
	if err != nil {
		return nil, err
	}
	if len(o.Packages) > 0 {
		cfg.Packages = o.Packages
	}
	if o.Provider != "" {
		cfg.Provider = o.Provider
	}
	if o.Output != "" {
		cfg.Output = o.Output
	}
	if o.CUE != "" {
		cfg.CUE = o.CUE
	}
	if o.PackageName != "" {
		cfg.PackageName = o.PackageName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Logger returns a stderr logger at the level the flags select.
func (o *Options) Logger() *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
