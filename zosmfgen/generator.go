// Package zosmfgen generates fluent request builders from endpoint schemas.
//
// A schema comes either from annotated builder structs in Go source
// (the source provider) or from a CUE endpoint list (the cue provider).
// It is validated, and a zz_endpoints.go file is emitted next to the
// schema for every package that declares endpoints:
//
//	err := zosmfgen.FromPackages("./datasets", "./jobs").
//	    WithLogger(logger).
//	    ToDir(".")
package zosmfgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wmcgee3/zosmf/zosmfgen/golang"
	"github.com/wmcgee3/zosmf/zosmfgen/ir"
	"github.com/wmcgee3/zosmf/zosmfgen/provider"
	"github.com/wmcgee3/zosmf/zosmfgen/sink"
)

// Generator provides a fluent API for code generation.
// Create one with FromConfig, FromPackages or FromCUE.
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

// FromConfig creates a Generator for a loaded configuration.
func FromConfig(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// FromPackages creates a Generator that reads annotated builders from the
// given package patterns.
func FromPackages(patterns ...string) *Generator {
	cfg := DefaultConfig()
	cfg.Packages = patterns
	return &Generator{cfg: cfg}
}

// FromCUE creates a Generator that reads the endpoint list in file and
// emits package pkgName into the file's directory.
func FromCUE(file, pkgName string) *Generator {
	cfg := DefaultConfig()
	cfg.Provider = ProviderCUE
	cfg.CUE = file
	cfg.PackageName = pkgName
	cfg.Packages = nil
	return &Generator{cfg: cfg}
}

// Output sets the generated file name.
func (g *Generator) Output(name string) *Generator {
	g.cfg.Output = name
	return g
}

// Dir sets the directory that package patterns are resolved in.
func (g *Generator) Dir(dir string) *Generator {
	g.cfg.Dir = dir
	return g
}

// WithLogger sets the logger for progress messages.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.logger = logger
	return g
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}

// Result summarizes one generation run.
type Result struct {
	// Files are the sink paths written, in package order.
	Files []string

	Warnings []ir.Warning
}

// Schemas extracts and validates the schemas without emitting anything.
// Validation failures are returned joined; each is an *ir.ValidationError.
func (g *Generator) Schemas(ctx context.Context) ([]*ir.Schema, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	var schemas []*ir.Schema
	switch g.cfg.Provider {
	case ProviderCUE:
		dir, err := filepath.Abs(filepath.Dir(g.cfg.CUE))
		if err != nil {
			return nil, err
		}
		p := &provider.CUEProvider{}
		schema, err := p.BuildSchema(ctx, provider.CUEInputOptions{
			File:    g.cfg.CUE,
			Package: ir.PackageInfo{Name: g.cfg.PackageName, Dir: dir},
		})
		if err != nil {
			return nil, err
		}
		schemas = []*ir.Schema{schema}
	default:
		p := &provider.SourceProvider{}
		var err error
		schemas, err = p.BuildSchemas(ctx, provider.SourceInputOptions{
			Packages: g.cfg.Packages,
			Dir:      g.cfg.Dir,
		})
		if err != nil {
			return nil, err
		}
	}

	var errs []error
	for _, s := range schemas {
		errs = append(errs, s.Validate()...)
		s.Lint()
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return schemas, nil
}

// Generate emits one file per schema into out. Paths are relative to the
// configured directory. Packages are emitted concurrently.
func (g *Generator) Generate(ctx context.Context, out sink.OutputSink) (*Result, error) {
	schemas, err := g.Schemas(ctx)
	if err != nil {
		return nil, err
	}
	root, err := filepath.Abs(g.cfg.Dir)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]string, len(schemas))}
	eg, ctx := errgroup.WithContext(ctx)
	for i, schema := range schemas {
		eg.Go(func() error {
			rel, err := outputPath(root, schema.Package.Dir, g.cfg.Output)
			if err != nil {
				return fmt.Errorf("%s: %w", schema.Package.Name, err)
			}
			content, err := golang.Emit(schema, filepath.Join(schema.Package.Dir, g.cfg.Output))
			if err != nil {
				return fmt.Errorf("%s: %w", schema.Package.Name, err)
			}
			if err := out.WriteFile(ctx, rel, content); err != nil {
				return err
			}
			g.log().Debug("generated builders",
				slog.String("package", schema.Package.Name),
				slog.String("file", rel),
				slog.Int("endpoints", len(schema.Endpoints)))
			result.Files[i] = rel
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, s := range schemas {
		result.Warnings = append(result.Warnings, s.Warnings...)
	}
	return result, nil
}

// ToDir generates into the configured directory and logs warnings.
func (g *Generator) ToDir(dir string) error {
	g.cfg.Dir = dir
	result, err := g.Generate(context.Background(), sink.NewFilesystemSink(dir))
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		g.log().Warn(w.Message, slog.String("code", w.Code))
	}
	return nil
}

// outputPath returns the slash separated path of name in dir, relative
// to root.
func outputPath(root, dir, name string) (string, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("package directory %s is outside %s", dir, root)
	}
	if rel == "." {
		return name, nil
	}
	return rel + "/" + name, nil
}
