package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/wmcgee3/zosmf/cmd/zosmfgen/internal/check"
	"github.com/wmcgee3/zosmf/cmd/zosmfgen/internal/gen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate request builders for annotated packages."`
	Check   check.Cmd  `cmd:"" help:"Validate endpoint schemas and report stale generated files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("zosmfgen"),
		kong.Description("Generates fluent z/OSMF request builders from endpoint schemas."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
