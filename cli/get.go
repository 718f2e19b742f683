package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/sbstp/smbconf/parser"
)

type GetCmd struct {
	File    FileOrStdin `arg:"" help:"Configuration file (use '-' for stdin)."`
	Section string      `arg:"" help:"Section name."`
	Option  string      `arg:"" help:"Option name."`
}

func (cmd *GetCmd) Run(ctx *kong.Context, globals *Globals) error {
	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := parser.ParseBytes(context.Background(), source)
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	opt, err := doc.Option(cmd.Section, cmd.Option, false)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	_, _ = fmt.Fprintln(ctx.Stdout, opt.Value)
	return nil
}
