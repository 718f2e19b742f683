package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/sbstp/smbconf"
	"github.com/sbstp/smbconf/formatter"
	"github.com/sbstp/smbconf/loader"
	"github.com/sbstp/smbconf/output"
	"github.com/sbstp/smbconf/telemetry"
)

func formatterOptions(indent string) []formatter.Option {
	if indent == formatter.DefaultIndent {
		return nil
	}
	return []formatter.Option{formatter.WithIndent(indent)}
}

type FmtCmd struct {
	editFlags

	File   FileOrStdin `arg:"" help:"Configuration file (use '-' for stdin)."`
	Indent string      `help:"Indent unit applied once per nesting level." default:"  "`
}

// Run parses the file and re-renders it canonically: section headers at one
// indent unit, options at two, "name = value" spacing. Comments and blank
// lines come through untouched.
func (cmd *FmtCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	result, err := smbconf.Render(runCtx, source, formatterOptions(cmd.Indent)...)
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	if cmd.Diff && result.Changed {
		_, _ = fmt.Fprint(ctx.Stdout, unifiedDiff(cmd.File.Filename, string(source), result.Output))
	}

	if cmd.File.IsStdin() {
		_, _ = fmt.Fprint(ctx.Stdout, result.Output)
		return nil
	}

	path := pathStyle.Render(cmd.File.Filename)
	switch {
	case !result.Changed:
		printInfof(ctx.Stderr, "%s already canonical", path)
	case cmd.Check:
		printInfof(ctx.Stderr, "%s would change (check mode, not written)", path)
	default:
		if err := loader.New().Save(cmd.File.Filename, []byte(result.Output)); err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
		printSuccess(ctx.Stderr, fmt.Sprintf("%s formatted", path))
	}

	return nil
}
