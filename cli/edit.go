package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/sbstp/smbconf"
	"github.com/sbstp/smbconf/loader"
	"github.com/sbstp/smbconf/output"
	"github.com/sbstp/smbconf/telemetry"
	"github.com/sbstp/smbconf/transform"
)

// editFlags are shared by every command that mutates a file.
type editFlags struct {
	Check bool `help:"Dry run: report whether a change would be made without writing anything."`
	Diff  bool `help:"Print a unified diff of the change."`
}

// runEdit is the shared pipeline behind set, remove, and comment: validate
// the request, apply it to the file's contents, and persist the result when
// it changed anything. With stdin input the edited text goes to stdout and
// nothing is written to disk.
func runEdit(ctx *kong.Context, globals *Globals, file *FileOrStdin, flags editFlags, req transform.Request) error {
	if err := req.Validate(); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(2)
	}

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

	source, err := file.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	result, err := smbconf.Apply(runCtx, source, req)
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "edit failed")
		return NewCommandError(1)
	}

	if flags.Diff && result.Changed {
		_, _ = fmt.Fprint(ctx.Stdout, unifiedDiff(file.Filename, string(source), result.Output))
	}

	if file.IsStdin() {
		_, _ = fmt.Fprint(ctx.Stdout, result.Output)
		return nil
	}

	path := pathStyle.Render(file.Filename)
	switch {
	case !result.Changed:
		printInfof(ctx.Stderr, "%s already converged", path)
	case flags.Check:
		printInfof(ctx.Stderr, "%s would change (check mode, not written)", path)
	default:
		if err := loader.New().Save(file.Filename, []byte(result.Output)); err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
		printSuccess(ctx.Stderr, fmt.Sprintf("%s updated", path))
	}

	return nil
}
