package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/sbstp/smbconf"
	"github.com/sbstp/smbconf/conf"
	"github.com/sbstp/smbconf/loader"
	"github.com/sbstp/smbconf/parser"
	"github.com/sbstp/smbconf/transform"
)

type WatchCmd struct {
	File    string `arg:"" type:"existingfile" help:"Configuration file to watch."`
	Section string `arg:"" help:"Section name."`
	State   string `help:"Desired state to converge on." enum:"present,absent,commented" default:"present"`
	Option  string `help:"Option name."`
	Value   string `help:"Value, for --state=present."`
}

// Run converges the file on the desired state once, then re-converges every
// time the file changes on disk. Stops on SIGINT/SIGTERM.
func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	state, err := transform.ParseState(cmd.State)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(2)
	}

	req := transform.Request{
		Section: cmd.Section,
		State:   state,
		Option:  cmd.Option,
		Value:   cmd.Value,
	}
	if err := req.Validate(); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(2)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.converge(ctx, runCtx, req)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stderr, "watching %s", pathStyle.Render(cmd.File))

	// Debounce - editors often write files in multiple steps. The converge
	// runs on this goroutine, so one pass always finishes before the next
	// starts.
	const debounceDelay = 100 * time.Millisecond
	var debounce <-chan time.Time

	for {
		select {
		case <-runCtx.Done():
			printInfof(ctx.Stderr, "stopped watching %s", pathStyle.Render(cmd.File))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves).
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce = time.After(debounceDelay)

		case <-debounce:
			debounce = nil
			cmd.converge(ctx, runCtx, req)
			// Atomic saves replace the inode, dropping the watch.
			_ = watcher.Add(cmd.File)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

// converge re-applies the desired state and writes the file only when it has
// drifted. Failures are logged, not fatal; the watch keeps running.
func (cmd *WatchCmd) converge(ctx *kong.Context, runCtx context.Context, req transform.Request) {
	ldr := loader.New()

	source, err := ldr.Load(cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	if req.State == transform.Commented && commentTargetGone(runCtx, source, req) {
		// Once commented out, the target parses as plain comment lines; a
		// fresh fetch-or-create would grow the file on every pass.
		return
	}

	result, err := smbconf.Apply(runCtx, source, req)
	if err != nil {
		var notFound *conf.NotFoundError
		if req.State == transform.Absent && errors.As(err, &notFound) {
			// A missing target already satisfies absent.
			return
		}
		printError(ctx.Stderr, NewErrorRenderer(source).Render(err))
		return
	}

	if !result.Changed {
		return
	}

	if err := ldr.Save(cmd.File, []byte(result.Output)); err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}
	printSuccess(ctx.Stderr, fmt.Sprintf("%s %s re-converged", time.Now().Format(time.TimeOnly), pathStyle.Render(cmd.File)))
}

// commentTargetGone reports whether the comment edit's target no longer
// exists as an active section or option, which counts as converged.
func commentTargetGone(runCtx context.Context, source []byte, req transform.Request) bool {
	doc, err := parser.ParseBytes(runCtx, source)
	if err != nil {
		return false
	}
	if req.Option == "" {
		_, err = doc.Section(req.Section, false)
	} else {
		_, err = doc.Option(req.Section, req.Option, false)
	}
	return err != nil
}
