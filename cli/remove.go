package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/sbstp/smbconf/transform"
)

type RemoveCmd struct {
	editFlags

	Force bool `help:"Do not prompt before removing an entire section."`

	File    FileOrStdin `arg:"" help:"Configuration file (use '-' for stdin)."`
	Section string      `arg:"" help:"Section name."`
	Option  string      `arg:"" optional:"" help:"Option name. Omit to remove the whole section."`
}

func (cmd *RemoveCmd) Run(ctx *kong.Context, globals *Globals) error {
	// Removing a whole section drops the header and every option in it, so
	// ask first on a terminal.
	if cmd.Option == "" && !cmd.Force && !cmd.File.IsStdin() && isTerminal() {
		ok, err := promptYesNo(fmt.Sprintf("Remove section [%s] and all of its options?", cmd.Section))
		if err != nil {
			return err
		}
		if !ok {
			printInfof(ctx.Stderr, "aborted, %s left unchanged", pathStyle.Render(cmd.File.Filename))
			return nil
		}
	}

	return runEdit(ctx, globals, &cmd.File, cmd.editFlags, transform.Request{
		Section: cmd.Section,
		State:   transform.Absent,
		Option:  cmd.Option,
	})
}
