package cli

import (
	"github.com/alecthomas/kong"

	"github.com/sbstp/smbconf/transform"
)

type SetCmd struct {
	editFlags

	File    FileOrStdin `arg:"" help:"Configuration file (use '-' for stdin)."`
	Section string      `arg:"" help:"Section name."`
	Option  string      `arg:"" help:"Option name."`
	Value   string      `arg:"" help:"Value to assign."`
}

func (cmd *SetCmd) Run(ctx *kong.Context, globals *Globals) error {
	return runEdit(ctx, globals, &cmd.File, cmd.editFlags, transform.Request{
		Section: cmd.Section,
		State:   transform.Present,
		Option:  cmd.Option,
		Value:   cmd.Value,
	})
}
