package cli

import (
	"github.com/alecthomas/kong"

	"github.com/sbstp/smbconf/transform"
)

type CommentCmd struct {
	editFlags

	File    FileOrStdin `arg:"" help:"Configuration file (use '-' for stdin)."`
	Section string      `arg:"" help:"Section name."`
	Option  string      `arg:"" optional:"" help:"Option name. Omit to comment out the whole section."`
}

func (cmd *CommentCmd) Run(ctx *kong.Context, globals *Globals) error {
	return runEdit(ctx, globals, &cmd.File, cmd.editFlags, transform.Request{
		Section: cmd.Section,
		State:   transform.Commented,
		Option:  cmd.Option,
	})
}
