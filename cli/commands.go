package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Set     SetCmd     `cmd:"" help:"Set an option to a value, creating the section if needed."`
	Remove  RemoveCmd  `cmd:"" help:"Remove an option, or an entire section."`
	Comment CommentCmd `cmd:"" help:"Comment out an option, or an entire section."`
	Get     GetCmd     `cmd:"" help:"Print the value of an option."`
	Fmt     FmtCmd     `cmd:"" help:"Re-render a configuration file in canonical form."`
	Watch   WatchCmd   `cmd:"" help:"Keep a file converged on a desired state as it changes on disk."`
}
