package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
)

const sample = `# managed file

  [global]
    workgroup = WORKGROUP

  [netlogon]
    path = /home/netlogon
`

type testApp struct {
	app    *kong.Kong
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	var root struct {
		Commands
	}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app, err := kong.New(&root,
		kong.Name("smbconf"),
		kong.Writers(stdout, stderr),
		kong.Bind(&root.Globals),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected exit(%d)", code)
		}),
	)
	assert.NoError(t, err)

	return &testApp{app: app, stdout: stdout, stderr: stderr}
}

func (a *testApp) run(t *testing.T, args ...string) error {
	t.Helper()
	kctx, err := a.app.Parse(args)
	assert.NoError(t, err)
	return kctx.Run()
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smb.conf")
	assert.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func TestSetWritesFile(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "set", path, "global", "workgroup", "ACME_INC"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "workgroup = ACME_INC"))
	assert.True(t, strings.Contains(app.stderr.String(), "updated"))
}

func TestSetUnchangedDoesNotRewrite(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "set", path, "global", "workgroup", "WORKGROUP"))
	assert.True(t, strings.Contains(app.stderr.String(), "already converged"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, sample, string(data))
}

func TestSetCheckModeLeavesFileAlone(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "set", "--check", path, "global", "workgroup", "ACME_INC"))
	assert.True(t, strings.Contains(app.stderr.String(), "would change"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, sample, string(data))
}

func TestSetDiffOutput(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "set", "--check", "--diff", path, "global", "workgroup", "ACME_INC"))

	out := app.stdout.String()
	assert.True(t, strings.Contains(out, "-    workgroup = WORKGROUP"))
	assert.True(t, strings.Contains(out, "+    workgroup = ACME_INC"))
}

func TestRemoveSectionForced(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "remove", "--force", path, "netlogon"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "netlogon"))
}

func TestRemoveMissingSectionFails(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	err := app.run(t, "remove", "--force", path, "nope")

	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode())

	data, readErr := os.ReadFile(path)
	assert.NoError(t, readErr)
	assert.Equal(t, sample, string(data))
}

func TestCommentSectionCommand(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "comment", path, "netlogon"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(data), ";  [netlogon]"))
	assert.True(t, strings.Contains(string(data), ";    path = /home/netlogon"))
}

func TestGetPrintsValue(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "get", path, "global", "workgroup"))
	assert.Equal(t, "WORKGROUP\n", app.stdout.String())
}

func TestGetMissingOptionFails(t *testing.T) {
	path := writeSample(t)

	app := newTestApp(t)
	err := app.run(t, "get", path, "global", "nope")

	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode())
	assert.True(t, strings.Contains(app.stderr.String(), "not found"))
}

func TestFmtCanonicalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smb.conf")
	assert.NoError(t, os.WriteFile(path, []byte("[global]\nworkgroup=WORKGROUP\n"), 0o644))

	app := newTestApp(t)
	assert.NoError(t, app.run(t, "fmt", path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "  [global]\n    workgroup = WORKGROUP\n", string(data))
}

func TestParseErrorShowsContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smb.conf")
	assert.NoError(t, os.WriteFile(path, []byte("# fine\n[[broken]\n"), 0o644))

	app := newTestApp(t)
	err := app.run(t, "set", path, "global", "a", "b")

	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr))
	assert.True(t, strings.Contains(app.stderr.String(), "[[broken]"))
	assert.True(t, strings.Contains(app.stderr.String(), "line 2"))
}
