// Package smbconf edits Samba-style (smb.conf) configuration files while
// preserving every untouched line byte for byte.
//
// The pipeline is: parse the source into a document, snapshot it, apply one
// structural edit, compare the mutated tree against the snapshot, and render
// the result. Callers receive the rendered text plus a Changed flag telling
// them whether persisting it would alter the file. File I/O is the caller's
// responsibility; see the loader package.
package smbconf

import (
	"context"
	"strings"

	"github.com/sbstp/smbconf/conf"
	"github.com/sbstp/smbconf/formatter"
	"github.com/sbstp/smbconf/parser"
	"github.com/sbstp/smbconf/telemetry"
	"github.com/sbstp/smbconf/transform"
)

// Result is the outcome of applying one edit to a configuration file.
type Result struct {
	// Output is the rendered configuration text.
	Output string

	// Changed reports whether the edit structurally altered the document.
	Changed bool
}

// Apply parses source, applies the requested edit, and renders the result.
//
// Changed is computed by deep structural comparison against a pre-edit
// snapshot, so an edit that leaves the document structurally identical
// reports false.
// Parse errors (*parser.ParseError), lookup failures (*conf.NotFoundError),
// and invalid requests are returned without a partial result.
func Apply(ctx context.Context, source []byte, req transform.Request, opts ...formatter.Option) (*Result, error) {
	doc, err := parser.ParseBytes(ctx, source)
	if err != nil {
		return nil, err
	}

	snapshot := doc.Clone()

	timer := telemetry.FromContext(ctx).Start("Transform document")
	err = transform.Apply(doc, req)
	timer.End()
	if err != nil {
		return nil, err
	}

	timer = telemetry.FromContext(ctx).Start("Detect changes")
	changed := !conf.Equal(snapshot, doc)
	timer.End()

	var buf strings.Builder
	if err := formatter.New(opts...).Format(ctx, doc, &buf); err != nil {
		return nil, err
	}

	return &Result{Output: buf.String(), Changed: changed}, nil
}

// Render parses source and re-renders it canonically without applying any
// edit. Changed reports whether the canonical form differs from the input.
func Render(ctx context.Context, source []byte, opts ...formatter.Option) (*Result, error) {
	doc, err := parser.ParseBytes(ctx, source)
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	if err := formatter.New(opts...).Format(ctx, doc, &buf); err != nil {
		return nil, err
	}

	out := buf.String()
	return &Result{Output: out, Changed: out != string(source)}, nil
}
