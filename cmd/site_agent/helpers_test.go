package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	fullFixture     = "../../testdata/valid/universal.json"
	minimalFixture  = "../../testdata/valid/minimal.json"
	badColorFixture = "../../testdata/invalid/bad_color.json"
	wrongVersion    = "../../testdata/invalid/wrong_version.json"
)

// executeCommand runs the CLI in-process with fresh flag state and returns its stdout
func executeCommand(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{"SITE_CONFIG", "SITE_PORT", "SITE_OUT_DIR", "SITE_TEMPLATE"} {
		t.Setenv(name, "")
	}

	resetCommand(rootCmd, ctx)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

// resetCommand restores every flag to its default since the command tree is package state
func resetCommand(cmd *cobra.Command, ctx context.Context) {
	cmd.SetContext(ctx)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetCommand(child, ctx)
	}
}
