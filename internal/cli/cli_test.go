package cli_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/subtext/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "subtext" {
		t.Errorf("expected Use to be 'subtext', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"decode", "colors", "encodings", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	for _, name := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q", name)
		}
	}
}

func TestColorsCommandOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"colors", "--color", "never"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("colors command failed: %v", err)
	}

	for _, want := range []string{"Aqua", "#00FFFF", "Black", "#000000"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("colors output missing %q", want)
		}
	}
}

func TestEncodingsCommandOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"encodings", "--color", "never"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("encodings command failed: %v", err)
	}

	for _, want := range []string{"UTF-8", "ISO-8859-1", "Windows-1252", "KOI8-R"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("encodings output missing %q", want)
		}
	}
}
