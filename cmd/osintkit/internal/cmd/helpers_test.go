package cmd

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/osintkit/osintkit/internal/plugin"
	"github.com/urfave/cli/v3"
)

func Test_insertDefaultCommand(t *testing.T) {
	t.Parallel()

	commands := []*cli.Command{
		{Name: "extract-urls"},
		{Name: "helpers.go"},
	}
	defaultCommand := "extract-urls"

	tests := []struct {
		originalArgs []string
		wantArgs     []string
	}{
		// test when the default command is specified
		{
			originalArgs: []string{"", "extract-urls", "file"},
			wantArgs:     []string{"", "extract-urls", "file"},
		},
		// test when a command is not specified
		{
			originalArgs: []string{"", "file"},
			wantArgs:     []string{"", "extract-urls", "file"},
		},
		// test when a command is also a filename
		{
			originalArgs: []string{"", "helpers.go"},
			wantArgs:     []string{"", "helpers.go"},
		},
		// test when a command is not valid
		{
			originalArgs: []string{"", "invalid"},
			wantArgs:     []string{"", "extract-urls", "invalid"},
		},
		// test when a command is a built-in option
		{
			originalArgs: []string{"", "--version"},
			wantArgs:     []string{"", "--version"},
		},
		{
			originalArgs: []string{"", "-h"},
			wantArgs:     []string{"", "-h"},
		},
		{
			originalArgs: []string{"", "help"},
			wantArgs:     []string{"", "help"},
		},
		// test when there is nothing to insert
		{
			originalArgs: []string{""},
			wantArgs:     []string{""},
		},
	}

	for _, tt := range tests {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		argsActual := insertDefaultCommand(tt.originalArgs, commands, defaultCommand, stderr)
		if !reflect.DeepEqual(argsActual, tt.wantArgs) {
			t.Errorf("Test Failed. Details:\n"+
				"Args (Got):  %s\n"+
				"Args (Want): %s\n", argsActual, tt.wantArgs)
		}

		if stdout.Len() > 0 {
			t.Errorf("Test Failed. Nothing should be written to stdout, got: %s", stdout.String())
		}
	}
}

func Test_insertDefaultCommand_WithoutDefaultCommand(t *testing.T) {
	t.Parallel()

	commands := []*cli.Command{{Name: "extract-urls"}}

	args := insertDefaultCommand([]string{"", "file"}, commands, "", &bytes.Buffer{})

	if !reflect.DeepEqual(args, []string{"", "file"}) {
		t.Errorf("args should not be rewritten without a default command, got: %s", args)
	}
}

func Test_configPathFromArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{""}, want: ""},
		{args: []string{"", "extract-urls", "file"}, want: ""},
		{args: []string{"", "extract-urls", "--config", "osintkit.toml", "file"}, want: "osintkit.toml"},
		{args: []string{"", "extract-urls", "--config=osintkit.toml", "file"}, want: "osintkit.toml"},
		{args: []string{"", "extract-urls", "--config"}, want: ""},
	}

	for _, tt := range tests {
		if got := configPathFromArgs(tt.args); got != tt.want {
			t.Errorf("configPathFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func Test_bindParameters(t *testing.T) {
	t.Parallel()

	parameters := []plugin.Parameter{{Name: "filename", Type: plugin.TypeString}}

	args, err := bindParameters("extract-urls", parameters, []string{"notes.txt"})
	if err != nil {
		t.Fatalf("bindParameters() returned an unexpected error: %v", err)
	}
	if args.String("filename") != "notes.txt" {
		t.Errorf("filename = %q, want notes.txt", args.String("filename"))
	}

	for _, raw := range [][]string{{}, {"a.txt", "b.txt"}} {
		if _, err := bindParameters("extract-urls", parameters, raw); err == nil {
			t.Errorf("expected binding %d argument(s) to be an error", len(raw))
		}
		if _, err := bindParameters("extract-urls", parameters, raw); err != nil && !strings.Contains(err.Error(), "extract-urls") {
			t.Errorf("binding error should name the command: %v", err)
		}
	}
}
