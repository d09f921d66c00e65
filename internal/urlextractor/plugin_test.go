package urlextractor_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osintkit/osintkit/internal/plugin"
	"github.com/osintkit/osintkit/internal/urlextractor"
)

type recordingSink struct {
	events []plugin.LogEvent
}

func (s *recordingSink) Log(event plugin.LogEvent) {
	s.events = append(s.events, event)
}

func writeTextFile(t *testing.T, contents []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("could not write test file: %v", err)
	}

	return path
}

func runExtractURLs(t *testing.T, path string) plugin.LogEvent {
	t.Helper()

	sink := &recordingSink{}

	command := urlextractor.NewPlugin().Commands[0]
	command.Run(sink, plugin.Args{"filename": path})

	// every invocation must report exactly once, regardless of outcome
	if len(sink.events) != 1 {
		t.Fatalf("expected exactly one log event, got %d: %v", len(sink.events), sink.events)
	}

	return sink.events[0]
}

func TestNewPlugin(t *testing.T) {
	t.Parallel()

	p := urlextractor.NewPlugin()

	if p.Name != "url-extractor" {
		t.Errorf("plugin is named %q, want url-extractor", p.Name)
	}
	if len(p.Commands) != 1 {
		t.Fatalf("expected plugin to have 1 command, got %d", len(p.Commands))
	}

	command := p.Commands[0]
	if command.Name != urlextractor.CommandName {
		t.Errorf("command is named %q, want %q", command.Name, urlextractor.CommandName)
	}
	if len(command.Parameters) != 1 || command.Parameters[0].Name != "filename" {
		t.Errorf("command should take a single filename parameter, got %v", command.Parameters)
	}
	if command.Parameters[0].Type != plugin.TypeString {
		t.Errorf("filename parameter should be a string, got %v", command.Parameters[0].Type)
	}
}

func TestCommand_ReportsExtractedURLs(t *testing.T) {
	t.Parallel()

	path := writeTextFile(t, []byte("see http://a.com and https://b.com/x?y=1 now"))

	event := runExtractURLs(t, path)

	want := plugin.LogEvent{
		Message: fmt.Sprintf(`Extracted URLs from '%s': ["http://a.com", "https://b.com/x?y=1"]`, path),
		Level:   plugin.LevelInfo,
	}
	if event != want {
		t.Errorf("got event %+v, want %+v", event, want)
	}
}

func TestCommand_ReportsWhenNoURLsFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
	}{
		{name: "empty file", contents: ""},
		{name: "no links", contents: "no links here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTextFile(t, []byte(tt.contents))

			event := runExtractURLs(t, path)

			want := plugin.LogEvent{
				Message: fmt.Sprintf("No URLs found in '%s'.", path),
				Level:   plugin.LevelInfo,
			}
			if event != want {
				t.Errorf("got event %+v, want %+v", event, want)
			}
		})
	}
}

func TestCommand_ReportsDuplicatesInOrder(t *testing.T) {
	t.Parallel()

	path := writeTextFile(t, []byte("http://a.com http://a.com"))

	event := runExtractURLs(t, path)

	want := plugin.LogEvent{
		Message: fmt.Sprintf(`Extracted URLs from '%s': ["http://a.com", "http://a.com"]`, path),
		Level:   plugin.LevelInfo,
	}
	if event != want {
		t.Errorf("got event %+v, want %+v", event, want)
	}
}

func TestCommand_ReportsMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	event := runExtractURLs(t, path)

	if event.Level != plugin.LevelError {
		t.Errorf("expected an error-level event, got %+v", event)
	}
	if !strings.HasPrefix(event.Message, fmt.Sprintf("Error extracting URLs from '%s': ", path)) {
		t.Errorf("error event does not reference the path: %q", event.Message)
	}
}

func TestCommand_ReportsInvalidUTF8(t *testing.T) {
	t.Parallel()

	path := writeTextFile(t, []byte{'h', 0xff, 0xfe, '\n'})

	event := runExtractURLs(t, path)

	if event.Level != plugin.LevelError {
		t.Errorf("expected an error-level event, got %+v", event)
	}
	if !strings.Contains(event.Message, "not valid UTF-8") {
		t.Errorf("error event does not mention the decoding failure: %q", event.Message)
	}
}
