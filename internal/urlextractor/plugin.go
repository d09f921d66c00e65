package urlextractor

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/osintkit/osintkit/internal/plugin"
)

// CommandName is the name the extraction command is registered under.
const CommandName = "extract-urls"

// NewPlugin constructs the url-extractor plugin. It is called once by the
// host's plugin-loading entry point.
func NewPlugin() *plugin.Plugin {
	return &plugin.Plugin{
		Name:        "url-extractor",
		Description: "extracts URLs from text files for OSINT purposes",
		Commands: []plugin.Command{
			{
				Name:       CommandName,
				Usage:      "extracts HTTP and HTTPS URLs from a text file",
				Parameters: []plugin.Parameter{{Name: "filename", Type: plugin.TypeString}},
				Run:        run,
			},
		},
	}
}

func run(host plugin.LogSink, args plugin.Args) {
	host.Log(extractReport(args.String("filename")))
}

// extractReport reads the file at path and produces the single log event
// reporting the outcome: the extracted URLs, the absence of any, or the
// failure that prevented extraction. Exactly one event is produced on every
// path, and a failure at any step short-circuits the rest.
func extractReport(path string) plugin.LogEvent {
	text, err := readTextFile(path)
	if err != nil {
		return plugin.Errorf("Error extracting URLs from '%s': %s", path, err)
	}

	urls := Extract(text)
	if len(urls) == 0 {
		return plugin.Infof("No URLs found in '%s'.", path)
	}

	return plugin.Infof("Extracted URLs from '%s': %s", path, formatURLList(urls))
}

// readTextFile reads the whole file at path as UTF-8 text.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid UTF-8", path)
	}

	return string(data), nil
}

func formatURLList(urls []string) string {
	quoted := make([]string, len(urls))
	for i, url := range urls {
		quoted[i] = strconv.Quote(url)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
