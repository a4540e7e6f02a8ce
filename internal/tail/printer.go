package tail

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Format selects how events are written.
type Format string

const (
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
)

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "pretty":
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("invalid format %q, must be json or pretty", s)
	}
}

// Printer writes tail events in the selected format.
type Printer struct {
	out    io.Writer
	format Format
}

func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format}
}

// Print writes one event. The raw frame is passed through unchanged for
// JSON output so nothing the server sent is lost to partial decoding.
func (p *Printer) Print(event *Event, raw []byte) error {
	if p.format == FormatJSON {
		_, err := fmt.Fprintf(p.out, "%s\n", raw)
		return err
	}

	outcome := color.GreenString("ok")
	if event.Outcome != "ok" {
		outcome = color.RedString(event.Outcome)
	}

	when := time.UnixMilli(event.Timestamp).Format("15:04:05")
	_, err := fmt.Fprintf(p.out, "[%s] %s %s %s\n",
		when, outcome, event.Event.Request.Method, event.Event.Request.URL)
	if err != nil {
		return err
	}

	for _, line := range event.Logs {
		for _, message := range line.Message {
			text := string(message)
			var s string
			if json.Unmarshal(message, &s) == nil {
				text = s
			}
			if _, err := fmt.Fprintf(p.out, "  (%s) %s\n", line.Level, text); err != nil {
				return err
			}
		}
	}
	for _, exc := range event.Exceptions {
		if _, err := fmt.Fprintf(p.out, "  %s %s: %s\n",
			color.RedString("✗"), exc.Name, exc.Message); err != nil {
			return err
		}
	}
	return nil
}
