package tail

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const sampleEvent = `{
  "outcome": "ok",
  "scriptName": "my-worker",
  "eventTimestamp": 1714048000000,
  "event": {"request": {"url": "https://example.com/api", "method": "GET"}},
  "logs": [{"level": "log", "message": ["handled request"], "timestamp": 1714048000001}],
  "exceptions": []
}`

func decodeSample(t *testing.T) *Event {
	t.Helper()
	var event Event
	if err := json.Unmarshal([]byte(sampleEvent), &event); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	return &event
}

func TestPrinterJSONPassesRawThrough(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatJSON)
	if err := printer.Print(decodeSample(t), []byte(sampleEvent)); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if strings.TrimSpace(buf.String()) != strings.TrimSpace(sampleEvent) {
		t.Errorf("json output should be the raw frame, got %q", buf.String())
	}
}

func TestPrinterPretty(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatPretty)
	if err := printer.Print(decodeSample(t), []byte(sampleEvent)); err != nil {
		t.Fatalf("Print: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"GET", "https://example.com/api", "handled request"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output %q should contain %q", out, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("json = (%v, %v)", f, err)
	}
	if f, err := ParseFormat("pretty"); err != nil || f != FormatPretty {
		t.Errorf("pretty = (%v, %v)", f, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
