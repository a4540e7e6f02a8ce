// Package tail streams execution events from a deployed script over the
// tail session websocket.
package tail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Options filter and shape the streamed events.
type Options struct {
	Format       Format
	Once         bool
	SamplingRate float64
	Status       []string
	Methods      []string
	Search       string
}

// filterMessage is sent once after dialing to configure server-side
// filtering for the session.
type filterMessage struct {
	SamplingRate float64  `json:"sampling_rate,omitempty"`
	Outcomes     []string `json:"outcomes,omitempty"`
	Methods      []string `json:"methods,omitempty"`
	Query        string   `json:"query,omitempty"`
}

// Event is one script invocation reported by the tail.
type Event struct {
	Outcome    string `json:"outcome"`
	ScriptName string `json:"scriptName"`
	Timestamp  int64  `json:"eventTimestamp"`
	Event      struct {
		Request struct {
			URL    string `json:"url"`
			Method string `json:"method"`
		} `json:"request"`
	} `json:"event"`
	Logs []struct {
		Level     string            `json:"level"`
		Message   []json.RawMessage `json:"message"`
		Timestamp int64             `json:"timestamp"`
	} `json:"logs"`
	Exceptions []struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"exceptions"`
}

// Run dials the session websocket and writes events to out until the
// context is canceled, the server closes the stream, or (with Once) the
// first event arrives.
func Run(ctx context.Context, sessionURL string, opts Options, out io.Writer) error {
	conn, _, err := websocket.Dial(ctx, sessionURL, nil)
	if err != nil {
		return fmt.Errorf("connect to tail session: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	filters := filterMessage{
		SamplingRate: opts.SamplingRate,
		Outcomes:     opts.Status,
		Methods:      opts.Methods,
		Query:        opts.Search,
	}
	if err := wsjson.Write(ctx, conn, filters); err != nil {
		return fmt.Errorf("send tail filters: %w", err)
	}

	printer := NewPrinter(out, opts.Format)
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read tail event: %w", err)
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			// Skip frames that are not events (e.g. session keepalives).
			continue
		}
		if err := printer.Print(&event, data); err != nil {
			return err
		}
		if opts.Once {
			return nil
		}
	}
}
