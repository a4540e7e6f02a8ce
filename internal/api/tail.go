package api

import (
	"context"
	"fmt"
	"time"
)

// TailSession is a short-lived log tail created for a script. URL is the
// websocket endpoint streaming the script's events until ExpiresAt.
type TailSession struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateTail starts a tail session for a script.
func (c *Client) CreateTail(ctx context.Context, accountID, scriptName string) (*TailSession, error) {
	path := fmt.Sprintf("/accounts/%s/workers/scripts/%s/tails", accountID, scriptName)
	var session TailSession
	if err := c.doJSON(ctx, "POST", path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteTail ends a tail session.
func (c *Client) DeleteTail(ctx context.Context, accountID, scriptName, tailID string) error {
	path := fmt.Sprintf("/accounts/%s/workers/scripts/%s/tails/%s", accountID, scriptName, tailID)
	return c.doJSON(ctx, "DELETE", path, nil, nil)
}
