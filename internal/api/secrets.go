package api

import (
	"context"
	"fmt"
)

// Secret is a named secret binding on a deployed script. The value is write
// only; listings return names.
type Secret struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// PutSecret creates or replaces a secret on a script.
func (c *Client) PutSecret(ctx context.Context, accountID, scriptName, name, text string) error {
	path := fmt.Sprintf("/accounts/%s/workers/scripts/%s/secrets", accountID, scriptName)
	body := map[string]string{"name": name, "text": text, "type": "secret_text"}
	return c.doJSON(ctx, "PUT", path, body, nil)
}

// DeleteSecret removes a secret from a script.
func (c *Client) DeleteSecret(ctx context.Context, accountID, scriptName, name string) error {
	path := fmt.Sprintf("/accounts/%s/workers/scripts/%s/secrets/%s", accountID, scriptName, name)
	return c.doJSON(ctx, "DELETE", path, nil, nil)
}

// ListSecrets lists the secret names bound to a script.
func (c *Client) ListSecrets(ctx context.Context, accountID, scriptName string) ([]Secret, error) {
	path := fmt.Sprintf("/accounts/%s/workers/scripts/%s/secrets", accountID, scriptName)
	var secrets []Secret
	if err := c.doJSON(ctx, "GET", path, nil, &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}
