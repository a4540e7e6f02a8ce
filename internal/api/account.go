package api

import (
	"context"
	"fmt"
)

// User identifies the authenticated account holder.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Whoami returns the user the current token authenticates as.
func (c *Client) Whoami(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, "GET", "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Subdomain returns the account's registered workers.dev subdomain, or ""
// when none is registered yet.
func (c *Client) Subdomain(ctx context.Context, accountID string) (string, error) {
	path := fmt.Sprintf("/accounts/%s/workers/subdomain", accountID)
	var result struct {
		Subdomain string `json:"subdomain"`
	}
	if err := c.doJSON(ctx, "GET", path, nil, &result); err != nil {
		return "", err
	}
	return result.Subdomain, nil
}

// RegisterSubdomain reserves a workers.dev subdomain for the account.
func (c *Client) RegisterSubdomain(ctx context.Context, accountID, name string) error {
	path := fmt.Sprintf("/accounts/%s/workers/subdomain", accountID)
	return c.doJSON(ctx, "PUT", path, map[string]string{"subdomain": name}, nil)
}
