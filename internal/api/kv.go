package api

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edgeplane/edgeplane/internal/kv"
)

// Namespace is one KV namespace on the account.
type Namespace struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CreateNamespace creates a KV namespace with the given title.
func (c *Client) CreateNamespace(ctx context.Context, accountID, title string) (*Namespace, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces", accountID)
	var ns Namespace
	if err := c.doJSON(ctx, "POST", path, map[string]string{"title": title}, &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// DeleteNamespace deletes a KV namespace by ID.
func (c *Client) DeleteNamespace(ctx context.Context, accountID, namespaceID string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s", accountID, namespaceID)
	return c.doJSON(ctx, "DELETE", path, nil, nil)
}

// ListNamespaces lists the account's KV namespaces.
func (c *Client) ListNamespaces(ctx context.Context, accountID string) ([]Namespace, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces", accountID)
	var namespaces []Namespace
	if err := c.doJSON(ctx, "GET", path, nil, &namespaces); err != nil {
		return nil, err
	}
	return namespaces, nil
}

// WriteKey writes a single value. A zero ttl stores the value without
// expiration.
func (c *Client) WriteKey(ctx context.Context, accountID, namespaceID, key string, value []byte, ttl int64) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s",
		accountID, namespaceID, url.PathEscape(key))
	if ttl > 0 {
		path += "?expiration_ttl=" + strconv.FormatInt(ttl, 10)
	}
	_, err := c.doRaw(ctx, "PUT", path, "application/octet-stream", bytes.NewReader(value))
	return err
}

// ReadKey returns the raw value stored under key.
func (c *Client) ReadKey(ctx context.Context, accountID, namespaceID, key string) ([]byte, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s",
		accountID, namespaceID, url.PathEscape(key))
	return c.doRaw(ctx, "GET", path, "", nil)
}

// DeleteKey removes a single key.
func (c *Client) DeleteKey(ctx context.Context, accountID, namespaceID, key string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s",
		accountID, namespaceID, url.PathEscape(key))
	return c.doJSON(ctx, "DELETE", path, nil, nil)
}

// Key is one entry of a key listing.
type Key struct {
	Name       string `json:"name"`
	Expiration int64  `json:"expiration,omitempty"`
}

// ListKeys lists key names in a namespace, optionally filtered by prefix.
func (c *Client) ListKeys(ctx context.Context, accountID, namespaceID, prefix string) ([]Key, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/keys", accountID, namespaceID)
	if prefix != "" {
		path += "?prefix=" + url.QueryEscape(prefix)
	}
	var keys []Key
	if err := c.doJSON(ctx, "GET", path, nil, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// WriteBulk uploads many key-value pairs in one request. The pairs are
// validated against the bulk upload schema before this call.
func (c *Client) WriteBulk(ctx context.Context, accountID, namespaceID string, pairs []kv.KeyValuePair) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/bulk", accountID, namespaceID)
	return c.doJSON(ctx, "PUT", path, pairs, nil)
}

// DeleteBulk removes many keys in one request.
func (c *Client) DeleteBulk(ctx context.Context, accountID, namespaceID string, keys []string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/bulk", accountID, namespaceID)
	return c.doJSON(ctx, "DELETE", path, keys, nil)
}
