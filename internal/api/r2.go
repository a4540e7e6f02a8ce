package api

import (
	"context"
	"fmt"
)

// Bucket is one R2 bucket on the account. Object contents are accessed
// through the S3-compatible endpoint, not this API.
type Bucket struct {
	Name         string `json:"name"`
	CreationDate string `json:"creation_date,omitempty"`
}

// CreateBucket creates an R2 bucket.
func (c *Client) CreateBucket(ctx context.Context, accountID, name string) error {
	path := fmt.Sprintf("/accounts/%s/r2/buckets", accountID)
	return c.doJSON(ctx, "POST", path, map[string]string{"name": name}, nil)
}

// DeleteBucket deletes an R2 bucket. The bucket must be empty.
func (c *Client) DeleteBucket(ctx context.Context, accountID, name string) error {
	path := fmt.Sprintf("/accounts/%s/r2/buckets/%s", accountID, name)
	return c.doJSON(ctx, "DELETE", path, nil, nil)
}

// ListBuckets lists the account's R2 buckets.
func (c *Client) ListBuckets(ctx context.Context, accountID string) ([]Bucket, error) {
	path := fmt.Sprintf("/accounts/%s/r2/buckets", accountID)
	var result struct {
		Buckets []Bucket `json:"buckets"`
	}
	if err := c.doJSON(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return result.Buckets, nil
}
