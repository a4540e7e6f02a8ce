// Package r2 reads and writes bucket objects through the account's
// S3-compatible endpoint. Bucket management goes through the platform API;
// object contents go through this store.
package r2

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local bucket URLs in development
	_ "gocloud.dev/blob/s3blob"   // S3-compatible driver
)

// Store wraps one open bucket.
type Store struct {
	bucket *blob.Bucket
}

// Open opens bucketName through the configured endpoint. An empty endpoint
// targets AWS-style addressing; a custom endpoint (the usual case for R2)
// switches to path-style addressing. bucketURL may also be a full URL
// (s3://..., file://...) which is passed through untouched.
func Open(ctx context.Context, bucketName, endpoint, region string) (*Store, error) {
	bucketURL := bucketName
	if !hasScheme(bucketName) {
		bucketURL = "s3://" + bucketName
		params := url.Values{}
		if region != "" {
			params.Set("region", region)
		}
		if endpoint != "" {
			params.Set("endpoint", endpoint)
			params.Set("s3ForcePathStyle", "true")
		}
		if len(params) > 0 {
			bucketURL += "?" + params.Encode()
		}
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", bucketName, err)
	}
	return &Store{bucket: bucket}, nil
}

func hasScheme(s string) bool {
	parsed, err := url.Parse(s)
	return err == nil && parsed.Scheme != ""
}

// Put writes an object.
func (s *Store) Put(ctx context.Context, key string, body io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	return writer.Close()
}

// Get copies an object's contents to out.
func (s *Store) Get(ctx context.Context, key string, out io.Writer) error {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	defer reader.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	return nil
}

// Delete removes an object.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Object is one listing entry.
type Object struct {
	Key  string
	Size int64
}

// List returns the objects under prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		objects = append(objects, Object{Key: obj.Key, Size: obj.Size})
	}
	return objects, nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}
