// Package kv holds the key-value data model shared by the kv subcommands
// and the API client.
package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// KeyValuePair is one entry of a bulk upload document.
type KeyValuePair struct {
	Key           string `json:"key"`
	Value         string `json:"value"`
	Expiration    int64  `json:"expiration,omitempty"`
	ExpirationTTL int64  `json:"expiration_ttl,omitempty"`
	Base64        bool   `json:"base64,omitempty"`
}

// bulkSchema is the JSON Schema a bulk upload document must satisfy before
// it is sent to the API. Rejecting malformed documents locally gives a
// better error than the API's generic 400.
const bulkSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["key", "value"],
    "additionalProperties": false,
    "properties": {
      "key": {"type": "string", "minLength": 1},
      "value": {"type": "string"},
      "expiration": {"type": "integer", "minimum": 0},
      "expiration_ttl": {"type": "integer", "minimum": 60},
      "base64": {"type": "boolean"}
    }
  }
}`

// ParseBulkFile reads and validates a bulk upload JSON document.
func ParseBulkFile(path string) ([]KeyValuePair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBulk(data)
}

// ParseBulk validates data against the bulk upload schema and decodes it.
func ParseBulk(data []byte) ([]KeyValuePair, error) {
	schemaLoader := gojsonschema.NewStringLoader(bulkSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate bulk upload: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("bulk upload is not valid:\n  %s", strings.Join(problems, "\n  "))
	}

	var pairs []KeyValuePair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ParseBulkDeleteFile reads a JSON array of key names to delete.
func ParseBulkDeleteFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("bulk delete file must be a JSON array of key names: %w", err)
	}
	for i, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("bulk delete entry %d is an empty key name", i)
		}
	}
	return keys, nil
}
