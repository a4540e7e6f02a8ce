package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"time"

	"github.com/edgeplane/edgeplane/internal/migrations"
)

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// ScriptMetadata is the metadata part of a script upload.
type ScriptMetadata struct {
	BodyPart   string           `json:"body_part"`
	Migrations *MigrationUpload `json:"migrations,omitempty"`
}

// MigrationUpload is the wire form of a migration descriptor. Adhoc
// migrations always upload as a single step.
type MigrationUpload struct {
	OldTag string                               `json:"old_tag,omitempty"`
	NewTag string                               `json:"new_tag,omitempty"`
	Steps  []migrations.DurableObjectsMigration `json:"steps,omitempty"`
}

// MigrationUploadFrom converts a compiled descriptor for upload. A nil
// descriptor returns nil, and the caller omits the migrations field of the
// metadata entirely. A caller-provided old tag wins over the script tag,
// which for adhoc migrations is always unknown.
func MigrationUploadFrom(adhoc *migrations.Adhoc) *MigrationUpload {
	if adhoc == nil {
		return nil
	}

	upload := &MigrationUpload{}
	if adhoc.ProvidedOldTag != nil {
		upload.OldTag = *adhoc.ProvidedOldTag
	} else if tag, known := adhoc.ScriptTag.Value(); known {
		upload.OldTag = tag
	}
	if adhoc.NewTag != nil {
		upload.NewTag = *adhoc.NewTag
	}
	if adhoc.Migration != nil {
		upload.Steps = []migrations.DurableObjectsMigration{adhoc.Migration.DurableObjects}
	}
	return upload
}

// DeployResult reports a completed script upload.
type DeployResult struct {
	ID         string    `json:"id"`
	ETag       string    `json:"etag"`
	ModifiedOn time.Time `json:"modified_on"`
}

// DeployScript uploads the script body and its metadata as a multipart
// form. The migrations field is omitted when meta.Migrations is nil.
func (c *Client) DeployScript(ctx context.Context, accountID, scriptName string, script []byte, meta ScriptMetadata) (*DeployResult, error) {
	meta.BodyPart = "script"

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Disposition", `form-data; name="metadata"`)
	metaHeader.Set("Content-Type", "application/json")
	metaPart, err := form.CreatePart(metaHeader)
	if err != nil {
		return nil, err
	}
	if err := writeJSON(metaPart, meta); err != nil {
		return nil, err
	}

	scriptHeader := textproto.MIMEHeader{}
	scriptHeader.Set("Content-Disposition", `form-data; name="script"; filename="script.js"`)
	scriptHeader.Set("Content-Type", "application/javascript")
	scriptPart, err := form.CreatePart(scriptHeader)
	if err != nil {
		return nil, err
	}
	if _, err := scriptPart.Write(script); err != nil {
		return nil, err
	}

	if err := form.Close(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/accounts/%s/workers/scripts/%s", accountID, scriptName)
	var result DeployResult
	if err := c.do(ctx, "PUT", path, form.FormDataContentType(), &buf, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PublishToWorkersDev toggles serving the script on the workers.dev
// subdomain.
func (c *Client) PublishToWorkersDev(ctx context.Context, accountID, scriptName string, enabled bool) error {
	path := fmt.Sprintf("/accounts/%s/workers/scripts/%s/subdomain", accountID, scriptName)
	body := map[string]bool{"enabled": enabled}
	return c.doJSON(ctx, "POST", path, body, nil)
}
