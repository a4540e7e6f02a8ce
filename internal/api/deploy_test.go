package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/edgeplane/edgeplane/internal/migrations"
)

func strptr(s string) *string {
	return &s
}

func TestMigrationUploadFrom(t *testing.T) {
	tests := []struct {
		name  string
		adhoc *migrations.Adhoc
		want  *MigrationUpload
	}{
		{
			name:  "no descriptor",
			adhoc: nil,
			want:  nil,
		},
		{
			name: "tags only",
			adhoc: &migrations.Adhoc{
				ScriptTag:      migrations.UnknownTag(),
				ProvidedOldTag: strptr("v1"),
				NewTag:         strptr("v2"),
			},
			want: &MigrationUpload{OldTag: "v1", NewTag: "v2"},
		},
		{
			name: "unknown script tag without provided old tag uploads no old tag",
			adhoc: &migrations.Adhoc{
				ScriptTag: migrations.UnknownTag(),
				NewTag:    strptr("v2"),
			},
			want: &MigrationUpload{NewTag: "v2"},
		},
		{
			name: "structural migration becomes a single step",
			adhoc: &migrations.Adhoc{
				ScriptTag: migrations.UnknownTag(),
				Migration: &migrations.Migration{
					DurableObjects: migrations.DurableObjectsMigration{
						NewClasses: []string{"Counter"},
					},
				},
			},
			want: &MigrationUpload{
				Steps: []migrations.DurableObjectsMigration{
					{NewClasses: []string{"Counter"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MigrationUploadFrom(tt.adhoc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MigrationUploadFrom = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeployScriptMultipart(t *testing.T) {
	var gotMetadata ScriptMetadata
	var gotScript string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/workers/scripts/my-worker") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if err := json.Unmarshal([]byte(r.FormValue("metadata")), &gotMetadata); err != nil {
			t.Fatalf("decode metadata: %v", err)
		}
		file, _, err := r.FormFile("script")
		if err != nil {
			t.Fatalf("script part: %v", err)
		}
		body, _ := io.ReadAll(file)
		gotScript = string(body)

		w.Write([]byte(`{"success": true, "errors": [], "result": {"id": "my-worker", "etag": "abc"}}`))
	}))
	defer server.Close()

	adhoc := migrations.AdhocMigration{
		NewClasses: []string{"Counter"},
		NewTag:     strptr("v1"),
	}.Compile()

	client := NewClient(server.URL, "tok")
	result, err := client.DeployScript(context.Background(), "acct", "my-worker",
		[]byte("addEventListener('fetch', handle)"),
		ScriptMetadata{Migrations: MigrationUploadFrom(adhoc)})
	if err != nil {
		t.Fatalf("DeployScript: %v", err)
	}
	if result.ID != "my-worker" {
		t.Errorf("result ID = %q, want %q", result.ID, "my-worker")
	}

	if gotScript != "addEventListener('fetch', handle)" {
		t.Errorf("uploaded script = %q", gotScript)
	}
	if gotMetadata.Migrations == nil {
		t.Fatal("metadata should carry the compiled migration")
	}
	if gotMetadata.Migrations.NewTag != "v1" {
		t.Errorf("NewTag = %q, want %q", gotMetadata.Migrations.NewTag, "v1")
	}
	if len(gotMetadata.Migrations.Steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(gotMetadata.Migrations.Steps))
	}
}

func TestDeployScriptOmitsAbsentMigrations(t *testing.T) {
	var rawMetadata string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		rawMetadata = r.FormValue("metadata")
		w.Write([]byte(`{"success": true, "errors": [], "result": {"id": "my-worker"}}`))
	}))
	defer server.Close()

	// No class changes and no tags: the compiler yields nothing and the
	// upload must not mention migrations at all.
	adhoc := migrations.AdhocMigration{}.Compile()
	if adhoc != nil {
		t.Fatalf("expected no descriptor, got %+v", adhoc)
	}

	client := NewClient(server.URL, "tok")
	if _, err := client.DeployScript(context.Background(), "acct", "my-worker",
		[]byte("export default {}"),
		ScriptMetadata{Migrations: MigrationUploadFrom(adhoc)}); err != nil {
		t.Fatalf("DeployScript: %v", err)
	}

	if strings.Contains(rawMetadata, "migrations") {
		t.Errorf("metadata %q should omit the migrations field", rawMetadata)
	}
}
