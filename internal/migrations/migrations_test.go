package migrations

import (
	"encoding/json"
	"testing"
)

func TestMigrationTagZeroValueIsUnknown(t *testing.T) {
	var tag MigrationTag
	if _, known := tag.Value(); known {
		t.Error("zero-value tag should be unknown")
	}
	if tag != UnknownTag() {
		t.Error("zero-value tag should equal UnknownTag()")
	}
}

func TestMigrationTagDistinguishesEmptyString(t *testing.T) {
	empty := KnownTag("")
	if empty == UnknownTag() {
		t.Error("an explicitly empty tag must not collapse into unknown")
	}
	if v, known := empty.Value(); !known || v != "" {
		t.Errorf("Value() = (%q, %v), want (\"\", true)", v, known)
	}
}

func TestMigrationTagJSON(t *testing.T) {
	tests := []struct {
		name string
		tag  MigrationTag
		json string
	}{
		{name: "unknown", tag: UnknownTag(), json: "null"},
		{name: "known", tag: KnownTag("v7"), json: `"v7"`},
		{name: "known empty", tag: KnownTag(""), json: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.tag)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.json {
				t.Errorf("marshal = %s, want %s", data, tt.json)
			}

			var decoded MigrationTag
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if decoded != tt.tag {
				t.Errorf("round trip = %v, want %v", decoded, tt.tag)
			}
		})
	}
}

func TestDurableObjectsMigrationEmpty(t *testing.T) {
	if !(DurableObjectsMigration{}).Empty() {
		t.Error("zero-value migration should be empty")
	}

	nonEmpty := []DurableObjectsMigration{
		{NewClasses: []string{"A"}},
		{DeletedClasses: []string{"A"}},
		{RenamedClasses: []RenameClass{{From: "A", To: "B"}}},
		{TransferredClasses: []TransferClass{{FromScript: "s", From: "A", To: "B"}}},
	}
	for _, m := range nonEmpty {
		if m.Empty() {
			t.Errorf("migration %+v should not be empty", m)
		}
	}
}

func TestMigrationJSONShape(t *testing.T) {
	m := Migration{
		DurableObjects: DurableObjectsMigration{
			NewClasses:     []string{"Counter"},
			RenamedClasses: []RenameClass{{From: "A", To: "B"}},
		},
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"durable_objects":{"new_classes":["Counter"],"renamed_classes":[{"from":"A","to":"B"}]}}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}
