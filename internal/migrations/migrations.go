// Package migrations models durable object class migrations and compiles
// the flag-level representation of an adhoc migration into the descriptor
// sent to the deploy API.
package migrations

import (
	"bytes"
	"encoding/json"
)

// RenameClass renames a durable object class within the same script.
type RenameClass struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TransferClass moves all durable object instances of a class in another
// deployed script into a class in this script. All three fields are
// populated together.
type TransferClass struct {
	FromScript string `json:"from_script"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// DurableObjectsMigration is the set of structural class changes carried by
// a single deploy.
type DurableObjectsMigration struct {
	NewClasses         []string        `json:"new_classes,omitempty"`
	DeletedClasses     []string        `json:"deleted_classes,omitempty"`
	RenamedClasses     []RenameClass   `json:"renamed_classes,omitempty"`
	TransferredClasses []TransferClass `json:"transferred_classes,omitempty"`
}

// Empty reports whether the migration carries no structural changes at all.
func (m DurableObjectsMigration) Empty() bool {
	return len(m.NewClasses) == 0 &&
		len(m.DeletedClasses) == 0 &&
		len(m.RenamedClasses) == 0 &&
		len(m.TransferredClasses) == 0
}

// Migration wraps one category of structural change. Durable objects are the
// only category today; the wrapper matches the wire shape the API expects.
type Migration struct {
	DurableObjects DurableObjectsMigration `json:"durable_objects"`
}

// MigrationTag is an opaque version marker for a script's migration history.
// It is either a concrete tag string or unknown, meaning the client has not
// looked up the script's current server-side tag. The zero value is unknown.
type MigrationTag struct {
	known bool
	tag   string
}

// KnownTag returns a tag holding a concrete value. An empty string is a
// legitimate known tag, distinct from unknown.
func KnownTag(tag string) MigrationTag {
	return MigrationTag{known: true, tag: tag}
}

// UnknownTag returns the tag used when the client does not know the script's
// current server-side tag. Adhoc migrations without a caller-supplied old
// tag always carry it.
func UnknownTag() MigrationTag {
	return MigrationTag{}
}

// Value returns the concrete tag string and whether one is known.
func (t MigrationTag) Value() (string, bool) {
	return t.tag, t.known
}

func (t MigrationTag) String() string {
	if !t.known {
		return "<unknown>"
	}
	return t.tag
}

// MarshalJSON encodes a known tag as its string and an unknown tag as null.
func (t MigrationTag) MarshalJSON() ([]byte, error) {
	if !t.known {
		return []byte("null"), nil
	}
	return json.Marshal(t.tag)
}

// UnmarshalJSON decodes null as unknown and any string as a known tag.
func (t *MigrationTag) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = UnknownTag()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = KnownTag(s)
	return nil
}

// Adhoc is the migration descriptor compiled from deploy-time flags, as
// opposed to one declared in edgeplane.toml. It is handed by value to the
// deploy client, which omits the migrations field of the upload entirely
// when no descriptor was compiled.
type Adhoc struct {
	ScriptTag      MigrationTag `json:"script_tag"`
	ProvidedOldTag *string      `json:"provided_old_tag,omitempty"`
	NewTag         *string      `json:"new_tag,omitempty"`
	Migration      *Migration   `json:"migration,omitempty"`
}
