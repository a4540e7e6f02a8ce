package migrations

import (
	"reflect"
	"testing"
)

func strptr(s string) *string {
	return &s
}

func TestCompileRenamePairs(t *testing.T) {
	tests := []struct {
		name string
		flat []string
		want []RenameClass
	}{
		{
			name: "no renames",
			flat: nil,
			want: nil,
		},
		{
			name: "single pair",
			flat: []string{"Counter", "Tally"},
			want: []RenameClass{{From: "Counter", To: "Tally"}},
		},
		{
			name: "pairs keep input order",
			flat: []string{"A", "B", "C", "D", "E", "F"},
			want: []RenameClass{
				{From: "A", To: "B"},
				{From: "C", To: "D"},
				{From: "E", To: "F"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adhoc := AdhocMigration{RenamedClasses: tt.flat}.Compile()
			if tt.want == nil {
				if adhoc != nil {
					t.Fatalf("expected no descriptor, got %+v", adhoc)
				}
				return
			}
			if adhoc == nil || adhoc.Migration == nil {
				t.Fatal("expected a descriptor with a structural migration")
			}
			got := adhoc.Migration.DurableObjects.RenamedClasses
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("renamed classes = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCompileTransferTriples(t *testing.T) {
	adhoc := AdhocMigration{
		TransferredClasses: []string{
			"billing", "Invoice", "Statement",
			"metrics", "Counter", "Tally",
		},
	}.Compile()
	if adhoc == nil || adhoc.Migration == nil {
		t.Fatal("expected a descriptor with a structural migration")
	}

	want := []TransferClass{
		{FromScript: "billing", From: "Invoice", To: "Statement"},
		{FromScript: "metrics", From: "Counter", To: "Tally"},
	}
	got := adhoc.Migration.DurableObjects.TransferredClasses
	if !reflect.DeepEqual(got, want) {
		t.Errorf("transferred classes = %+v, want %+v", got, want)
	}
}

func TestCompileEmptyInputYieldsNothing(t *testing.T) {
	if adhoc := (AdhocMigration{}).Compile(); adhoc != nil {
		t.Errorf("empty input should compile to nil, got %+v", adhoc)
	}
}

func TestCompileTagsAloneYieldDescriptor(t *testing.T) {
	tests := []struct {
		name   string
		oldTag *string
		newTag *string
	}{
		{name: "old tag only", oldTag: strptr("v1")},
		{name: "new tag only", newTag: strptr("v2")},
		{name: "both tags", oldTag: strptr("v1"), newTag: strptr("v2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adhoc := AdhocMigration{OldTag: tt.oldTag, NewTag: tt.newTag}.Compile()
			if adhoc == nil {
				t.Fatal("tag-only input should still produce a descriptor")
			}
			if adhoc.Migration != nil {
				t.Errorf("tag-only descriptor should carry no structural migration, got %+v", adhoc.Migration)
			}
			if !reflect.DeepEqual(adhoc.ProvidedOldTag, tt.oldTag) {
				t.Errorf("provided old tag = %v, want %v", adhoc.ProvidedOldTag, tt.oldTag)
			}
			if !reflect.DeepEqual(adhoc.NewTag, tt.newTag) {
				t.Errorf("new tag = %v, want %v", adhoc.NewTag, tt.newTag)
			}
			if adhoc.ScriptTag != UnknownTag() {
				t.Errorf("script tag = %v, want unknown", adhoc.ScriptTag)
			}
		})
	}
}

func TestCompileNewAndRenamed(t *testing.T) {
	adhoc := AdhocMigration{
		NewClasses:     []string{"A", "B"},
		RenamedClasses: []string{"X", "Y"},
	}.Compile()
	if adhoc == nil || adhoc.Migration == nil {
		t.Fatal("expected a descriptor with a structural migration")
	}

	want := DurableObjectsMigration{
		NewClasses:     []string{"A", "B"},
		RenamedClasses: []RenameClass{{From: "X", To: "Y"}},
	}
	if !reflect.DeepEqual(adhoc.Migration.DurableObjects, want) {
		t.Errorf("migration = %+v, want %+v", adhoc.Migration.DurableObjects, want)
	}
	if adhoc.ProvidedOldTag != nil || adhoc.NewTag != nil {
		t.Errorf("tags should be absent, got old=%v new=%v", adhoc.ProvidedOldTag, adhoc.NewTag)
	}
}

func TestCompileFullDescriptor(t *testing.T) {
	input := AdhocMigration{
		NewClasses:     []string{"newA", "newB"},
		DeletedClasses: []string{"deleteA", "deleteB"},
		RenamedClasses: []string{"A", "B", "C", "D"},
		TransferredClasses: []string{
			"S1", "X", "Y",
			"S2", "M", "N",
		},
		OldTag: strptr("t1"),
		NewTag: strptr("t2"),
	}

	want := &Adhoc{
		ScriptTag:      UnknownTag(),
		ProvidedOldTag: strptr("t1"),
		NewTag:         strptr("t2"),
		Migration: &Migration{
			DurableObjects: DurableObjectsMigration{
				NewClasses:     []string{"newA", "newB"},
				DeletedClasses: []string{"deleteA", "deleteB"},
				RenamedClasses: []RenameClass{
					{From: "A", To: "B"},
					{From: "C", To: "D"},
				},
				TransferredClasses: []TransferClass{
					{FromScript: "S1", From: "X", To: "Y"},
					{FromScript: "S2", From: "M", To: "N"},
				},
			},
		},
	}

	got := input.Compile()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("compiled descriptor = %+v, want %+v", got, want)
	}
}

func TestCompileIdempotent(t *testing.T) {
	input := AdhocMigration{
		NewClasses:     []string{"A"},
		RenamedClasses: []string{"B", "C"},
		OldTag:         strptr("v3"),
	}

	first := input.Compile()
	second := input.Compile()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("compiling the same input twice diverged: %+v vs %+v", first, second)
	}
}

func TestCompilePanicsOnMisalignedChunks(t *testing.T) {
	tests := []struct {
		name  string
		input AdhocMigration
	}{
		{
			name:  "odd rename list",
			input: AdhocMigration{RenamedClasses: []string{"A", "B", "C"}},
		},
		{
			name:  "transfer list not divisible by three",
			input: AdhocMigration{TransferredClasses: []string{"S", "A"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on misaligned chunk list")
				}
			}()
			tt.input.Compile()
		})
	}
}
