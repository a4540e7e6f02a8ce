package migrations

import "fmt"

// AdhocMigration is the flat, flag-level representation of a migration
// supplied on the deploy command line. RenamedClasses holds from/to pairs
// flattened in order; TransferredClasses holds script/from/to triples
// flattened in order. Cobra enforces the arity of each flag occurrence, so
// the slices always arrive correctly aligned.
type AdhocMigration struct {
	NewClasses         []string
	DeletedClasses     []string
	RenamedClasses     []string
	TransferredClasses []string
	OldTag             *string
	NewTag             *string
}

// Compile assembles the descriptor for this deploy. It returns nil when the
// input carries no structural changes and no tags, meaning no migration is
// part of the deploy at all. Tags alone are a legitimate intent (re-assert
// or bump a tag with no structural change), so an empty structural set does
// not suppress a tag-only descriptor.
//
// Compile is pure and total: it performs no I/O and never fails. A rename
// list with odd length or a transfer list not divisible by three cannot
// occur through the flag layer; if one shows up anyway the flag contract
// has been broken and Compile panics rather than silently dropping a
// partial group, which would construct a migration nobody asked for.
func (a AdhocMigration) Compile() *Adhoc {
	migration := DurableObjectsMigration{
		NewClasses:         a.NewClasses,
		DeletedClasses:     a.DeletedClasses,
		RenamedClasses:     chunkRenames(a.RenamedClasses),
		TransferredClasses: chunkTransfers(a.TransferredClasses),
	}

	if migration.Empty() && a.OldTag == nil && a.NewTag == nil {
		return nil
	}

	var wrapped *Migration
	if !migration.Empty() {
		wrapped = &Migration{DurableObjects: migration}
	}

	return &Adhoc{
		ScriptTag:      UnknownTag(),
		ProvidedOldTag: a.OldTag,
		NewTag:         a.NewTag,
		Migration:      wrapped,
	}
}

func chunkRenames(flat []string) []RenameClass {
	if len(flat)%2 != 0 {
		panic(fmt.Sprintf("rename list has %d values, expected from/to pairs", len(flat)))
	}
	if len(flat) == 0 {
		return nil
	}
	renames := make([]RenameClass, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		renames = append(renames, RenameClass{From: flat[i], To: flat[i+1]})
	}
	return renames
}

func chunkTransfers(flat []string) []TransferClass {
	if len(flat)%3 != 0 {
		panic(fmt.Sprintf("transfer list has %d values, expected script/from/to triples", len(flat)))
	}
	if len(flat) == 0 {
		return nil
	}
	transfers := make([]TransferClass, 0, len(flat)/3)
	for i := 0; i < len(flat); i += 3 {
		transfers = append(transfers, TransferClass{
			FromScript: flat[i],
			From:       flat[i+1],
			To:         flat[i+2],
		})
	}
	return transfers
}
