package repository

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Whatever mix of owners and deletions is stored, a search only ever sees the
// caller's active notes.
func TestSearchOwnerIsolationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("search returns only active notes of the owner", prop.ForAll(
		func(owners []int64, deleted []bool) bool {
			db := newTestDB(t)
			repo := NewNoteRepository(db)

			expected := map[int64]int{}
			for i, owner := range owners {
				note := seedNote(t, db, noteSeed{
					id:        fmt.Sprintf("n%d", i),
					owner:     owner,
					title:     "shared title",
					createdAt: int64(i),
				})
				if i < len(deleted) && deleted[i] {
					if err := repo.SoftDelete(note, 1); err != nil {
						return false
					}
					continue
				}
				expected[owner]++
			}

			for owner := int64(1); owner <= 3; owner++ {
				notes, err := repo.Search(NewNoteQuery(owner).MatchText("shared"))
				if err != nil || len(notes) != expected[owner] {
					return false
				}
				for _, n := range notes {
					if n.OwnerID != owner || !n.IsActive() {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.Int64Range(1, 3)),
		gen.SliceOfN(8, gen.Bool()),
	))

	properties.TestingRun(t)
}
