package services

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/campuslost/lostfound/services/item/domain/models"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func newItem(id, name, description string, category models.Category, location models.Location, found string, createdMinutes int) *models.Item {
	return &models.Item{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Location:    location,
		DateFound:   models.MustParseDate(found),
		Images:      []string{"data:image/png;base64,AAAA"},
		Finder:      models.Finder{Name: "Finder", Email: "finder@campus.edu"},
		CreatedAt:   baseTime.Add(time.Duration(createdMinutes) * time.Minute),
	}
}

func ids(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func fixture() []*models.Item {
	return []*models.Item{
		newItem("phone", "iPhone 13", "black case", models.CategoryElectronics, models.LocationLibrary, "2024-03-04", 10),
		newItem("wallet", "Wallet", "brown leather", models.CategoryAccessories, models.LocationCafeteria, "2024-03-06", 30),
		newItem("keys", "Car keys", "three keys on a red ring", models.CategoryKeys, models.LocationParkingLot, "2024-03-08", 20),
		newItem("hoodie", "Grey hoodie", "size M, has a Phone pocket", models.CategoryClothing, models.LocationGym, "2024-03-10", 40),
		newItem("dormkeys", "Keycard", "dorm access card and keys", models.CategoryKeys, models.LocationDormitory, "2024-03-10", 5),
	}
}

func TestQuery_NoFilterReturnsAllNewestFirst(t *testing.T) {
	got := Query(fixture(), Filter{})
	assert.Equal(t, []string{"hoodie", "wallet", "keys", "phone", "dormkeys"}, ids(got))
}

func TestQuery_EmptyCollection(t *testing.T) {
	got := Query(nil, Filter{Search: "anything"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQuery_SearchIsCaseInsensitiveSubstringOnNameOrDescription(t *testing.T) {
	items := []*models.Item{
		newItem("a", "iPhone 13", "black case", models.CategoryElectronics, models.LocationLibrary, "2024-03-04", 1),
		newItem("b", "Wallet", "brown leather", models.CategoryAccessories, models.LocationCafeteria, "2024-03-04", 2),
	}
	assert.Equal(t, []string{"a"}, ids(Query(items, Filter{Search: "phone"})))
	assert.Equal(t, []string{"a"}, ids(Query(items, Filter{Search: "PHONE"})))
	assert.Equal(t, []string{"b"}, ids(Query(items, Filter{Search: "Leather"})))
	assert.Empty(t, Query(items, Filter{Search: "umbrella"}))
}

func TestQuery_SearchMatchesDescriptionToo(t *testing.T) {
	got := Query(fixture(), Filter{Search: "phone"})
	assert.Equal(t, []string{"hoodie", "phone"}, ids(got))
}

func TestQuery_CategoryExactMatch(t *testing.T) {
	got := Query(fixture(), Filter{Category: models.CategoryKeys})
	assert.Equal(t, []string{"keys", "dormkeys"}, ids(got))
	for _, item := range got {
		assert.Equal(t, models.CategoryKeys, item.Category)
	}

	assert.Empty(t, Query(fixture(), Filter{Category: "keys"}), "category match is case sensitive")
}

func TestQuery_LocationExactMatch(t *testing.T) {
	got := Query(fixture(), Filter{Location: models.LocationGym})
	assert.Equal(t, []string{"hoodie"}, ids(got))
}

func TestQuery_DateBoundsAreInclusive(t *testing.T) {
	got := Query(fixture(), Filter{
		DateFrom: models.MustParseDate("2024-03-06"),
		DateTo:   models.MustParseDate("2024-03-08"),
	})
	assert.Equal(t, []string{"wallet", "keys"}, ids(got))

	sameDay := Query(fixture(), Filter{
		DateFrom: models.MustParseDate("2024-03-10"),
		DateTo:   models.MustParseDate("2024-03-10"),
	})
	assert.Equal(t, []string{"hoodie", "dormkeys"}, ids(sameDay))
}

func TestQuery_DateFromAfterDateToIsEmpty(t *testing.T) {
	got := Query(fixture(), Filter{
		DateFrom: models.MustParseDate("2024-03-10"),
		DateTo:   models.MustParseDate("2024-03-05"),
	})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQuery_Conjunction(t *testing.T) {
	got := Query(fixture(), Filter{
		Search:   "keys",
		Category: models.CategoryKeys,
		Location: models.LocationDormitory,
		DateFrom: models.MustParseDate("2024-03-09"),
	})
	assert.Equal(t, []string{"dormkeys"}, ids(got))
}

func TestQuery_TiesKeepSnapshotOrder(t *testing.T) {
	items := []*models.Item{
		newItem("first", "Pen", "blue ink pen", models.CategoryOther, models.LocationOther, "2024-03-01", 0),
		newItem("second", "Pen", "blue ink pen", models.CategoryOther, models.LocationOther, "2024-03-01", 0),
		newItem("third", "Pen", "blue ink pen", models.CategoryOther, models.LocationOther, "2024-03-01", 0),
	}
	for range 5 {
		assert.Equal(t, []string{"first", "second", "third"}, ids(Query(items, Filter{})))
	}
}

func TestQuery_DoesNotMutateSnapshotAndSharesItems(t *testing.T) {
	snapshot := fixture()
	before := ids(snapshot)

	got := Query(snapshot, Filter{})

	assert.Equal(t, before, ids(snapshot))
	for _, item := range got {
		assert.True(t, slices.Contains(snapshot, item), "result must reference snapshot items")
	}
}

func TestFilter_ActiveCount(t *testing.T) {
	assert.Equal(t, 0, Filter{Search: "phone"}.ActiveCount())
	assert.Equal(t, 4, Filter{
		Category: models.CategoryKeys,
		Location: models.LocationGym,
		DateFrom: models.MustParseDate("2024-03-01"),
		DateTo:   models.MustParseDate("2024-03-02"),
	}.ActiveCount())
	assert.Equal(t, 1, Filter{DateTo: models.MustParseDate("2024-03-02")}.ActiveCount())
}

// --- properties ---

var (
	words = []string{"phone", "Wallet", "keys", "umbrella", "Laptop", "card", "bottle", "scarf"}
	days  = []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"}
)

func itemGen(id int) *rapid.Generator[*models.Item] {
	return rapid.Custom(func(t *rapid.T) *models.Item {
		return newItem(
			fmt.Sprintf("item-%d", id),
			rapid.SampledFrom(words).Draw(t, "name"),
			strings.Join(rapid.SliceOfN(rapid.SampledFrom(words), 0, 3).Draw(t, "description"), " "),
			rapid.SampledFrom(models.Categories()).Draw(t, "category"),
			rapid.SampledFrom(models.Locations()).Draw(t, "location"),
			rapid.SampledFrom(days).Draw(t, "found"),
			rapid.IntRange(0, 5).Draw(t, "created"), // small range forces ties
		)
	})
}

func collectionGen(t *rapid.T) []*models.Item {
	n := rapid.IntRange(0, 25).Draw(t, "n")
	items := make([]*models.Item, n)
	for i := range items {
		items[i] = itemGen(i).Draw(t, fmt.Sprintf("item%d", i))
	}
	return items
}

func filterGen(t *rapid.T) Filter {
	var f Filter
	if rapid.Bool().Draw(t, "hasSearch") {
		f.Search = rapid.SampledFrom(words).Draw(t, "search")
		if rapid.Bool().Draw(t, "upper") {
			f.Search = strings.ToUpper(f.Search)
		}
	}
	if rapid.Bool().Draw(t, "hasCategory") {
		f.Category = rapid.SampledFrom(models.Categories()).Draw(t, "category")
	}
	if rapid.Bool().Draw(t, "hasLocation") {
		f.Location = rapid.SampledFrom(models.Locations()).Draw(t, "location")
	}
	if rapid.Bool().Draw(t, "hasFrom") {
		f.DateFrom = models.MustParseDate(rapid.SampledFrom(days).Draw(t, "from"))
	}
	if rapid.Bool().Draw(t, "hasTo") {
		f.DateTo = models.MustParseDate(rapid.SampledFrom(days).Draw(t, "to"))
	}
	return f
}

// referenceMatch restates the filter rules directly on the raw fields.
func referenceMatch(f Filter, item *models.Item) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Location != "" && item.Location != f.Location {
		return false
	}
	// YYYY-MM-DD strings order the same way as the dates they name
	found := item.DateFound.String()
	if !f.DateFrom.IsZero() && found < f.DateFrom.String() {
		return false
	}
	if !f.DateTo.IsZero() && found > f.DateTo.String() {
		return false
	}
	return true
}

func TestQueryProperty_ExactlyTheMatchingItems(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := collectionGen(t)
		f := filterGen(t)

		got := Query(items, f)

		want := 0
		for _, item := range items {
			if referenceMatch(f, item) {
				want++
				if !slices.Contains(got, item) {
					t.Fatalf("matching item %s missing from result", item.ID)
				}
			}
		}
		if len(got) != want {
			t.Fatalf("expected %d results, got %d", want, len(got))
		}
		for _, item := range got {
			if !referenceMatch(f, item) {
				t.Fatalf("non-matching item %s in result", item.ID)
			}
		}
	})
}

func TestFilterProperty_MatchesAgreesWithRules(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		item := itemGen(0).Draw(t, "item")
		f := filterGen(t)
		if got, want := f.Matches(item), referenceMatch(f, item); got != want {
			t.Fatalf("Matches = %v, want %v for filter %+v", got, want, f)
		}
	})
}

func TestQueryProperty_NewestFirstAndStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := collectionGen(t)
		f := filterGen(t)

		got := Query(items, f)
		for i := 1; i < len(got); i++ {
			if got[i-1].CreatedAt.Before(got[i].CreatedAt) {
				t.Fatalf("result not sorted newest first at %d", i)
			}
			if got[i-1].CreatedAt.Equal(got[i].CreatedAt) &&
				slices.Index(items, got[i-1]) > slices.Index(items, got[i]) {
				t.Fatalf("tie at %d not in snapshot order", i)
			}
		}

		again := Query(items, f)
		if !slices.Equal(ids(got), ids(again)) {
			t.Fatalf("repeated query changed order: %v vs %v", ids(got), ids(again))
		}
	})
}

func TestQueryProperty_InvertedDateRangeIsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := collectionGen(t)
		f := filterGen(t)
		from := rapid.IntRange(1, len(days)-1).Draw(t, "fromIdx")
		to := rapid.IntRange(0, from-1).Draw(t, "toIdx")
		f.DateFrom = models.MustParseDate(days[from])
		f.DateTo = models.MustParseDate(days[to])

		if got := Query(items, f); len(got) != 0 {
			t.Fatalf("expected empty result for inverted range, got %v", ids(got))
		}
	})
}
