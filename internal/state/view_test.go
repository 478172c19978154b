package state

import (
	"reflect"
	"testing"

	"github.com/shopbook/bookdesk/internal/catalog"
)

func sampleBooks() []catalog.Book {
	return []catalog.Book{
		{StoreID: "1", Name: "Harry Potter", Category: "TLTT", Author: "Rowling", Price: 100000, Discount: 20},
		{StoreID: "2", Name: "Lord of the Rings", Category: "TLTT", Author: "Tolkien", Price: 150000},
		{StoreID: "3", Name: "Cosmos", Category: "TLKH", Author: "Sagan", Price: 80000},
		{StoreID: "4", Name: "Sapiens", Category: "TLLS", Author: "Harari", Price: 120000, Discount: 50},
		{StoreID: "5", Name: "A Brief History", Category: "TLKH", Author: "Hawking", Price: 80000},
	}
}

func ids(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.StoreID
	}
	return out
}

func TestViewState_SearchIsCaseInsensitive(t *testing.T) {
	v := NewViewState(0)
	v.SetBooks(sampleBooks())
	v.SetSearch("harry")

	got := ids(v.Visible())
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("Visible = %v, want [1]", got)
	}
}

func TestViewState_FilterOrderDoesNotAffectResult(t *testing.T) {
	base := NewViewState(0)
	base.SetBooks(sampleBooks())
	base.Category = "TLKH"
	base.Author = "Sagan"
	base.SetSearch("cos")

	// Applying the same parameters in a different entry order must select the
	// same subset.
	other := NewViewState(0)
	other.SetBooks(sampleBooks())
	other.SetSearch("cos")
	other.Author = "Sagan"
	other.Category = "TLKH"

	if !reflect.DeepEqual(ids(base.Visible()), ids(other.Visible())) {
		t.Fatalf("filter outcome depends on entry order: %v vs %v", ids(base.Visible()), ids(other.Visible()))
	}
	if got := ids(base.Visible()); !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("Visible = %v, want [3]", got)
	}
}

func TestViewState_SortByFinalPriceIsStable(t *testing.T) {
	v := NewViewState(0)
	v.SetBooks(sampleBooks())
	v.Sort = SortPriceAsc

	// Final prices: 1=80000, 2=150000, 3=80000, 4=60000, 5=80000.
	// The three 80000 entries must keep their fetched order.
	got := ids(v.Visible())
	want := []string{"4", "1", "3", "5", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ascending sort = %v, want %v", got, want)
	}

	v.Sort = SortPriceDesc
	got = ids(v.Visible())
	want = []string{"2", "1", "3", "5", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("descending sort = %v, want %v", got, want)
	}
}

func TestViewState_Pagination(t *testing.T) {
	v := NewViewState(2)
	v.SetBooks(sampleBooks())

	if got := v.PageCount(); got != 3 {
		t.Fatalf("PageCount = %d, want 3", got)
	}
	if got := ids(v.Visible()); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("page 1 = %v, want [1 2]", got)
	}

	v.NextPage()
	v.NextPage()
	if got := ids(v.Visible()); !reflect.DeepEqual(got, []string{"5"}) {
		t.Fatalf("page 3 = %v, want [5]", got)
	}

	// No page beyond the last.
	v.NextPage()
	if v.Page != 3 {
		t.Fatalf("Page = %d, want clamped at 3", v.Page)
	}

	v.PrevPage()
	if v.Page != 2 {
		t.Fatalf("Page = %d, want 2", v.Page)
	}
}

func TestViewState_SearchResetsPage(t *testing.T) {
	v := NewViewState(2)
	v.SetBooks(sampleBooks())
	v.Page = 3

	v.SetSearch("o")
	if v.Page != 1 {
		t.Fatalf("Page = %d after search change, want 1", v.Page)
	}
}

func TestViewState_RefetchClampsPageAndKeepsFilters(t *testing.T) {
	v := NewViewState(2)
	v.SetBooks(sampleBooks())
	v.SetSearch("o")
	v.Page = 2

	// Simulate deletes that empty the last page, followed by the full refetch
	// the mutation flow performs. Only "Harry Potter" and "Lord of the Rings"
	// remain matching, so one page is left.
	remaining := sampleBooks()[:2]
	v.SetBooks(remaining)

	if v.Search != "o" {
		t.Fatalf("Search = %q after refetch, want preserved", v.Search)
	}
	if v.Page != 1 {
		t.Fatalf("Page = %d after refetch, want clamped to 1", v.Page)
	}
}

func TestViewState_EmptyFilteredStillHasOnePage(t *testing.T) {
	v := NewViewState(5)
	v.SetBooks(sampleBooks())
	v.SetSearch("no such book")

	if got := v.PageCount(); got != 1 {
		t.Fatalf("PageCount = %d, want 1", got)
	}
	if got := v.Visible(); len(got) != 0 {
		t.Fatalf("Visible = %v, want empty", got)
	}
}

func TestViewState_ResetFilters(t *testing.T) {
	v := NewViewState(0)
	v.SetBooks(sampleBooks())
	v.Category = "TLKH"
	v.Author = "Sagan"
	v.Sort = SortPriceAsc
	v.SetSearch("cos")

	v.ResetFilters()
	if v.Category != FilterAll || v.Author != FilterAll || v.Search != "" || v.Sort != SortNone || v.Page != 1 {
		t.Fatalf("ResetFilters left state %+v", v)
	}
	if got := len(v.Visible()); got != len(sampleBooks()) {
		t.Fatalf("Visible = %d books after reset, want all", got)
	}
}

func TestOptionLists_DistinctFirstAppearance(t *testing.T) {
	books := sampleBooks()

	cats := CategoryOptions(books)
	if !reflect.DeepEqual(cats, []string{FilterAll, "TLTT", "TLKH", "TLLS"}) {
		t.Fatalf("CategoryOptions = %v", cats)
	}

	authors := AuthorOptions(books)
	want := []string{FilterAll, "Rowling", "Tolkien", "Sagan", "Harari", "Hawking"}
	if !reflect.DeepEqual(authors, want) {
		t.Fatalf("AuthorOptions = %v, want %v", authors, want)
	}
}
