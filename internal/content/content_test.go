package content

import "testing"

func TestResources(t *testing.T) {
	got := Resources()
	if len(got) != 6 {
		t.Fatalf("got %d resources, want 6", len(got))
	}
	seen := make(map[string]bool)
	for _, r := range got {
		if r.ID == "" || r.Title == "" || r.Overview == "" {
			t.Fatalf("incomplete resource: %+v", r)
		}
		if seen[r.ID] {
			t.Fatalf("duplicate resource ID %q", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestResourceByID(t *testing.T) {
	r, ok := ResourceByID("investing-101")
	if !ok {
		t.Fatalf("investing-101 not found")
	}
	if r.Title != "Investing 101" {
		t.Fatalf("title = %q", r.Title)
	}

	if _, ok := ResourceByID("day-trading"); ok {
		t.Fatalf("unknown ID reported found")
	}
}

func TestNews(t *testing.T) {
	got := News()
	if len(got) != 6 {
		t.Fatalf("got %d articles, want 6", len(got))
	}
	for _, a := range got {
		switch a.Trending {
		case "up", "down", "neutral":
		default:
			t.Fatalf("article %q has trending %q", a.ID, a.Trending)
		}
	}
}

func TestListsAreCopies(t *testing.T) {
	first := Resources()
	first[0].Title = "mutated"
	if Resources()[0].Title == "mutated" {
		t.Fatalf("Resources leaked internal slice")
	}
}
