// Package content holds the static educational catalogue: learning
// resources and news articles. The data ships with the binary and is
// read-only; list functions hand out copies so callers cannot mutate it.
package content

// Resource is one educational article with its key topics and takeaways.
type Resource struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Overview string   `json:"overview"`
	Topics   []string `json:"topics"`
	Details  []string `json:"details"`
	Benefits []string `json:"benefits"`
}

// Article is one news item. Trending is one of "up", "down", "neutral".
type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Age      string `json:"age"`
	Trending string `json:"trending"`
}

// Resources returns the educational resources in display order.
func Resources() []Resource {
	return append([]Resource(nil), resources...)
}

// ResourceByID returns the resource with the given ID, if any.
func ResourceByID(id string) (Resource, bool) {
	for _, r := range resources {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}

// News returns the news articles, newest first.
func News() []Article {
	return append([]Article(nil), articles...)
}
