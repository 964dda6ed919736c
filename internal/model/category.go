package model

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryDetailed carries a category together with the titles of the
// posts attached to it.
type CategoryDetailed struct {
	Category   *Category `json:"category"`
	PostTitles []string  `json:"post_titles"`
}
