package model

type PostFilters struct {
	AuthorID        *int64
	PublishedOnly   bool
	UnpublishedOnly bool
	NewestFirst     bool
}
