package model

type PostDetailed struct {
	Post       *Post       `json:"post,omitempty"`
	Author     *User       `json:"author,omitempty"`
	Comments   []*Comment  `json:"comments,omitempty"`
	Categories []*Category `json:"categories,omitempty"`
}
