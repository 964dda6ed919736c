package model

type QueryCommand string

const (
	QueryCommandFilter  QueryCommand = "filter"
	QueryCommandExclude QueryCommand = "exclude"
)

// PostQuery is the raw (command, field, value) triple taken from the
// generic query path before validation.
type PostQuery struct {
	Command QueryCommand `json:"command"`
	Field   string       `json:"field"`
	Value   string       `json:"value"`
}
