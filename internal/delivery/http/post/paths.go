package post_http

import "fmt"

func postPath(id int64) string {
	return fmt.Sprintf("/posts/%d/", id)
}
