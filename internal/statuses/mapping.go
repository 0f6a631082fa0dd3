package statuses

import (
	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "statuses", "s").
	Project("id", "ID").
	Project("version", "Version").
	Project("idx", "Index").
	Project("code", "Code").
	Project("text", "Text").
	Project("comment", "Comment")

var defaultSort = query.SortField{Field: "Index"}

const returning = "id, version, idx, code, text, comment"

func scanStatus(s repository.Scanner) (Status, error) {
	var st Status
	err := s.Scan(&st.ID, &st.Version, &st.Index, &st.Code, &st.Text, &st.Comment)
	return st, err
}
