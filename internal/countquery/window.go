package countquery

import (
	"strconv"
	"strings"
)

// AppendWindow appends a MySQL style "LIMIT offset,size" clause to query.
// A trailing terminator is removed first and re-appended after the clause.
// Offset and size are written as integer literals, so the parameter list
// bound to query does not change.
func AppendWindow(query string, offset, size int) string {
	body := query
	if clean, err := stripLineComments(query); err == nil {
		body = clean
	}
	body = trimTerminator(body)

	var b strings.Builder
	b.Grow(len(body) + 24)
	b.WriteString(body)
	b.WriteString(" LIMIT ")
	b.WriteString(strconv.Itoa(offset))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(size))
	b.WriteByte(';')
	return b.String()
}

func trimTerminator(query string) string {
	q := strings.TrimSpace(query)
	for strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(strings.TrimSuffix(q, ";"))
	}
	return q
}
