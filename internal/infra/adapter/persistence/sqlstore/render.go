package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pagequery/internal/countquery"
	"pagequery/internal/sqlparam"
)

// RenderSQL inlines params into query as SQL literals. The output is for logs
// only and must never be executed. When the placeholders cannot be matched to
// params the query is returned with the values appended in a comment.
func RenderSQL(query string, params sqlparam.List) string {
	offsets, err := countquery.Placeholders(query)
	if err != nil || len(offsets) != params.Len() {
		if params.Len() == 0 {
			return query
		}
		return fmt.Sprintf("%s /* params: %v */", query, params.Values())
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8*len(offsets))
	last := 0
	for i, off := range offsets {
		sb.WriteString(query[last:off])
		sb.WriteString(literal(params.At(i)))
		last = off + 1
	}
	sb.WriteString(query[last:])
	return sb.String()
}

func literal(p sqlparam.Param) string {
	if p.Value == nil {
		return "NULL"
	}
	switch v := p.Value.(type) {
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05") + "'"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(v), "'", "''") + "'"
	}
}
