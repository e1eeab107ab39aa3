package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"pagequery/internal/common/pagination"
	"pagequery/internal/repository"
)

// Output is the JSON output format for a page.
type Output struct {
	Strategy   string  `json:"strategy"`
	TotalCount int64   `json:"total_count"`
	Offset     int     `json:"offset"`
	Size       int     `json:"size"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	HasMore    bool    `json:"has_more"`
	Rows       [][]any `json:"rows"`
}

// mapValues maps a row to its column values, decoding text protocol bytes.
func mapValues(r repository.Row) ([]any, error) {
	out := make([]any, r.Len())
	for i := range out {
		v := r.Value(i)
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		out[i] = v
	}
	return out, nil
}

func newOutput(strategy pagination.Strategy, req pagination.Request, res pagination.Result[[]any]) Output {
	meta := res.Metadata(req)
	return Output{
		Strategy:   strategy.String(),
		TotalCount: meta.Total,
		Offset:     meta.Offset,
		Size:       meta.Size,
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
		HasMore:    meta.HasMore,
		Rows:       res.Items,
	}
}

func writeJSON(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, out Output) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Rows %d-%d of %d (page %d/%d, %s)\n",
		min(int64(out.Offset)+1, out.TotalCount),
		min(int64(out.Offset+len(out.Rows)), out.TotalCount),
		out.TotalCount, out.Page, out.TotalPages, out.Strategy)
	for i, row := range out.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatCell(v)
		}
		fmt.Fprintf(&sb, "%4d  %s\n", out.Offset+i+1, strings.Join(cells, " | "))
	}
	if out.HasMore {
		fmt.Fprintf(&sb, "... next: --offset %d --size %d\n", out.Offset+out.Size, out.Size)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
