package countquery

import (
	"errors"
	"fmt"
	"strings"

	"pagequery/internal/sqlparam"
)

// Result is a derived count query together with its bind parameters.
type Result struct {
	Query  string
	Params sqlparam.List
	// Removed lists the 0-based positions of the original parameters that were
	// dropped together with the ORDER BY clause or the projection.
	Removed []int
}

// shape records the top-level structure of a SELECT statement.
type shape struct {
	selectTok  token
	fromTok    token
	orderStart int
	orderEnd   int
	distinct   bool
	groupBy    bool
	having     bool
	limit      bool
}

// Rewrite derives a query returning the total number of rows query would
// produce without a window, along with the parameters it binds.
//
// The ORDER BY clause and any placeholders inside it are removed. Grouped or
// HAVING statements, DISTINCT projections and statements with their own LIMIT
// keep their projection and are counted through a derived table. Everything
// else has its projection replaced by count(*).
func Rewrite(query string, params sqlparam.List) (Result, error) {
	text, err := stripLineComments(query)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnrewritableQuery, err)
	}
	text = trimTerminator(text)

	toks, err := scan(text)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnrewritableQuery, err)
	}

	var holders []token
	for _, t := range toks {
		if t.kind == tokenPlaceholder {
			holders = append(holders, t)
		}
	}
	if len(holders) != params.Len() {
		return Result{}, fmt.Errorf("%w: query has %d placeholders, %d parameters bound",
			ErrParameterMismatch, len(holders), params.Len())
	}

	sh, err := analyze(toks, len(text))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnrewritableQuery, err)
	}

	// GROUP BY and HAVING may refer to projection ordinals or aliases.
	keepProjection := sh.distinct || sh.limit || sh.groupBy || sh.having
	projStart, projEnd := sh.selectTok.end, sh.fromTok.start

	var removed []int
	for i, h := range holders {
		inOrder := sh.orderStart >= 0 && h.start >= sh.orderStart && h.start < sh.orderEnd
		inProjection := !keepProjection && h.start >= projStart && h.start < projEnd
		if inOrder || inProjection {
			removed = append(removed, i)
		}
	}

	prefix := text[:sh.selectTok.start]
	body := text[sh.fromTok.start:]
	if sh.orderStart >= 0 {
		body = strings.TrimRight(text[sh.fromTok.start:sh.orderStart], " \t\r\n")
		if tail := strings.TrimSpace(text[sh.orderEnd:]); tail != "" {
			body += " " + tail
		}
	}

	var b strings.Builder
	b.Grow(len(text) + 48)
	b.WriteString(prefix)
	switch {
	case keepProjection:
		b.WriteString("SELECT count(*) FROM (SELECT")
		b.WriteString(text[projStart:projEnd])
		b.WriteString(body)
		b.WriteString(") count_rows")
	default:
		b.WriteString("SELECT count(*) ")
		b.WriteString(body)
	}

	return Result{
		Query:   b.String(),
		Params:  params.Without(removed...),
		Removed: removed,
	}, nil
}

func analyze(toks []token, end int) (shape, error) {
	sh := shape{orderStart: -1, orderEnd: -1}
	selectAt, fromAt := -1, -1
	first := true

	for i, t := range toks {
		if t.kind != tokenWord || t.depth != 0 {
			continue
		}
		if first {
			if t.word != "SELECT" && t.word != "WITH" {
				return sh, fmt.Errorf("statement starts with %s", t.word)
			}
			first = false
		}

		switch t.word {
		case "UNION", "INTERSECT", "EXCEPT", "MINUS":
			return sh, fmt.Errorf("set operation %s at top level", t.word)
		case "SELECT":
			if selectAt < 0 {
				selectAt = i
				sh.selectTok = t
				if next, ok := wordAfter(toks, i); ok && (next == "DISTINCT" || next == "DISTINCTROW") {
					sh.distinct = true
				}
			}
			continue
		case "FROM":
			if selectAt >= 0 && fromAt < 0 {
				fromAt = i
				sh.fromTok = t
			}
			continue
		}

		if fromAt < 0 {
			continue
		}
		switch t.word {
		case "ORDER":
			if next, ok := wordAfter(toks, i); ok && next == "BY" && sh.orderStart < 0 {
				sh.orderStart = t.start
			}
		case "GROUP":
			if next, ok := wordAfter(toks, i); ok && next == "BY" {
				sh.groupBy = true
			}
		case "HAVING":
			sh.having = true
		case "LIMIT":
			sh.limit = true
			closeOrder(&sh, t.start)
		case "OFFSET", "FOR", "LOCK":
			closeOrder(&sh, t.start)
		}
	}

	if first {
		return sh, errors.New("empty statement")
	}
	if selectAt < 0 {
		return sh, errors.New("no top-level SELECT")
	}
	if fromAt < 0 {
		return sh, errors.New("no FROM clause after top-level SELECT")
	}
	closeOrder(&sh, end)
	return sh, nil
}

func closeOrder(sh *shape, at int) {
	if sh.orderStart >= 0 && sh.orderEnd < 0 {
		sh.orderEnd = at
	}
}

// wordAfter returns the keyword that directly follows toks[i] at the same depth.
func wordAfter(toks []token, i int) (string, bool) {
	if i+1 >= len(toks) {
		return "", false
	}
	next := toks[i+1]
	if next.kind != tokenWord || next.depth != toks[i].depth {
		return "", false
	}
	return next.word, true
}

// Rewriter derives count queries and lets callers register an explicit count
// query for statements Rewrite cannot handle. A Rewriter is safe for
// concurrent use once configured.
type Rewriter struct {
	overrides map[string]string
}

// NewRewriter returns a Rewriter with no overrides.
func NewRewriter() *Rewriter {
	return &Rewriter{overrides: map[string]string{}}
}

// WithOverride returns a copy of r that answers query with countQuery instead
// of deriving one. countQuery must bind the same parameters, in the same order,
// as query.
func (r *Rewriter) WithOverride(query, countQuery string) *Rewriter {
	next := &Rewriter{overrides: make(map[string]string, len(r.overrides)+1)}
	for k, v := range r.overrides {
		next.overrides[k] = v
	}
	next.overrides[trimTerminator(query)] = trimTerminator(countQuery)
	return next
}

// Rewrite returns the registered override for query if any, otherwise the
// derived count query.
func (r *Rewriter) Rewrite(query string, params sqlparam.List) (Result, error) {
	countQuery, ok := r.overrides[trimTerminator(query)]
	if !ok {
		return Rewrite(query, params)
	}
	offsets, err := Placeholders(countQuery)
	if err != nil {
		return Result{}, fmt.Errorf("%w: override: %v", ErrUnrewritableQuery, err)
	}
	if len(offsets) != params.Len() {
		return Result{}, fmt.Errorf("%w: override has %d placeholders, %d parameters bound",
			ErrParameterMismatch, len(offsets), params.Len())
	}
	return Result{Query: countQuery, Params: params}, nil
}
