package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/svgstore/internal/domain"
)

// Report evaluates JSONPath expressions against a build report.
//
// Policy:
// - Each expression is evaluated independently; a failing one does not stop the rest.
// - Results keep the order of exprs.
func Report(report domain.BuildReport, exprs []string) ([]domain.QueryResult, error) {
	b, err := json.Marshal(report)
	if err != nil {
		return nil, &domain.OpError{Op: "query.encode", Kind: domain.KindExecution, Err: err}
	}
	return Apply(b, exprs), nil
}

// Apply evaluates JSONPath expressions against a JSON document.
func Apply(body []byte, exprs []string) []domain.QueryResult {
	out := make([]domain.QueryResult, 0, len(exprs))
	if len(exprs) == 0 {
		return out
	}

	doc, err := parseJSON(body)
	if err != nil {
		for _, expr := range exprs {
			out = append(out, domain.QueryResult{
				Expr:    expr,
				Success: false,
				Message: fmt.Sprintf("query %q: document is not valid JSON", expr),
			})
		}
		return out
	}

	for _, raw := range exprs {
		expr := strings.TrimSpace(raw)
		if expr == "" {
			out = append(out, domain.QueryResult{
				Expr:    raw,
				Success: false,
				Message: "empty jsonpath expression",
			})
			continue
		}

		val, getErr := jsonpath.Get(expr, doc)
		if getErr != nil {
			out = append(out, domain.QueryResult{
				Expr:    expr,
				Success: false,
				Message: fmt.Sprintf("jsonpath error: %v", getErr),
			})
			continue
		}

		if isEmptyValue(val) {
			out = append(out, domain.QueryResult{
				Expr:    expr,
				Success: false,
				Message: "no value found",
			})
			continue
		}

		s, convErr := toString(val)
		if convErr != nil {
			out = append(out, domain.QueryResult{
				Expr:    expr,
				Success: false,
				Message: fmt.Sprintf("cannot render value: %v", convErr),
			})
			continue
		}

		out = append(out, domain.QueryResult{Expr: expr, Value: s, Success: true})
	}
	return out
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// a single match is printed bare
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
