package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/dmeister/py-github/internal/domain"
)

// Select evaluates a JSONPath expression against the JSON form of v and
// returns the match as text. A single-element match is unwrapped; an empty
// match is an error.
func Select(v any, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", selectError(expr, fmt.Errorf("%w: empty jsonpath expression", domain.ErrInvalidConfig))
	}

	doc, err := toJSONValue(v)
	if err != nil {
		return "", selectError(expr, err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", selectError(expr, fmt.Errorf("jsonpath error: %w", err))
	}
	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "render.select",
			Kind: domain.KindNotFound,
			Path: expr,
			Err:  fmt.Errorf("%w: no value found", domain.ErrNotFound),
		}
	}
	return toString(val)
}

func selectError(expr string, err error) error {
	return &domain.OpError{Op: "render.select", Kind: domain.KindInvalidConfig, Path: expr, Err: err}
}

// toJSONValue converts v into the generic form jsonpath walks.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
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
	// jsonpath filters and wildcards return slices.
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
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
