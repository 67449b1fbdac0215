package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	rmlErrors "slub/librml/pkg/librml/errors"
	"slub/librml/pkg/librml/model"
)

// Structured documents arrive from JSON, YAML or CBOR decoders, each with its
// own idea of numbers and lists. The helpers below normalize those values.

func coerceString(path, field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &rmlErrors.CoercionError{Path: path, Field: field, Value: v}
	}
	return s, nil
}

// coerceBool accepts native booleans and the exact string "true".
func coerceBool(path, field string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return b == "true", nil
	default:
		return false, &rmlErrors.CoercionError{Path: path, Field: field, Value: v}
	}
}

func coerceInt(path, field string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, &rmlErrors.CoercionError{Path: path, Field: field, Value: v,
				Cause: fmt.Errorf("value overflows int")}
		}
		return int(n), nil
	case uint:
		if n > math.MaxInt {
			return 0, &rmlErrors.CoercionError{Path: path, Field: field, Value: v,
				Cause: fmt.Errorf("value overflows int")}
		}
		return int(n), nil
	case float64:
		return floatToInt(path, field, n)
	case float32:
		return floatToInt(path, field, float64(n))
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, &rmlErrors.CoercionError{Path: path, Field: field, Value: v, Cause: err}
		}
		return i, nil
	case string:
		return parseInt(path, field, n)
	default:
		return 0, &rmlErrors.CoercionError{Path: path, Field: field, Value: v}
	}
}

func floatToInt(path, field string, f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt || f < math.MinInt {
		return 0, &rmlErrors.CoercionError{Path: path, Field: field, Value: f,
			Cause: fmt.Errorf("not an integer")}
	}
	return int(f), nil
}

func parseInt(path, field, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, &rmlErrors.CoercionError{Path: path, Field: field, Value: s, Cause: err}
	}
	return i, nil
}

func coerceDate(path, field string, v any) (model.Date, error) {
	switch d := v.(type) {
	case string:
		return parseDate(path, field, d)
	case time.Time:
		return model.DateOf(d), nil
	default:
		return model.Date{}, &rmlErrors.CoercionError{Path: path, Field: field, Value: v}
	}
}

func parseDate(path, field, s string) (model.Date, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, &rmlErrors.CoercionError{Path: path, Field: field, Value: s, Cause: err}
	}
	return d, nil
}

func coerceStrings(path, field string, v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &rmlErrors.CoercionError{Path: path, Field: fmt.Sprintf("%s[%d]", field, i), Value: item}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &rmlErrors.CoercionError{Path: path, Field: field, Value: v}
	}
}

func coerceList(path, field string, v any) ([]any, error) {
	switch list := v.(type) {
	case []any:
		return list, nil
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, nil
	default:
		return nil, &rmlErrors.CoercionError{Path: path, Field: field, Value: v}
	}
}

func coerceMap(path, field string, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &rmlErrors.CoercionError{Path: path, Field: field, Value: v}
	}
	return m, nil
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
