package mcp

import (
	"fmt"
	"math"
)

// Аргументы инструментов приходят как распарсенный JSON: числа float64, строки string.

func requiredNumber(args map[string]interface{}, key string) (float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing required argument: %s", key)
	}
	n, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", key, err)
	}
	return n, nil
}

// optionalInt returns 0 when the argument is absent so the use case applies its default.
func optionalInt(args map[string]interface{}, key string) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	n, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", key, err)
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("argument %s: must be an integer", key)
	}
	return int(n), nil
}

func requiredString(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %s: expected string, got %T", key, v)
	}
	return s, nil
}

func radiusAndLimit(args map[string]interface{}) (int, int, error) {
	radius, err := optionalInt(args, "radius")
	if err != nil {
		return 0, 0, err
	}
	limit, err := optionalInt(args, "limit")
	if err != nil {
		return 0, 0, err
	}
	return radius, limit, nil
}

func toFloat(v interface{}) (float64, error) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("expected finite number")
	}
	return n, nil
}
