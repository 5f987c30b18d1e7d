package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// Strings are trimmed and may carry a fractional part, which is truncated
// ("12.7" -> 12). Anything unparsable converts to 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return truncate(v)
	case float32:
		return truncate(float64(v))
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	case nil:
		return 0
	default:
		return parseInt(fmt.Sprintf("%v", v))
	}
}

// ToFloat converts various types to float64. Anything unparsable, NaN or
// infinite converts to 0.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	case nil:
		return 0
	default:
		return parseFloat(fmt.Sprintf("%v", v))
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, integers (1=true), and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint64, uint32:
		return ToInt(v) == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return truncate(f)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

// intLimit is 2^(bits-1), the first float outside the int range.
var intLimit = math.Ldexp(1, strconv.IntSize-1)

func truncate(f float64) int {
	if math.IsNaN(f) || f >= intLimit || f < -intLimit {
		return 0
	}
	return int(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
