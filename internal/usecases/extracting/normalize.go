package extracting

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/verity-api/pkg/utils"
)

// Model output is loosely typed; these helpers coerce it into the declared schema.

func str(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func optStr(v any) *string {
	s := str(v)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
		return nil
	}
	return &s
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		cleaned := strings.NewReplacer(",", "", "₹", "", "Rs.", "", "Rs", "", "INR", "", " ", "").Replace(strings.TrimSpace(t))
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func amount(v any) float64 {
	f, ok := number(v)
	if !ok {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(math.Abs(f))
}

func optID(v any) *int64 {
	f, ok := number(v)
	if !ok || f <= 0 || f != math.Trunc(f) {
		return nil
	}
	id := int64(f)
	return &id
}

func boolean(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "1":
			return true
		}
	case float64:
		return t != 0
	}
	return false
}

func clamp01(v any) float64 {
	f, ok := number(v)
	if !ok || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// enum lower-cases v and returns it when allowed, def otherwise.
func enum[T ~string](v any, def T, allowed ...T) T {
	s := T(strings.ToLower(str(v)))
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return def
}

// date normalizes to YYYY-MM-DD. Unparseable values become nil.
func date(v any) *string {
	s := optStr(v)
	if s == nil {
		return nil
	}
	parsed, err := utils.ParseDate(*s)
	if err != nil || parsed == nil {
		return nil
	}
	formatted := parsed.Format(utils.DateLayout)
	return &formatted
}

func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return m
}

func objects(v any) []map[string]any {
	list, _ := v.([]any)
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func stringsList(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := str(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// first returns the first key of m that is present.
func first(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
