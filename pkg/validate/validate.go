// Package validate provides struct-tag validation for request inputs.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gt=N                number > N
//	gte=N               number >= N
//	integer             whole number
//	numeric             any number
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type Input struct {
//	    Email    string `json:"email"    validate:"required,email"`
//	    Password string `json:"password" validate:"required,min=8"`
//	    Role     string `json:"role"     validate:"nullable,in=ADMIN,CUSTOMER"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		// In rules carry commas in their parameter list, so re-join the
		// tail once an in= segment starts.
		rules = regroupInRule(rules)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}
	case "min":
		if msg := checkBound(field, v, raw, param, "min"); msg != "" {
			return msg
		}
	case "max":
		if msg := checkBound(field, v, raw, param, "max"); msg != "" {
			return msg
		}
	case "gt":
		n, _ := strconv.ParseFloat(param, 64)
		if f, ok := asNumber(v); !ok || f <= n {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "gte":
		n, _ := strconv.ParseFloat(param, 64)
		if f, ok := asNumber(v); !ok || f < n {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "in":
		for _, opt := range strings.Split(param, ",") {
			if raw == opt {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

// checkBound applies min/max to string length or numeric value.
func checkBound(field string, v reflect.Value, raw, param, kind string) string {
	limit, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return ""
	}

	if v.Kind() == reflect.String {
		n := float64(len([]rune(raw)))
		if kind == "min" && n < limit {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
		if kind == "max" && n > limit {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, param)
		}
		return ""
	}

	if f, ok := asNumber(v); ok {
		if kind == "min" && f < limit {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
		if kind == "max" && f > limit {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}
	}
	return ""
}

func asNumber(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Ptr:
		if v.IsNil() {
			return 0, false
		}
		return asNumber(v.Elem())
	}
	return 0, false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

// regroupInRule re-joins the comma-separated options of an in= rule that
// strings.Split broke apart.
func regroupInRule(rules []string) []string {
	out := make([]string, 0, len(rules))
	for i := 0; i < len(rules); i++ {
		r := rules[i]
		if strings.HasPrefix(r, "in=") {
			for i+1 < len(rules) && !strings.Contains(rules[i+1], "=") && !isKnownRule(rules[i+1]) {
				i++
				r += "," + rules[i]
			}
		}
		out = append(out, r)
	}
	return out
}

func isKnownRule(s string) bool {
	switch s {
	case "required", "nullable", "email", "integer", "numeric":
		return true
	}
	return false
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return strings.ToLower(f.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}
