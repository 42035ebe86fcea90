package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Var is one KEY=value pair extracted from an env-tagged struct field.
type Var struct {
	Key   string
	Value string
}

// Marshal reflects over a pointer to an env-tagged struct and returns one
// Var per exported tagged field, in declaration order, zero values
// included. It is the display form of a configuration: what the process
// is actually running with.
func Marshal(c any) ([]Var, error) {
	fields, err := taggedFields(c)
	if err != nil {
		return nil, err
	}

	vars := make([]Var, 0, len(fields))
	for _, f := range fields {
		vars = append(vars, Var{Key: f.key, Value: formatValue(f.val)})
	}

	return vars, nil
}

// MarshalEnv renders c as .env file content. Zero-valued fields are
// skipped so the file only pins values that differ from Go zero defaults.
func MarshalEnv(c any) (string, error) {
	fields, err := taggedFields(c)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, f := range fields {
		if isZeroValue(f.val) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s=%s", f.key, formatValue(f.val)))
	}

	result := strings.Join(lines, "\n")
	if result != "" && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	return result, nil
}

type taggedField struct {
	key string
	val reflect.Value
}

func taggedFields(c any) ([]taggedField, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected pointer to struct, got %T", c)
	}

	v = v.Elem()
	t := v.Type()

	var fields []taggedField
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")

		// Skip fields without env tag or unexported fields
		if tag == "" || !field.IsExported() {
			continue
		}

		// Parse tag: "KEY,required,notEmpty" or plain "KEY"
		key := strings.Split(tag, ",")[0]
		if key == "" {
			continue
		}

		fields = append(fields, taggedField{key: key, val: v.Field(i)})
	}

	return fields, nil
}

// isZeroValue checks if a reflect.Value is the zero value for its type
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// formatValue converts a reflect.Value to its string representation
func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
