package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ErrNoData is returned when there are no records to export.
var ErrNoData = errors.New("no data to export")

// MarshalCSV renders a collection of flat records as CSV. The header row
// is derived from the record's field order (json tag names); embedded
// structs are flattened. Quoting is minimal RFC 4180: only fields
// containing a comma or a double quote are quoted, with embedded quotes
// doubled. Rows are joined with "\n". Downstream spreadsheet imports
// depend on this exact format, which is why encoding/csv (which also
// quotes on newlines and can emit CRLF) is not used here.
func MarshalCSV[T any](records []T) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var t T
	headers := fieldNames(reflect.TypeOf(t))

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, joinRow(headers))
	for _, rec := range records {
		values := fieldValues(reflect.ValueOf(rec))
		lines = append(lines, joinRow(values))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func joinRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteField(f)
	}
	return strings.Join(quoted, ",")
}

// quoteField applies minimal quoting: only when the value contains a
// comma or a double quote.
func quoteField(value string) string {
	if strings.ContainsAny(value, `,"`) {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func fieldNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			names = append(names, fieldNames(field.Type)...)
			continue
		}
		names = append(names, columnName(field))
	}
	return names
}

func columnName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}
	return tag
}

func fieldValues(v reflect.Value) []string {
	t := v.Type()
	var values []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			values = append(values, fieldValues(v.Field(i))...)
			continue
		}
		values = append(values, formatValue(v.Field(i)))
	}
	return values
}

func formatValue(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch value := v.Interface().(type) {
	case time.Time:
		if value.IsZero() {
			return ""
		}
		return value.Format(time.RFC3339)
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	}

	switch v.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		encoded, err := json.Marshal(v.Interface())
		if err != nil {
			return ""
		}
		return string(encoded)
	default:
		return fmt.Sprint(v.Interface())
	}
}
