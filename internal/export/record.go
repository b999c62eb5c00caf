package export

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// Field is one named cell of a record.
type Field struct {
	Key   string
	Value interface{}
}

// Record is a flat row. Field order is the column order.
type Record []Field

// R builds a record from alternating key/value arguments.
func R(kv ...interface{}) Record {
	rec := make(Record, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		rec = append(rec, Field{Key: fmt.Sprint(kv[i]), Value: kv[i+1]})
	}
	return rec
}

// Get returns the value stored under key.
func (r Record) Get(key string) (interface{}, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Header returns the keys of the first record.
func Header(records []Record) []string {
	if len(records) == 0 {
		return nil
	}
	keys := make([]string, len(records[0]))
	for i, f := range records[0] {
		keys[i] = f.Key
	}
	return keys
}

// Cell renders a value as text. Objects, slices and nil are JSON encoded.
func Cell(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	if v == nil {
		return "null"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
	return fmt.Sprint(v)
}

// FileName returns <name>_<YYYY-MM-DD>.<ext> in the UTC calendar.
func FileName(name string, at time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", name, at.UTC().Format("2006-01-02"), ext)
}
