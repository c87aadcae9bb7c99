// Package aggregate reshapes flat, date-stamped rows into chart series.
package aggregate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DateKey is the JSON field holding a row's date.
const DateKey = "date"

// Row is one date of a pivot: the date plus one value per sub-entity.
// Columns keep first-seen order; a sub-entity with no data on this date has
// no column at all.
type Row[V any] struct {
	Date   string
	keys   []string
	values map[string]V
}

// NewRow builds an empty row for date.
func NewRow[V any](date string) *Row[V] {
	return &Row[V]{Date: date, values: make(map[string]V)}
}

// Keys returns the sub-entity columns in first-seen order.
func (r Row[V]) Keys() []string {
	return r.keys
}

// Get returns the value of key and whether it is present.
func (r Row[V]) Get(key string) (V, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Set assigns key, appending it to the column order when new.
func (r *Row[V]) Set(key string, v V) {
	if r.values == nil {
		r.values = make(map[string]V)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// fieldName is the JSON member of column key. Keys that would read as the
// date member, "date" and any underscores before it, gain one leading
// underscore, so "date" renders as "_date" and "_date" as "__date".
func fieldName(key string) string {
	if strings.TrimLeft(key, "_") == DateKey {
		return "_" + key
	}
	return key
}

// columnKey inverts fieldName.
func columnKey(field string) string {
	if strings.TrimLeft(field, "_") == DateKey {
		return field[1:]
	}
	return field
}

// MarshalJSON renders {"date": ..., "<key>": value, ...} in column order.
func (r Row[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	date, _ := json.Marshal(r.Date)
	buf.WriteString(`"` + DateKey + `":`)
	buf.Write(date)
	for _, k := range r.keys {
		key, err := json.Marshal(fieldName(k))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat object back, keeping field order as column order.
func (r *Row[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("pivot row: expected object, got %v", tok)
	}
	*r = Row[V]{values: make(map[string]V)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if key == DateKey {
			if err := dec.Decode(&r.Date); err != nil {
				return fmt.Errorf("pivot row date: %w", err)
			}
			continue
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("pivot row %q: %w", key, err)
		}
		r.Set(columnKey(key), v)
	}
	_, err = dec.Token()
	return err
}

// Pivot groups rows by date and sub-entity. Dates appear in first-seen order,
// so callers pass rows sorted by date. Values sharing (date, key) are folded
// with combine. A row whose key is "" still opens its date but adds no column.
func Pivot[R any, V any](
	rows []R,
	dateOf func(R) string,
	keyOf func(R) string,
	valueOf func(R) V,
	combine func(acc, next V) V,
) []Row[V] {
	out := make([]Row[V], 0)
	index := make(map[string]int)
	for _, row := range rows {
		date := dateOf(row)
		i, ok := index[date]
		if !ok {
			i = len(out)
			index[date] = i
			out = append(out, *NewRow[V](date))
		}
		key := keyOf(row)
		if key == "" {
			continue
		}
		v := valueOf(row)
		if prev, seen := out[i].Get(key); seen {
			v = combine(prev, v)
		}
		out[i].Set(key, v)
	}
	return out
}

// Number is what Sum can add.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// Sum is a running total per (date, key).
func Sum[V Number](acc, next V) V {
	return acc + next
}

// Last keeps the most recent value per (date, key).
func Last[V any](_, next V) V {
	return next
}

// Columns is the union of row keys in first-seen order, used as legend order.
func Columns[V any](rows []Row[V]) []string {
	seen := make(map[string]struct{})
	cols := make([]string, 0)
	for _, r := range rows {
		for _, k := range r.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	return cols
}
