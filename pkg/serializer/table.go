/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"encoding"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

const emptyValue = "<empty>"

type tableRow struct {
	field string
	value string
}

// writeTable flattens data into FIELD/VALUE rows. Struct fields use their
// yaml tag name when set, slices are indexed as [i] and maps are sorted by key.
func writeTable(w io.Writer, data any) error {
	var rows []tableRow
	flatten("", reflect.ValueOf(data), &rows)
	if len(rows) == 0 {
		rows = append(rows, tableRow{field: "", value: emptyValue})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.field, r.value)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

var (
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

func flatten(prefix string, v reflect.Value, rows *[]tableRow) {
	if !v.IsValid() {
		*rows = append(*rows, tableRow{field: prefix, value: "<nil>"})
		return
	}

	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			*rows = append(*rows, tableRow{field: prefix, value: "<nil>"})
			return
		}
		if !isLeaf(v) {
			flatten(prefix, v.Elem(), rows)
			return
		}
	}

	if isLeaf(v) {
		*rows = append(*rows, tableRow{field: prefix, value: leafString(v)})
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name, inline, skip := fieldName(sf)
			if skip {
				continue
			}
			if inline {
				flatten(prefix, v.Field(i), rows)
				continue
			}
			flatten(join(prefix, name), v.Field(i), rows)
		}
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			*rows = append(*rows, tableRow{field: prefix, value: emptyValue})
			return
		}
		for i := 0; i < v.Len(); i++ {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), v.Index(i), rows)
		}
	case reflect.Map:
		if v.Len() == 0 {
			*rows = append(*rows, tableRow{field: prefix, value: emptyValue})
			return
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			flatten(join(prefix, fmt.Sprint(k.Interface())), v.MapIndex(k), rows)
		}
	default:
		*rows = append(*rows, tableRow{field: prefix, value: fmt.Sprint(v.Interface())})
	}
}

func isLeaf(v reflect.Value) bool {
	if v.Type().Implements(stringerType) || v.Type().Implements(textMarshalerType) {
		return true
	}
	switch v.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map, reflect.Pointer, reflect.Interface:
		return false
	default:
		return true
	}
}

func leafString(v reflect.Value) string {
	if !v.CanInterface() {
		return fmt.Sprint(v)
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v.Interface())
}

func fieldName(sf reflect.StructField) (name string, inline, skip bool) {
	tag := sf.Tag.Get("yaml")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "inline" {
			return "", true, false
		}
	}
	if parts[0] != "" {
		return parts[0], false, false
	}
	if sf.Anonymous {
		return "", true, false
	}
	return sf.Name, false, false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
