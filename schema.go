package textdex

import (
	"fmt"
	"reflect"
	"strings"
)

const tagKey = "textdex"

// schemaMeta holds parsed struct tag metadata, cached per TypedIndex.
type schemaMeta struct {
	typ reflect.Type // struct type for reconstruction

	// Struct field index of the searchable text field.
	textIdx int

	// Mapping from struct field index → record key for extra fields,
	// stored via the collection's dynamic fields.
	extraFields []fieldMapping
}

type fieldMapping struct {
	structIdx int
	name      string
}

// parseSchema reflects on T and extracts textdex struct tag metadata.
func parseSchema[T any]() (*schemaMeta, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("textdex: type %s is not a struct", t)
	}

	meta := &schemaMeta{typ: t, textIdx: -1}

	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			continue
		}
		if err := applyTag(meta, i, f, tag); err != nil {
			return nil, err
		}
	}

	if meta.textIdx == -1 {
		return nil, fmt.Errorf("textdex: no field with `textdex:\"...,text\"` tag in %s", t)
	}
	return meta, nil
}

// applyTag processes a single struct field's textdex tag.
func applyTag(meta *schemaMeta, idx int, f reflect.StructField, tag string) error {
	name, modifier, _ := strings.Cut(tag, ",")

	switch modifier {
	case "text":
		if meta.textIdx != -1 {
			return fmt.Errorf("textdex: duplicate text tag on field %s", f.Name)
		}
		if f.Type.Kind() != reflect.String {
			return fmt.Errorf("textdex: text field %s must be a string", f.Name)
		}
		meta.textIdx = idx
	case "":
		meta.extraFields = append(meta.extraFields, fieldMapping{structIdx: idx, name: name})
	default:
		return fmt.Errorf("textdex: unknown modifier %q on field %s", modifier, f.Name)
	}
	return nil
}

// toRecord converts a typed item to a Record using schema metadata.
func (m *schemaMeta) toRecord(item any) Record {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	rec := Record{FieldText: v.Field(m.textIdx).String()}
	for _, ef := range m.extraFields {
		rec[ef.name] = v.Field(ef.structIdx).Interface()
	}
	return rec
}

// fromHit reconstructs a typed item from a search hit. Only fields the
// search returned are populated.
func (m *schemaMeta) fromHit(h Hit) any {
	v := reflect.New(m.typ).Elem()

	if text, ok := h.Fields[FieldText].(string); ok {
		v.Field(m.textIdx).SetString(text)
	}
	for _, ef := range m.extraFields {
		val, ok := h.Fields[ef.name]
		if !ok {
			continue
		}
		fv := reflect.ValueOf(val)
		if fv.Type().AssignableTo(v.Field(ef.structIdx).Type()) {
			v.Field(ef.structIdx).Set(fv)
		}
	}
	return v.Interface()
}
