package handler

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// typedField names a body field whose JSON value has the wrong type
type typedField struct {
	name string
	kind string
}

func (f typedField) message() string {
	return "The " + strings.ReplaceAll(f.name, "_", " ") + " must be " + f.kind + "."
}

// mistypedField finds the field behind a decode error. Standard type errors
// carry the field name. A failing custom unmarshaler such as decimal's does
// not, so each key is decoded on its own until one fails.
func mistypedField(err error, body []byte, req any) (typedField, bool) {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return typedField{}, false
	}
	target := reflect.TypeOf(req)
	if target == nil || target.Kind() != reflect.Pointer || target.Elem().Kind() != reflect.Struct {
		return typedField{}, false
	}
	target = target.Elem()

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typedField{name: typeErr.Field, kind: describeType(typeErr.Type)}, true
	}

	var fields map[string]json.RawMessage
	if json.Unmarshal(body, &fields) != nil {
		return typedField{}, false
	}
	for _, key := range bodyKeys(body) {
		one, err := json.Marshal(map[string]json.RawMessage{key: fields[key]})
		if err != nil {
			continue
		}
		if json.Unmarshal(one, reflect.New(target).Interface()) != nil {
			return typedField{name: key, kind: describeType(fieldType(target, key))}, true
		}
	}
	return typedField{}, false
}

// fieldType returns the type of the struct field decoded from key, or nil
func fieldType(t reflect.Type, key string) reflect.Type {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" {
			name = f.Name
		}
		if name == key {
			return f.Type
		}
	}
	return nil
}

func describeType(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "a valid value"
	}
	if t == decimalType {
		return "a number"
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "true or false"
	case reflect.Slice, reflect.Array:
		return "a list"
	}
	return "a valid value"
}
