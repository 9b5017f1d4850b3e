// SPDX-License-Identifier: MIT
// Package: makeiteasy/maker
//
// structs.go - instantiators built from a struct of defaults.
//
// Arguments are matched to exported fields by `maker` tag or, failing that,
// by field name (case-insensitive). A value whose type is directly
// assignable to a reference-kind field (pointer, map, slice, interface,
// func, chan) is assigned as-is, so instances shared through TheSame keep
// their identity. Everything else goes through mapstructure, which converts
// compatible types and rejects arguments matching no field. The result is
// validated against `validate` tags before the build function runs.

package maker

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag consulted when matching arguments to fields.
const TagName = "maker"

// Construct returns an Instantiator that copies defaults, overlays the
// arguments onto the copy, validates it and hands it to build.
// Decoding and validation failures report ErrInvalidArgs; build errors pass
// through unchanged.
func Construct[O any, R any](defaults O, build func(O) (R, error)) Instantiator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return func(args Args) (any, error) {
		if build == nil {
			return nil, ErrNilInstantiator
		}
		opts := defaults
		if err := overlay(&opts, args); err != nil {
			return nil, err
		}
		if isStruct(opts) {
			if err := validate.Struct(opts); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
			}
		}

		return build(opts)
	}
}

// Fields returns an Instantiator producing a *T populated from defaults and
// the arguments.
func Fields[T any](defaults T) Instantiator {
	return Construct(defaults, func(v T) (*T, error) {
		return &v, nil
	})
}

// overlay writes args onto the struct target points to.
func overlay(target any, args Args) error {
	if len(args) == 0 {
		return nil
	}
	rest := make(map[string]any, len(args))
	for k, v := range args {
		rest[k] = v
	}
	assignReferences(reflect.ValueOf(target).Elem(), rest)
	if len(rest) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		ErrorUnused:      true,
		ZeroFields:       true,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	if err = dec.Decode(rest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	return nil
}

// assignReferences sets reference-kind fields from directly assignable
// arguments and removes those arguments from rest.
func assignReferences(rv reflect.Value, rest map[string]any) {
	if rv.Kind() != reflect.Struct {
		return
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() || f.Anonymous || !isReference(f.Type.Kind()) {
			continue
		}
		key, ok := fieldKey(f)
		if !ok {
			continue
		}
		name, v, found := lookupFold(rest, key)
		if !found || v == nil {
			continue
		}
		if reflect.TypeOf(v).AssignableTo(f.Type) {
			rv.Field(i).Set(reflect.ValueOf(v))
			delete(rest, name)
		}
	}
}

// fieldKey returns the argument name a field answers to; false for fields
// tagged "-".
func fieldKey(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get(TagName)
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}

	return f.Name, true
}

// lookupFold finds key in m, exact match first.
func lookupFold(m map[string]any, key string) (string, any, bool) {
	if v, ok := m[key]; ok {
		return key, v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return k, v, true
		}
	}

	return "", nil, false
}

func isReference(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func isStruct(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	return rv.Kind() == reflect.Struct
}
