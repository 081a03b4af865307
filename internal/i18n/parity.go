package i18n

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrParity marks a localized value whose language branches differ in shape.
var ErrParity = errors.New("localized content mismatch")

var langType = reflect.TypeOf(Lang(""))

// CheckParity walks v and verifies that every Localized value it contains
// has a branch for each supported language and that all branches share the
// same structure: equal slice lengths, equal map keys, and strings that are
// either empty in every branch or in none. All mismatches are reported.
func CheckParity(v any) error {
	var errs []error
	walk(reflect.ValueOf(v), "$", &errs)
	return errors.Join(errs...)
}

func walk(v reflect.Value, path string, errs *[]error) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			walk(v.Elem(), path, errs)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			walk(v.Field(i), path+"."+fieldName(f), errs)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i), errs)
		}
	case reflect.Map:
		if v.Type().Key() == langType {
			checkLocalized(v, path, errs)
			return
		}
		for _, k := range sortedKeys(v) {
			walk(v.MapIndex(k), fmt.Sprintf("%s[%v]", path, k), errs)
		}
	}
}

func checkLocalized(v reflect.Value, path string, errs *[]error) {
	ref := v.MapIndex(reflect.ValueOf(Default))
	if !ref.IsValid() {
		*errs = append(*errs, fmt.Errorf("%w: %s: missing %q", ErrParity, path, Default))
		return
	}
	for _, lang := range Supported {
		if lang == Default {
			continue
		}
		branch := v.MapIndex(reflect.ValueOf(lang))
		if !branch.IsValid() {
			*errs = append(*errs, fmt.Errorf("%w: %s: missing %q", ErrParity, path, lang))
			continue
		}
		sameShape(ref, branch, path, lang, errs)
	}
	// Localized values may nest further localized values.
	walk(ref, path+"."+string(Default), errs)
}

func sameShape(a, b reflect.Value, path string, lang Lang, errs *[]error) {
	mismatch := func(format string, args ...any) {
		*errs = append(*errs, fmt.Errorf("%w: %s (%s): %s", ErrParity, path, lang, fmt.Sprintf(format, args...)))
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() != b.IsNil() {
			mismatch("nil in one branch only")
			return
		}
		if !a.IsNil() {
			sameShape(a.Elem(), b.Elem(), path, lang, errs)
		}
	case reflect.String:
		if (a.Len() == 0) != (b.Len() == 0) {
			mismatch("empty in one branch only")
		}
	case reflect.Struct:
		t := a.Type()
		for i := 0; i < a.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			sameShape(a.Field(i), b.Field(i), path+"."+fieldName(t.Field(i)), lang, errs)
		}
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			mismatch("length %d, want %d", b.Len(), a.Len())
			return
		}
		for i := 0; i < a.Len(); i++ {
			sameShape(a.Index(i), b.Index(i), fmt.Sprintf("%s[%d]", path, i), lang, errs)
		}
	case reflect.Map:
		if a.Len() != b.Len() {
			mismatch("%d keys, want %d", b.Len(), a.Len())
		}
		for _, k := range sortedKeys(a) {
			other := b.MapIndex(k)
			if !other.IsValid() {
				mismatch("missing key %v", k)
				continue
			}
			sameShape(a.MapIndex(k), other, fmt.Sprintf("%s[%v]", path, k), lang, errs)
		}
	}
}

func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("yaml"); tag != "" {
		for i := 0; i < len(tag); i++ {
			if tag[i] == ',' {
				tag = tag[:i]
				break
			}
		}
		if tag != "" && tag != "-" {
			return tag
		}
	}
	return f.Name
}

func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}
