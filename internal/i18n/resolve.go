package i18n

import (
	"reflect"
	"strings"

	"elhamas/internal/domain"
)

// Resolve returns entity[base_<loc>], falling back to entity[base_en] and then
// to "". entity may be a struct (matched by json tag, then field name), a
// pointer to one, or a string-keyed map. It never panics on missing fields.
func Resolve(entity any, base string, loc domain.Locale) string {
	if s := lookup(entity, base+"_"+string(loc)); s != "" {
		return s
	}
	if loc == domain.LocaleEN {
		return ""
	}
	return lookup(entity, base+"_"+string(domain.LocaleEN))
}

// Pick is the typed form of Resolve for call sites that already hold both values.
func Pick(en, ar string, loc domain.Locale) string {
	if loc == domain.LocaleAR && ar != "" {
		return ar
	}
	return en
}

func lookup(entity any, key string) string {
	v := reflect.ValueOf(entity)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return ""
		}
		return text(v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())))
	case reflect.Struct:
		return text(structField(v, key))
	}
	return ""
}

func structField(v reflect.Value, key string) reflect.Value {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if fv := structField(v.Field(i), key); fv.IsValid() {
				return fv
			}
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == key || strings.EqualFold(f.Name, strings.ReplaceAll(key, "_", "")) {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func text(v reflect.Value) string {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String()
	}
	return ""
}
