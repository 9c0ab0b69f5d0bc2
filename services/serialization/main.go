package serialization

import (
	"fmt"
	"reflect"
	"strings"
)

// REFERENCE_PREFIX marks a string as a reference to another model.
const REFERENCE_PREFIX = "IPY_MODEL_"

// Reference is implemented by every value that is synchronized as its own
// model. References are never inlined, which keeps shared sub-trees from
// being duplicated and breaks cycles.
type Reference interface {
	GetModelId() string
}

type Policy int

const (
	// DropNull omits null values only
	DropNull Policy = iota
	// DropNullAndEmpty omits null values and empty strings
	DropNullAndEmpty
)

// ParsePolicy maps a configured policy name ("strict" or "null") to its
// Policy.
func ParsePolicy(name string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "strict":
		return DropNullAndEmpty, true
	case "null":
		return DropNull, true
	}
	return DropNullAndEmpty, false
}

type Serializer struct {
	policy Policy
}

// NewSerializer returns a serializer applying the strict policy.
func NewSerializer() *Serializer {
	return &Serializer{policy: DropNullAndEmpty}
}

func NewSerializerWithPolicy(policy Policy) *Serializer {
	return &Serializer{policy: policy}
}

func Token(r Reference) string {
	return REFERENCE_PREFIX + r.GetModelId()
}

// ParseToken returns the model id carried by a reference token.
func ParseToken(token string) (string, bool) {
	if !strings.HasPrefix(token, REFERENCE_PREFIX) || len(token) == len(REFERENCE_PREFIX) {
		return "", false
	}
	return strings.TrimPrefix(token, REFERENCE_PREFIX), true
}

// ToJSON converts v into a JSON compatible value made of bool, numbers,
// strings, []interface{} and map[string]interface{}.
//
// Mapping entries and sequence elements whose converted value is null (or
// an empty string, under the strict policy) are omitted; sequence order is
// preserved. References become tokens. Plain structs become mappings of
// their json-named fields. Anything else passes through. A value met
// again below itself (a cycle) converts to null.
//
// ToJSON never fails.
func (s *Serializer) ToJSON(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if r, ok := v.(Reference); ok {
		if isNilPointer(v) {
			return nil
		}
		return Token(r)
	}

	return s.toJSONValue(reflect.ValueOf(v), path{})
}

// State returns the wire-visible fields of a model: nested models appear as
// tokens, everything else is converted by ToJSON.
func (s *Serializer) State(r Reference) map[string]interface{} {
	if r == nil || isNilPointer(r) {
		return map[string]interface{}{}
	}
	val := reflect.Indirect(reflect.ValueOf(r))
	if val.Kind() != reflect.Struct {
		return map[string]interface{}{}
	}
	return s.structToMap(val, path{})
}

// path holds the pointers, maps and slices on the way from the root to
// the value being converted. Meeting one of them again is a cycle, which
// is converted to null.
type path map[visit]bool

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// enter marks val as being converted; the returned func unmarks it.
func (p path) enter(val reflect.Value) (func(), bool) {
	v := visit{ptr: val.Pointer(), typ: val.Type()}
	if p[v] {
		return nil, false
	}
	p[v] = true
	return func() { delete(p, v) }, true
}

func (s *Serializer) toJSONValue(val reflect.Value, seen path) interface{} {
	if !val.IsValid() {
		return nil
	}

	if val.CanInterface() {
		if r, ok := val.Interface().(Reference); ok {
			if isNilPointer(r) {
				return nil
			}
			return Token(r)
		}
	}

	switch val.Kind() {
	case reflect.Interface:
		if val.IsNil() {
			return nil
		}
		return s.toJSONValue(val.Elem(), seen)

	case reflect.Ptr:
		if val.IsNil() {
			return nil
		}
		leave, ok := seen.enter(val)
		if !ok {
			return nil
		}
		defer leave()
		return s.toJSONValue(val.Elem(), seen)

	case reflect.Map:
		if val.IsNil() {
			return map[string]interface{}{}
		}
		leave, ok := seen.enter(val)
		if !ok {
			return nil
		}
		defer leave()

		out := make(map[string]interface{}, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			converted := s.toJSONValue(iter.Value(), seen)
			if s.elided(converted) {
				continue
			}
			out[mapKey(iter.Key())] = converted
		}
		return out

	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.Len() > 0 {
			leave, ok := seen.enter(val)
			if !ok {
				return nil
			}
			defer leave()
		}

		out := make([]interface{}, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			converted := s.toJSONValue(val.Index(i), seen)
			if s.elided(converted) {
				continue
			}
			out = append(out, converted)
		}
		return out

	case reflect.Struct:
		return s.structToMap(val, seen)

	case reflect.String:
		return val.String()

	case reflect.Bool:
		return val.Bool()

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// not representable, treat as absent
		return nil
	}

	if val.CanInterface() {
		return val.Interface()
	}
	return fmt.Sprint(val)
}

// structToMap flattens embedded structs and keeps only fields carrying a
// json name; `json:"-"` and unexported fields are not wire-visible.
func (s *Serializer) structToMap(val reflect.Value, seen path) map[string]interface{} {
	out := map[string]interface{}{}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		if field.Anonymous && fieldVal.Kind() == reflect.Struct {
			for k, v := range s.structToMap(fieldVal, seen) {
				if _, shadowed := out[k]; !shadowed {
					out[k] = v
				}
			}
			continue
		}
		if field.PkgPath != "" {
			continue
		}

		name := jsonName(field)
		if name == "" {
			continue
		}

		converted := s.toJSONValue(fieldVal, seen)
		if s.elided(converted) {
			continue
		}
		out[name] = converted
	}

	return out
}

func (s *Serializer) elided(v interface{}) bool {
	if v == nil {
		return true
	}
	if s.policy == DropNullAndEmpty {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.String && rv.Len() == 0 {
			return true
		}
	}
	return false
}

// -- helpers
func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" || tag == "" {
		return ""
	}
	return strings.SplitN(tag, ",", 2)[0]
}

func mapKey(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return fmt.Sprint(key.Interface())
}

func isNilPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
