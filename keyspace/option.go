/*
 * Copyright (C) 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */

// Package keyspace holds value objects describing the parameters of single
// CQL DDL statements (CREATE/ALTER/DROP for keyspaces, tables, indexes and
// user defined types) prior to text rendering. Builders accumulate intent;
// rendering lives in the cqlgen package.
package keyspace

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// OptionKind tags the value type an option accepts. Coercion checks are
// dispatched through an explicit registry keyed by kind, so failure modes are
// enumerable instead of being probed through reflection.
type OptionKind string

const (
	// OptionKindVoid marks flag-only options that take no value.
	OptionKindVoid OptionKind = "void"
	// OptionKindString marks free-text options. Any value stringifies, so
	// string options are always coercible.
	OptionKindString  OptionKind = "string"
	OptionKindLong    OptionKind = "long"
	OptionKindDouble  OptionKind = "double"
	OptionKindBoolean OptionKind = "boolean"
	OptionKindMap     OptionKind = "map"
)

// coercions maps each kind to its value check. Void and String report true
// unconditionally; those options are flag-only or free-text and were never
// validated historically, and callers depend on that.
var coercions = map[OptionKind]func(value interface{}) bool{
	OptionKindVoid:    func(interface{}) bool { return true },
	OptionKindString:  func(interface{}) bool { return true },
	OptionKindLong:    coerceLong,
	OptionKindDouble:  coerceDouble,
	OptionKindBoolean: coerceBoolean,
	OptionKindMap:     coerceMap,
}

func coerceLong(value interface{}) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	default:
		return false
	}
}

func coerceDouble(value interface{}) bool {
	switch v := value.(type) {
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}

func coerceBoolean(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return true
	case string:
		_, err := strconv.ParseBool(strings.ToLower(v))
		return err == nil
	default:
		return false
	}
}

func coerceMap(value interface{}) bool {
	if _, ok := value.(*OptionMap); ok {
		return true
	}
	return reflect.ValueOf(value).Kind() == reflect.Map
}

// Option describes a named, typed configuration value usable in a WITH
// clause, together with its escaping and quoting rules.
type Option interface {
	Name() string
	Kind() OptionKind
	TakesValue() bool
	RequiresValue() bool
	EscapesValue() bool
	QuotesValue() bool

	// CheckValue fails when the option takes no value but one is given,
	// requires a value but got none, or the value is not coercible.
	CheckValue(value interface{}) error
	// FormatValue renders the value per the escape/quote flags. Map values
	// bypass both transforms; they render through the generator's map
	// literal path.
	FormatValue(value interface{}) string
}

// DefaultOption is the one concrete Option implementation; the enumerated
// table and keyspace options embed it.
type DefaultOption struct {
	name          string
	kind          OptionKind
	requiresValue bool
	escapesValue  bool
	quotesValue   bool
}

// NewOption builds an option descriptor. Name and kind are mandatory.
func NewOption(name string, kind OptionKind, requiresValue, escapesValue, quotesValue bool) DefaultOption {
	if strings.TrimSpace(name) == "" {
		panic("option name must not be empty")
	}
	if _, ok := coercions[kind]; !ok {
		panic(fmt.Sprintf("unknown option kind %q", kind))
	}
	return DefaultOption{
		name:          name,
		kind:          kind,
		requiresValue: requiresValue,
		escapesValue:  escapesValue,
		quotesValue:   quotesValue,
	}
}

func (o DefaultOption) Name() string     { return o.name }
func (o DefaultOption) Kind() OptionKind { return o.kind }

// TakesValue reports whether the option accepts a value at all. Flag-only
// options (compact storage) do not.
func (o DefaultOption) TakesValue() bool { return o.kind != OptionKindVoid }

func (o DefaultOption) RequiresValue() bool { return o.requiresValue }
func (o DefaultOption) EscapesValue() bool  { return o.escapesValue }
func (o DefaultOption) QuotesValue() bool   { return o.quotesValue }

// IsCoerceable reports whether value can serve as this option's value.
func (o DefaultOption) IsCoerceable(value interface{}) bool {
	if value == nil {
		return true
	}
	return coercions[o.kind](value)
}

func (o DefaultOption) CheckValue(value interface{}) error {
	if value == nil {
		if o.requiresValue {
			return fmt.Errorf("option %q requires a value", o.name)
		}
		return nil
	}
	if !o.TakesValue() {
		return fmt.Errorf("option %q takes no value", o.name)
	}
	if !o.IsCoerceable(value) {
		return fmt.Errorf("option %q: value %v is not coercible to %s", o.name, value, o.kind)
	}
	return nil
}

func (o DefaultOption) FormatValue(value interface{}) string {
	if value == nil {
		return ""
	}
	// Map values render through the generator's {key: value} literal path,
	// untouched by escaping and quoting.
	if coerceMap(value) {
		return fmt.Sprintf("%v", value)
	}
	s := fmt.Sprintf("%v", value)
	if o.escapesValue {
		s = strings.ReplaceAll(s, "'", "''")
	}
	if o.quotesValue {
		s = "'" + s + "'"
	}
	return s
}

func (o DefaultOption) String() string {
	return o.name
}

// asOptionMap normalizes a map-kind value for storage in an option registry.
// An *OptionMap passes through unchanged; a plain Go map is copied into an
// OptionMap with its keys stringified and sorted, so rendering stays
// deterministic. Anything else reports false.
func asOptionMap(value interface{}) (*OptionMap, bool) {
	if om, ok := value.(*OptionMap); ok {
		return om, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}
	keys := make([]string, 0, rv.Len())
	entries := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := fmt.Sprintf("%v", iter.Key().Interface())
		keys = append(keys, k)
		entries[k] = iter.Value().Interface()
	}
	sort.Strings(keys)
	om := NewOptionMap()
	for _, k := range keys {
		om.Set(k, entries[k])
	}
	return om, true
}
