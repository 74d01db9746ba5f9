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

// Package mapping derives Cassandra schema from tagged Go structs. Entities
// are registered explicitly with a Context; the context classifies their
// fields, resolves Cassandra data types and assembles CREATE TABLE / CREATE
// TYPE specifications for the keyspace package.
package mapping

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/ollionorg/cassandra-schema-mapper/global/types"
)

// EntityKind classifies a discovered entity.
type EntityKind string

const (
	// KindTable marks an entity registered as a table.
	KindTable EntityKind = "table"
	// KindUserDefinedType marks an entity registered as a user defined type.
	KindUserDefinedType EntityKind = "udt"
	// KindPrimaryKeyClass marks a struct used as a composite primary key.
	KindPrimaryKeyClass EntityKind = "primary-key-class"
	// KindUnclassified marks a discovered struct that is none of the above.
	// Unclassified entities belong to none of the context's named sets.
	KindUnclassified EntityKind = "unclassified"
)

// PropertyDescriptor describes one persistent field of an entity: its column
// name, key role and everything needed to resolve its data type.
type PropertyDescriptor struct {
	FieldName  string
	FieldIndex int
	ColumnName types.Identifier
	GoType     reflect.Type

	KeyType  types.PrimaryKeyType // empty for non-key columns
	Ordering types.Ordering       // only meaningful when clustered
	Static   bool
	Frozen   bool
	AsSet    bool // render a slice as set<> instead of list<>

	// TypeLiteral is an explicit CQL type expression from the cqltype tag;
	// it takes precedence over structural inference.
	TypeLiteral string

	// CompositeKey marks a field whose struct type is a composite primary
	// key class, flattened into the owning table's key columns.
	CompositeKey bool
}

// EntityDescriptor describes one registered entity: its Go type, its
// classification and its persistent properties in declaration order.
type EntityDescriptor struct {
	GoType     reflect.Type
	Kind       EntityKind
	TableName  types.Identifier // set for tables
	UDTName    types.Identifier // set for user defined types
	Properties []*PropertyDescriptor
}

// Name returns the table name, type name or Go type name, in that
// preference order.
func (e *EntityDescriptor) Name() string {
	switch {
	case !e.TableName.IsZero():
		return e.TableName.Unquoted()
	case !e.UDTName.IsZero():
		return e.UDTName.Unquoted()
	default:
		return e.GoType.String()
	}
}

// Property returns the property with the given column name.
func (e *EntityDescriptor) Property(columnName string) *PropertyDescriptor {
	for _, p := range e.Properties {
		if p.ColumnName.Unquoted() == columnName {
			return p
		}
	}
	return nil
}

const (
	tagName     = "cql"
	typeTagName = "cqltype"
)

// describeStruct builds the property descriptors for a struct type by
// reading its cql and cqltype tags. Unexported and cql:"-" fields are
// skipped.
func describeStruct(t reflect.Type) ([]*PropertyDescriptor, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("entity type %s is not a struct", t)
	}

	var props []*PropertyDescriptor
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := field.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		prop, err := describeField(field, i, tag)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t, field.Name, err)
		}
		props = append(props, prop)
	}
	return props, nil
}

func describeField(field reflect.StructField, index int, tag string) (*PropertyDescriptor, error) {
	name := ""
	opts := ""
	if idx := strings.Index(tag, ","); idx >= 0 {
		name, opts = tag[:idx], tag[idx+1:]
	} else {
		name = tag
	}
	if name == "" {
		name = toSnakeCase(field.Name)
	}

	prop := &PropertyDescriptor{
		FieldName:   field.Name,
		FieldIndex:  index,
		ColumnName:  types.MustIdentifier(name),
		GoType:      field.Type,
		TypeLiteral: strings.TrimSpace(field.Tag.Get(typeTagName)),
	}

	for _, opt := range strings.Split(opts, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, arg := opt, ""
		if idx := strings.Index(opt, ":"); idx >= 0 {
			key, arg = opt[:idx], opt[idx+1:]
		}
		switch strings.ToLower(key) {
		case "partitionkey":
			prop.KeyType = types.PartitionedKey
			prop.Ordering = ""
		case "clusteringkey":
			prop.KeyType = types.ClusteredKey
			switch strings.ToLower(arg) {
			case "", "asc":
				prop.Ordering = types.Ascending
			case "desc":
				prop.Ordering = types.Descending
			default:
				return nil, fmt.Errorf("unknown clustering order %q", arg)
			}
		case "primarykey":
			prop.CompositeKey = true
		case "static":
			prop.Static = true
		case "frozen":
			prop.Frozen = true
		case "set":
			prop.AsSet = true
		default:
			return nil, fmt.Errorf("unknown cql tag option %q", key)
		}
	}

	if prop.Static && prop.KeyType != "" {
		return nil, fmt.Errorf("a static column cannot be a primary key column")
	}
	if prop.CompositeKey && prop.KeyType != "" {
		return nil, fmt.Errorf("a composite primary key field cannot carry its own key role")
	}
	return prop, nil
}

// toSnakeCase derives the default column name from a Go field name
// (UserID -> user_id).
func toSnakeCase(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
				sb.WriteRune('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
