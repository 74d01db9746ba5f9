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

// Package cqlgen renders DDL specifications to CQL text. Identifiers render
// quoted per their own quote flag, data types through the shared type
// renderer, and option values exactly as the specification recorded them.
package cqlgen

import (
	"fmt"
	"strings"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/ollionorg/cassandra-schema-mapper/global/methods"
	"github.com/ollionorg/cassandra-schema-mapper/global/types"
	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
)

// qualifiedName renders "name" or "keyspace.name".
func qualifiedName(ks, name types.Identifier) string {
	if ks.IsZero() {
		return name.CQL()
	}
	return ks.CQL() + "." + name.CQL()
}

// DataTypeCQL renders a data type, wrapping it in frozen<> when asked.
func DataTypeCQL(dt datatype.DataType, frozen bool) (string, error) {
	s, err := methods.ConvertCQLDataTypeToString(dt)
	if err != nil {
		return "", err
	}
	if frozen {
		return "frozen<" + s + ">", nil
	}
	return s, nil
}

// mapLiteral renders an option map value as a CQL map literal. Keys are
// always quoted; string values are quoted, numeric and boolean values render
// bare.
func mapLiteral(m *keyspace.OptionMap) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "'%s': %s", strings.ReplaceAll(e.Name, "'", "''"), mapValue(e.Value))
	}
	sb.WriteString("}")
	return sb.String()
}

func mapValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(value, "'", "''") + "'"
	case nil:
		return "''"
	default:
		return fmt.Sprintf("%v", value)
	}
}

// optionClause renders one WITH clause entry. A nil value means a flag-only
// option (COMPACT STORAGE) that renders as its bare name.
func optionClause(e keyspace.OptionEntry) string {
	if e.Value == nil {
		return e.Name
	}
	if m, ok := e.Value.(*keyspace.OptionMap); ok {
		return fmt.Sprintf("%s = %s", e.Name, mapLiteral(m))
	}
	return fmt.Sprintf("%s = %v", e.Name, e.Value)
}
