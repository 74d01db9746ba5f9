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

package types

import (
	"fmt"
	"regexp"
	"strings"
)

// PrimaryKeyType classifies a column's role in the primary key.
type PrimaryKeyType string

const (
	// PartitionedKey marks a partition key column.
	PartitionedKey PrimaryKeyType = "PARTITIONED"
	// ClusteredKey marks a clustering key column.
	ClusteredKey PrimaryKeyType = "CLUSTERED"
)

// Ordering is the clustering order of a clustered key column.
type Ordering string

const (
	Ascending  Ordering = "ASC"
	Descending Ordering = "DESC"
)

// ColumnFunction selects which part of a collection column an index covers.
type ColumnFunction string

const (
	FunctionNone    ColumnFunction = ""
	FunctionKeys    ColumnFunction = "KEYS"
	FunctionValues  ColumnFunction = "VALUES"
	FunctionEntries ColumnFunction = "ENTRIES"
	FunctionFull    ColumnFunction = "FULL"
)

// unquotedIdentifier matches names Cassandra accepts without double quotes.
var unquotedIdentifier = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Identifier is a CQL identifier (keyspace, table, type, column or index
// name). Names that are not legal unquoted, or that were force-quoted by the
// caller, render wrapped in double quotes with embedded quotes doubled.
type Identifier struct {
	value  string
	quoted bool
}

// NewIdentifier builds an identifier, quoting it automatically when the name
// is not a legal unquoted CQL identifier.
func NewIdentifier(name string) (Identifier, error) {
	if strings.TrimSpace(name) == "" {
		return Identifier{}, fmt.Errorf("identifier must not be empty")
	}
	return Identifier{value: name, quoted: !unquotedIdentifier.MatchString(name)}, nil
}

// MustIdentifier is NewIdentifier for statically known names.
func MustIdentifier(name string) Identifier {
	id, err := NewIdentifier(name)
	if err != nil {
		panic(err)
	}
	return id
}

// QuotedIdentifier builds an identifier that always renders quoted.
func QuotedIdentifier(name string) (Identifier, error) {
	if strings.TrimSpace(name) == "" {
		return Identifier{}, fmt.Errorf("identifier must not be empty")
	}
	return Identifier{value: name, quoted: true}, nil
}

// IsZero reports whether the identifier was never set.
func (i Identifier) IsZero() bool {
	return i.value == ""
}

// Unquoted returns the raw identifier value.
func (i Identifier) Unquoted() string {
	return i.value
}

// IsQuoted reports whether the identifier renders quoted.
func (i Identifier) IsQuoted() bool {
	return i.quoted
}

// CQL renders the identifier for inclusion in a statement.
func (i Identifier) CQL() string {
	if i.quoted {
		return `"` + strings.ReplaceAll(i.value, `"`, `""`) + `"`
	}
	return i.value
}

func (i Identifier) String() string {
	return i.CQL()
}
