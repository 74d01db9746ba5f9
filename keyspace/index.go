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

package keyspace

import (
	"strings"

	"github.com/ollionorg/cassandra-schema-mapper/global/types"
)

// CreateIndexSpecification describes one CREATE INDEX statement, including
// custom (USING class) and SASI-style WITH OPTIONS variants.
type CreateIndexSpecification struct {
	name           types.Identifier
	keyspace       types.Identifier
	tableName      types.Identifier
	columnName     types.Identifier
	columnFunction types.ColumnFunction
	using          string
	custom         bool
	ifNotExists    bool
	options        *OptionMap
}

// CreateIndex starts a CREATE INDEX specification. The index name is
// optional; Cassandra generates one when omitted.
func CreateIndex(name string) *CreateIndexSpecification {
	s := &CreateIndexSpecification{options: NewOptionMap()}
	if name != "" {
		s.name = types.MustIdentifier(name)
	}
	return s
}

// In qualifies the target table with a keyspace.
func (s *CreateIndexSpecification) In(keyspace string) *CreateIndexSpecification {
	s.keyspace = types.MustIdentifier(keyspace)
	return s
}

// On sets the target table.
func (s *CreateIndexSpecification) On(tableName string) *CreateIndexSpecification {
	s.tableName = types.MustIdentifier(tableName)
	return s
}

// Column sets the indexed column.
func (s *CreateIndexSpecification) Column(columnName string) *CreateIndexSpecification {
	s.columnName = types.MustIdentifier(columnName)
	return s
}

// Using sets the custom index class. A non-blank class name marks the index
// custom; a blank one clears the custom flag again, even if it was set
// directly before. That coupling is long-standing observable behavior and is
// kept as is.
func (s *CreateIndexSpecification) Using(className string) *CreateIndexSpecification {
	s.using = className
	s.custom = strings.TrimSpace(className) != ""
	return s
}

// Custom marks the index custom directly.
func (s *CreateIndexSpecification) Custom() *CreateIndexSpecification {
	s.custom = true
	return s
}

// WithFunction selects which part of a collection column the index covers
// (KEYS, VALUES, ENTRIES or FULL).
func (s *CreateIndexSpecification) WithFunction(fn types.ColumnFunction) *CreateIndexSpecification {
	s.columnFunction = fn
	return s
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateIndexSpecification) IfNotExists() *CreateIndexSpecification {
	s.ifNotExists = true
	return s
}

// WithOption records a WITH OPTIONS entry by name (e.g. SASI mode/analyzer
// options).
func (s *CreateIndexSpecification) WithOption(name string, value interface{}) *CreateIndexSpecification {
	s.options.Set(name, value)
	return s
}

func (s *CreateIndexSpecification) Name() types.Identifier             { return s.name }
func (s *CreateIndexSpecification) Keyspace() types.Identifier         { return s.keyspace }
func (s *CreateIndexSpecification) TableName() types.Identifier        { return s.tableName }
func (s *CreateIndexSpecification) ColumnName() types.Identifier       { return s.columnName }
func (s *CreateIndexSpecification) ColumnFunction() types.ColumnFunction { return s.columnFunction }
func (s *CreateIndexSpecification) UsingClass() string                 { return s.using }
func (s *CreateIndexSpecification) IsCustom() bool                     { return s.custom }
func (s *CreateIndexSpecification) HasIfNotExists() bool               { return s.ifNotExists }
func (s *CreateIndexSpecification) Options() *OptionMap                { return s.options }

// DropIndexSpecification describes one DROP INDEX statement.
type DropIndexSpecification struct {
	keyspace types.Identifier
	name     types.Identifier
	ifExists bool
}

// DropIndex starts a DROP INDEX specification.
func DropIndex(name string) *DropIndexSpecification {
	return &DropIndexSpecification{name: types.MustIdentifier(name)}
}

// In qualifies the index name with a keyspace.
func (s *DropIndexSpecification) In(keyspace string) *DropIndexSpecification {
	s.keyspace = types.MustIdentifier(keyspace)
	return s
}

// IfExists adds the IF EXISTS guard.
func (s *DropIndexSpecification) IfExists() *DropIndexSpecification {
	s.ifExists = true
	return s
}

func (s *DropIndexSpecification) Keyspace() types.Identifier { return s.keyspace }
func (s *DropIndexSpecification) Name() types.Identifier     { return s.name }
func (s *DropIndexSpecification) HasIfExists() bool          { return s.ifExists }
