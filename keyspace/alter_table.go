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
	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/ollionorg/cassandra-schema-mapper/global/types"
)

// AlterTableSpecification describes one ALTER TABLE statement as an ordered
// list of column changes.
type AlterTableSpecification struct {
	keyspace types.Identifier
	name     types.Identifier
	changes  []ColumnChangeSpecification
	options  *OptionMap
}

// AlterTable starts an ALTER TABLE specification for the given table.
func AlterTable(name string) *AlterTableSpecification {
	return &AlterTableSpecification{name: types.MustIdentifier(name), options: NewOptionMap()}
}

// In qualifies the table name with a keyspace.
func (s *AlterTableSpecification) In(keyspace string) *AlterTableSpecification {
	s.keyspace = types.MustIdentifier(keyspace)
	return s
}

// Add appends an ADD column change.
func (s *AlterTableSpecification) Add(name string, dataType datatype.DataType) *AlterTableSpecification {
	s.changes = append(s.changes, NewAddColumn(name, dataType))
	return s
}

// Alter appends an ALTER column type change.
func (s *AlterTableSpecification) Alter(name string, dataType datatype.DataType) *AlterTableSpecification {
	s.changes = append(s.changes, NewAlterColumn(name, dataType))
	return s
}

// Drop appends a DROP column change.
func (s *AlterTableSpecification) Drop(name string) *AlterTableSpecification {
	s.changes = append(s.changes, NewDropColumn(name))
	return s
}

// Rename appends a RENAME column change.
func (s *AlterTableSpecification) Rename(from, to string) *AlterTableSpecification {
	s.changes = append(s.changes, NewRenameColumn(from, to))
	return s
}

// With records a WITH option, validated against the option's declared kind.
func (s *AlterTableSpecification) With(option Option, value interface{}) *AlterTableSpecification {
	if err := option.CheckValue(value); err != nil {
		panic(err)
	}
	if value == nil {
		s.options.Set(option.Name(), nil)
		return s
	}
	if om, ok := asOptionMap(value); ok {
		s.options.Set(option.Name(), om)
		return s
	}
	s.options.Set(option.Name(), option.FormatValue(value))
	return s
}

func (s *AlterTableSpecification) Keyspace() types.Identifier { return s.keyspace }
func (s *AlterTableSpecification) Name() types.Identifier     { return s.name }

// Changes returns the column changes in call order.
func (s *AlterTableSpecification) Changes() []ColumnChangeSpecification {
	return s.changes
}

// Options returns the recorded WITH options in call order.
func (s *AlterTableSpecification) Options() *OptionMap {
	return s.options
}
