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

// CreateTableSpecification describes one CREATE TABLE statement: the table's
// columns plus WITH options in call order.
type CreateTableSpecification struct {
	TableSpecification
	ifNotExists bool
	options     *OptionMap
}

// CreateTable starts a CREATE TABLE specification for the given table.
func CreateTable(name string) *CreateTableSpecification {
	return &CreateTableSpecification{
		TableSpecification: newTableSpecification(name),
		options:            NewOptionMap(),
	}
}

// In qualifies the table name with a keyspace.
func (s *CreateTableSpecification) In(keyspace string) *CreateTableSpecification {
	s.InKeyspace(keyspace)
	return s
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateTableSpecification) IfNotExists() *CreateTableSpecification {
	s.ifNotExists = true
	return s
}

func (s *CreateTableSpecification) HasIfNotExists() bool {
	return s.ifNotExists
}

// Column adds a plain column.
func (s *CreateTableSpecification) Column(name string, dataType datatype.DataType) *CreateTableSpecification {
	s.addColumn(NewColumn(name, dataType))
	return s
}

// ColumnSpec adds a pre-built column, typically one carrying a frozen flag.
func (s *CreateTableSpecification) ColumnSpec(column *ColumnSpecification) *CreateTableSpecification {
	s.addColumn(column)
	return s
}

// StaticColumn adds a static plain column.
func (s *CreateTableSpecification) StaticColumn(name string, dataType datatype.DataType) *CreateTableSpecification {
	s.addColumn(NewColumn(name, dataType).Static())
	return s
}

// PartitionKeyColumn adds a partition key column.
func (s *CreateTableSpecification) PartitionKeyColumn(name string, dataType datatype.DataType) *CreateTableSpecification {
	s.addColumn(NewColumn(name, dataType).Partitioned())
	return s
}

// ClusteredKeyColumn adds a clustering key column with the default ascending
// order.
func (s *CreateTableSpecification) ClusteredKeyColumn(name string, dataType datatype.DataType) *CreateTableSpecification {
	s.addColumn(NewColumn(name, dataType).Clustered())
	return s
}

// ClusteredKeyColumnOrdered adds a clustering key column with an explicit
// order.
func (s *CreateTableSpecification) ClusteredKeyColumnOrdered(name string, dataType datatype.DataType, ordering types.Ordering) *CreateTableSpecification {
	s.addColumn(NewColumn(name, dataType).ClusteredOrdered(ordering))
	return s
}

// With records a WITH option after validating the value against the option's
// declared kind. The value is stored pre-formatted per the option's escape
// and quote flags; map values are stored raw for the generator's map literal
// path. Invalid values are programmer errors.
func (s *CreateTableSpecification) With(option Option, value interface{}) *CreateTableSpecification {
	if err := option.CheckValue(value); err != nil {
		panic(err)
	}
	if !option.TakesValue() || value == nil {
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

// WithFlag records a value-less WITH option such as COMPACT STORAGE.
func (s *CreateTableSpecification) WithFlag(option Option) *CreateTableSpecification {
	return s.With(option, nil)
}

// WithRaw records a WITH option by bare name, bypassing validation. Intended
// for options this package does not enumerate.
func (s *CreateTableSpecification) WithRaw(name string, value interface{}) *CreateTableSpecification {
	s.options.Set(name, value)
	return s
}

// Options returns the recorded WITH options in call order.
func (s *CreateTableSpecification) Options() *OptionMap {
	return s.options
}
