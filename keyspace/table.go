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
	"github.com/ollionorg/cassandra-schema-mapper/global/types"
)

// TableSpecification accumulates the columns of a table, classifying each
// into partition key, clustering key, static or plain at insertion time.
// The four classification lists each preserve insertion order, so insertion
// order determines the rendered column order, including the PRIMARY KEY
// column order.
type TableSpecification struct {
	keyspace types.Identifier
	name     types.Identifier

	columns             []*ColumnSpecification
	partitionKeyColumns []*ColumnSpecification
	clusteredKeyColumns []*ColumnSpecification
	nonKeyColumns       []*ColumnSpecification
	staticColumns       []*ColumnSpecification
}

func newTableSpecification(name string) TableSpecification {
	return TableSpecification{name: types.MustIdentifier(name)}
}

// InKeyspace qualifies the table name with a keyspace.
func (s *TableSpecification) InKeyspace(keyspace string) {
	s.keyspace = types.MustIdentifier(keyspace)
}

func (s *TableSpecification) Keyspace() types.Identifier { return s.keyspace }
func (s *TableSpecification) Name() types.Identifier     { return s.name }

func (s *TableSpecification) addColumn(column *ColumnSpecification) {
	if column.IsStatic() && column.KeyType() != "" {
		panic("a static column cannot be a primary key column")
	}
	s.columns = append(s.columns, column)
	switch column.KeyType() {
	case types.PartitionedKey:
		s.partitionKeyColumns = append(s.partitionKeyColumns, column)
	case types.ClusteredKey:
		s.clusteredKeyColumns = append(s.clusteredKeyColumns, column)
	default:
		s.nonKeyColumns = append(s.nonKeyColumns, column)
		if column.IsStatic() {
			s.staticColumns = append(s.staticColumns, column)
		}
	}
}

// Columns returns every column in insertion order.
func (s *TableSpecification) Columns() []*ColumnSpecification {
	return s.columns
}

// PartitionKeyColumns returns the partition key columns in insertion order.
func (s *TableSpecification) PartitionKeyColumns() []*ColumnSpecification {
	return s.partitionKeyColumns
}

// ClusteredKeyColumns returns the clustering key columns in insertion order.
func (s *TableSpecification) ClusteredKeyColumns() []*ColumnSpecification {
	return s.clusteredKeyColumns
}

// PrimaryKeyColumns returns partition key columns followed by clustering key
// columns. The concatenation order is the CQL primary key column order.
func (s *TableSpecification) PrimaryKeyColumns() []*ColumnSpecification {
	pk := make([]*ColumnSpecification, 0, len(s.partitionKeyColumns)+len(s.clusteredKeyColumns))
	pk = append(pk, s.partitionKeyColumns...)
	pk = append(pk, s.clusteredKeyColumns...)
	return pk
}

// NonKeyColumns returns the plain columns, static included, in insertion
// order.
func (s *TableSpecification) NonKeyColumns() []*ColumnSpecification {
	return s.nonKeyColumns
}

// StaticColumns returns the static columns in insertion order.
func (s *TableSpecification) StaticColumns() []*ColumnSpecification {
	return s.staticColumns
}
