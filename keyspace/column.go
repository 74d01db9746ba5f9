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

// ColumnSpecification describes one column of a table specification: its
// name, data type and, for key columns, its key role and clustering order.
type ColumnSpecification struct {
	name     types.Identifier
	dataType datatype.DataType
	keyType  types.PrimaryKeyType
	ordering types.Ordering
	static   bool
	frozen   bool
}

// NewColumn builds a plain column specification. The name must not be empty
// and the data type must not be nil; both are programmer errors.
func NewColumn(name string, dataType datatype.DataType) *ColumnSpecification {
	if dataType == nil {
		panic("column data type must not be nil")
	}
	return &ColumnSpecification{name: types.MustIdentifier(name), dataType: dataType}
}

// Partitioned marks the column as a partition key column. Any clustering
// order set earlier is cleared; ordering is only meaningful for clustered
// columns.
func (c *ColumnSpecification) Partitioned() *ColumnSpecification {
	c.keyType = types.PartitionedKey
	c.ordering = ""
	return c
}

// Clustered marks the column as a clustering key column with the default
// ascending order.
func (c *ColumnSpecification) Clustered() *ColumnSpecification {
	return c.ClusteredOrdered(types.Ascending)
}

// ClusteredOrdered marks the column as a clustering key column with an
// explicit order.
func (c *ColumnSpecification) ClusteredOrdered(ordering types.Ordering) *ColumnSpecification {
	c.keyType = types.ClusteredKey
	c.ordering = ordering
	return c
}

// Static marks the column static. The table specification rejects static key
// columns before construction completes.
func (c *ColumnSpecification) Static() *ColumnSpecification {
	c.static = true
	return c
}

// Frozen marks the column's type for frozen<> rendering, required for user
// defined types nested in collections.
func (c *ColumnSpecification) Frozen() *ColumnSpecification {
	c.frozen = true
	return c
}

func (c *ColumnSpecification) Name() types.Identifier       { return c.name }
func (c *ColumnSpecification) DataType() datatype.DataType  { return c.dataType }
func (c *ColumnSpecification) KeyType() types.PrimaryKeyType { return c.keyType }
func (c *ColumnSpecification) Ordering() types.Ordering     { return c.ordering }
func (c *ColumnSpecification) IsStatic() bool               { return c.static }
func (c *ColumnSpecification) IsFrozen() bool               { return c.frozen }
