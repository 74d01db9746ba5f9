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

// ColumnChangeSpecification is one mutation applied to an existing table or
// user defined type. Changes are rendered in the order the fluent calls were
// made; Cassandra processes them sequentially.
type ColumnChangeSpecification interface {
	Column() types.Identifier
}

// AddColumnSpecification adds a new column.
type AddColumnSpecification struct {
	name     types.Identifier
	dataType datatype.DataType
}

func NewAddColumn(name string, dataType datatype.DataType) AddColumnSpecification {
	if dataType == nil {
		panic("column data type must not be nil")
	}
	return AddColumnSpecification{name: types.MustIdentifier(name), dataType: dataType}
}

func (s AddColumnSpecification) Column() types.Identifier    { return s.name }
func (s AddColumnSpecification) DataType() datatype.DataType { return s.dataType }

// AlterColumnSpecification changes an existing column's type.
type AlterColumnSpecification struct {
	name     types.Identifier
	dataType datatype.DataType
}

func NewAlterColumn(name string, dataType datatype.DataType) AlterColumnSpecification {
	if dataType == nil {
		panic("column data type must not be nil")
	}
	return AlterColumnSpecification{name: types.MustIdentifier(name), dataType: dataType}
}

func (s AlterColumnSpecification) Column() types.Identifier    { return s.name }
func (s AlterColumnSpecification) DataType() datatype.DataType { return s.dataType }

// DropColumnSpecification removes a column.
type DropColumnSpecification struct {
	name types.Identifier
}

func NewDropColumn(name string) DropColumnSpecification {
	return DropColumnSpecification{name: types.MustIdentifier(name)}
}

func (s DropColumnSpecification) Column() types.Identifier { return s.name }

// RenameColumnSpecification renames a column.
type RenameColumnSpecification struct {
	from types.Identifier
	to   types.Identifier
}

func NewRenameColumn(from, to string) RenameColumnSpecification {
	return RenameColumnSpecification{from: types.MustIdentifier(from), to: types.MustIdentifier(to)}
}

func (s RenameColumnSpecification) Column() types.Identifier { return s.from }
func (s RenameColumnSpecification) Target() types.Identifier { return s.to }
