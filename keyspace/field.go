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

// FieldSpecification describes one field of a user defined type. Fields have
// no key role; user defined types have no primary key.
type FieldSpecification struct {
	name     types.Identifier
	dataType datatype.DataType
	frozen   bool
}

// NewField builds a field specification.
func NewField(name string, dataType datatype.DataType) *FieldSpecification {
	if dataType == nil {
		panic("field data type must not be nil")
	}
	return &FieldSpecification{name: types.MustIdentifier(name), dataType: dataType}
}

// Frozen marks the field's type for frozen<> rendering.
func (f *FieldSpecification) Frozen() *FieldSpecification {
	f.frozen = true
	return f
}

func (f *FieldSpecification) Name() types.Identifier      { return f.name }
func (f *FieldSpecification) DataType() datatype.DataType { return f.dataType }
func (f *FieldSpecification) IsFrozen() bool              { return f.frozen }
