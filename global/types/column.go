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
	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/datastax/go-cassandra-native-protocol/message"
)

// Column is one column's entry in the schema mapping catalog.
type Column struct {
	ColumnName   string
	CQLType      datatype.DataType
	IsPrimaryKey bool
	IsCollection bool
	IsStatic     bool
	IsFrozen     bool
	KeyType      string
	PkPrecedence int32
	Metadata     message.ColumnMetadata
}
