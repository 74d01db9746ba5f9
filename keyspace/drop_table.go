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

// DropTableSpecification describes one DROP TABLE statement.
type DropTableSpecification struct {
	keyspace types.Identifier
	name     types.Identifier
	ifExists bool
}

// DropTable starts a DROP TABLE specification for the given table.
func DropTable(name string) *DropTableSpecification {
	return &DropTableSpecification{name: types.MustIdentifier(name)}
}

// In qualifies the table name with a keyspace.
func (s *DropTableSpecification) In(keyspace string) *DropTableSpecification {
	s.keyspace = types.MustIdentifier(keyspace)
	return s
}

// IfExists adds the IF EXISTS guard.
func (s *DropTableSpecification) IfExists() *DropTableSpecification {
	s.ifExists = true
	return s
}

func (s *DropTableSpecification) Keyspace() types.Identifier { return s.keyspace }
func (s *DropTableSpecification) Name() types.Identifier     { return s.name }
func (s *DropTableSpecification) HasIfExists() bool          { return s.ifExists }
