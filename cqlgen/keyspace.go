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

package cqlgen

import (
	"fmt"
	"strings"

	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
)

// GenerateCreateKeyspace renders a CREATE KEYSPACE statement. The replication
// option is mandatory in Cassandra, so its absence is an error here.
func GenerateCreateKeyspace(spec *keyspace.CreateKeyspaceSpecification) (string, error) {
	if _, ok := spec.Options().Get(keyspace.KeyspaceOptionReplication.Name()); !ok {
		return "", fmt.Errorf("keyspace %s needs a replication option", spec.Name().Unquoted())
	}

	var sb strings.Builder
	sb.WriteString("CREATE KEYSPACE ")
	if spec.HasIfNotExists() {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(spec.Name().CQL())
	sb.WriteString(" WITH ")
	clauses := make([]string, 0, spec.Options().Len())
	for _, e := range spec.Options().Entries() {
		clauses = append(clauses, optionClause(e))
	}
	sb.WriteString(strings.Join(clauses, " AND "))
	sb.WriteString(";")
	return sb.String(), nil
}

// GenerateAlterKeyspace renders an ALTER KEYSPACE statement.
func GenerateAlterKeyspace(spec *keyspace.AlterKeyspaceSpecification) (string, error) {
	if spec.Options().Len() == 0 {
		return "", fmt.Errorf("alter keyspace %s has no options", spec.Name().Unquoted())
	}

	var sb strings.Builder
	sb.WriteString("ALTER KEYSPACE ")
	sb.WriteString(spec.Name().CQL())
	sb.WriteString(" WITH ")
	clauses := make([]string, 0, spec.Options().Len())
	for _, e := range spec.Options().Entries() {
		clauses = append(clauses, optionClause(e))
	}
	sb.WriteString(strings.Join(clauses, " AND "))
	sb.WriteString(";")
	return sb.String(), nil
}

// GenerateDropKeyspace renders a DROP KEYSPACE statement.
func GenerateDropKeyspace(spec *keyspace.DropKeyspaceSpecification) string {
	var sb strings.Builder
	sb.WriteString("DROP KEYSPACE ")
	if spec.HasIfExists() {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(spec.Name().CQL())
	sb.WriteString(";")
	return sb.String()
}
