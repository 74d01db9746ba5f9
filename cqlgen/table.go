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

	"github.com/ollionorg/cassandra-schema-mapper/global/types"
	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
)

// GenerateCreateTable renders a CREATE TABLE statement. A specification with
// no partition key column cannot be rendered; Cassandra rejects such tables,
// so the failure surfaces here rather than as a server syntax error.
func GenerateCreateTable(spec *keyspace.CreateTableSpecification) (string, error) {
	if len(spec.PartitionKeyColumns()) == 0 {
		return "", fmt.Errorf("table %s needs at least one partition key column", spec.Name().Unquoted())
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if spec.HasIfNotExists() {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.Name()))
	sb.WriteString(" (")

	for i, col := range spec.Columns() {
		if i > 0 {
			sb.WriteString(", ")
		}
		typeCQL, err := DataTypeCQL(col.DataType(), col.IsFrozen())
		if err != nil {
			return "", fmt.Errorf("column %s: %w", col.Name().Unquoted(), err)
		}
		sb.WriteString(col.Name().CQL())
		sb.WriteString(" ")
		sb.WriteString(typeCQL)
		if col.IsStatic() {
			sb.WriteString(" STATIC")
		}
	}

	sb.WriteString(", PRIMARY KEY (")
	sb.WriteString(primaryKeyCQL(spec))
	sb.WriteString("))")

	clauses := withClauses(spec)
	if len(clauses) > 0 {
		sb.WriteString(" WITH ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	sb.WriteString(";")
	return sb.String(), nil
}

// primaryKeyCQL renders the primary key column list: the partition key,
// parenthesized when composite, followed by the clustering columns.
func primaryKeyCQL(spec *keyspace.CreateTableSpecification) string {
	partition := spec.PartitionKeyColumns()
	names := make([]string, 0, len(partition))
	for _, col := range partition {
		names = append(names, col.Name().CQL())
	}

	var sb strings.Builder
	if len(names) == 1 {
		sb.WriteString(names[0])
	} else {
		sb.WriteString("(")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(")")
	}
	for _, col := range spec.ClusteredKeyColumns() {
		sb.WriteString(", ")
		sb.WriteString(col.Name().CQL())
	}
	return sb.String()
}

// withClauses assembles the WITH clause list: clustering order first, when
// any clustered column asks for a non-default order, then the recorded
// options in call order.
func withClauses(spec *keyspace.CreateTableSpecification) []string {
	var clauses []string

	ordered := false
	for _, col := range spec.ClusteredKeyColumns() {
		if col.Ordering() == types.Descending {
			ordered = true
			break
		}
	}
	if ordered {
		parts := make([]string, 0, len(spec.ClusteredKeyColumns()))
		for _, col := range spec.ClusteredKeyColumns() {
			parts = append(parts, fmt.Sprintf("%s %s", col.Name().CQL(), col.Ordering()))
		}
		clauses = append(clauses, "CLUSTERING ORDER BY ("+strings.Join(parts, ", ")+")")
	}

	for _, e := range spec.Options().Entries() {
		clauses = append(clauses, optionClause(e))
	}
	return clauses
}

// GenerateAlterTable renders an ALTER TABLE statement, one clause per
// recorded change, in call order.
func GenerateAlterTable(spec *keyspace.AlterTableSpecification) (string, error) {
	if len(spec.Changes()) == 0 && spec.Options().Len() == 0 {
		return "", fmt.Errorf("alter table %s has no changes", spec.Name().Unquoted())
	}

	var sb strings.Builder
	sb.WriteString("ALTER TABLE ")
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.Name()))

	for _, change := range spec.Changes() {
		clause, err := columnChangeCQL(change)
		if err != nil {
			return "", err
		}
		sb.WriteString(" ")
		sb.WriteString(clause)
	}

	if spec.Options().Len() > 0 {
		clauses := make([]string, 0, spec.Options().Len())
		for _, e := range spec.Options().Entries() {
			clauses = append(clauses, optionClause(e))
		}
		sb.WriteString(" WITH ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	sb.WriteString(";")
	return sb.String(), nil
}

func columnChangeCQL(change keyspace.ColumnChangeSpecification) (string, error) {
	switch c := change.(type) {
	case keyspace.AddColumnSpecification:
		typeCQL, err := DataTypeCQL(c.DataType(), false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ADD %s %s", c.Column().CQL(), typeCQL), nil
	case keyspace.AlterColumnSpecification:
		typeCQL, err := DataTypeCQL(c.DataType(), false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ALTER %s TYPE %s", c.Column().CQL(), typeCQL), nil
	case keyspace.DropColumnSpecification:
		return "DROP " + c.Column().CQL(), nil
	case keyspace.RenameColumnSpecification:
		return fmt.Sprintf("RENAME %s TO %s", c.Column().CQL(), c.Target().CQL()), nil
	default:
		return "", fmt.Errorf("unsupported column change %T", change)
	}
}

// GenerateDropTable renders a DROP TABLE statement.
func GenerateDropTable(spec *keyspace.DropTableSpecification) string {
	var sb strings.Builder
	sb.WriteString("DROP TABLE ")
	if spec.HasIfExists() {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.Name()))
	sb.WriteString(";")
	return sb.String()
}
