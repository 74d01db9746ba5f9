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

// GenerateCreateIndex renders a CREATE INDEX statement, including the CUSTOM
// and SASI WITH OPTIONS variants.
func GenerateCreateIndex(spec *keyspace.CreateIndexSpecification) (string, error) {
	if spec.TableName().IsZero() {
		return "", fmt.Errorf("create index needs a target table")
	}
	if spec.ColumnName().IsZero() {
		return "", fmt.Errorf("create index on %s needs a target column", spec.TableName().Unquoted())
	}

	var sb strings.Builder
	sb.WriteString("CREATE ")
	if spec.IsCustom() {
		sb.WriteString("CUSTOM ")
	}
	sb.WriteString("INDEX ")
	if spec.HasIfNotExists() {
		sb.WriteString("IF NOT EXISTS ")
	}
	if !spec.Name().IsZero() {
		sb.WriteString(spec.Name().CQL())
		sb.WriteString(" ")
	}
	sb.WriteString("ON ")
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.TableName()))
	sb.WriteString(" (")
	if spec.ColumnFunction() != types.FunctionNone {
		sb.WriteString(string(spec.ColumnFunction()))
		sb.WriteString("(")
		sb.WriteString(spec.ColumnName().CQL())
		sb.WriteString(")")
	} else {
		sb.WriteString(spec.ColumnName().CQL())
	}
	sb.WriteString(")")

	if spec.UsingClass() != "" {
		sb.WriteString(" USING '")
		sb.WriteString(strings.ReplaceAll(spec.UsingClass(), "'", "''"))
		sb.WriteString("'")
	}

	if spec.Options().Len() > 0 {
		sb.WriteString(" WITH OPTIONS = ")
		sb.WriteString(mapLiteral(spec.Options()))
	}
	sb.WriteString(";")
	return sb.String(), nil
}

// GenerateDropIndex renders a DROP INDEX statement.
func GenerateDropIndex(spec *keyspace.DropIndexSpecification) string {
	var sb strings.Builder
	sb.WriteString("DROP INDEX ")
	if spec.HasIfExists() {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.Name()))
	sb.WriteString(";")
	return sb.String()
}
