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

// GenerateCreateUserType renders a CREATE TYPE statement. A type without
// fields cannot exist in Cassandra, so that is an error here.
func GenerateCreateUserType(spec *keyspace.CreateUserTypeSpecification) (string, error) {
	if len(spec.Fields()) == 0 {
		return "", fmt.Errorf("user defined type %s needs at least one field", spec.Name().Unquoted())
	}

	var sb strings.Builder
	sb.WriteString("CREATE TYPE ")
	if spec.HasIfNotExists() {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.Name()))
	sb.WriteString(" (")
	for i, field := range spec.Fields() {
		if i > 0 {
			sb.WriteString(", ")
		}
		typeCQL, err := DataTypeCQL(field.DataType(), field.IsFrozen())
		if err != nil {
			return "", fmt.Errorf("field %s: %w", field.Name().Unquoted(), err)
		}
		sb.WriteString(field.Name().CQL())
		sb.WriteString(" ")
		sb.WriteString(typeCQL)
	}
	sb.WriteString(");")
	return sb.String(), nil
}

// GenerateAlterUserType renders an ALTER TYPE statement, one clause per
// recorded change, in call order.
func GenerateAlterUserType(spec *keyspace.AlterUserTypeSpecification) (string, error) {
	if len(spec.Changes()) == 0 {
		return "", fmt.Errorf("alter type %s has no changes", spec.Name().Unquoted())
	}

	var sb strings.Builder
	sb.WriteString("ALTER TYPE ")
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.Name()))
	for _, change := range spec.Changes() {
		clause, err := fieldChangeCQL(change)
		if err != nil {
			return "", err
		}
		sb.WriteString(" ")
		sb.WriteString(clause)
	}
	sb.WriteString(";")
	return sb.String(), nil
}

func fieldChangeCQL(change keyspace.FieldChangeSpecification) (string, error) {
	switch c := change.(type) {
	case keyspace.AddFieldSpecification:
		typeCQL, err := DataTypeCQL(c.DataType(), false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ADD %s %s", c.Field().CQL(), typeCQL), nil
	case keyspace.AlterFieldSpecification:
		typeCQL, err := DataTypeCQL(c.DataType(), false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ALTER %s TYPE %s", c.Field().CQL(), typeCQL), nil
	case keyspace.RenameFieldSpecification:
		return fmt.Sprintf("RENAME %s TO %s", c.Field().CQL(), c.Target().CQL()), nil
	default:
		return "", fmt.Errorf("unsupported field change %T", change)
	}
}

// GenerateDropUserType renders a DROP TYPE statement.
func GenerateDropUserType(spec *keyspace.DropUserTypeSpecification) string {
	var sb strings.Builder
	sb.WriteString("DROP TYPE ")
	if spec.HasIfExists() {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(qualifiedName(spec.Keyspace(), spec.Name()))
	sb.WriteString(";")
	return sb.String()
}
