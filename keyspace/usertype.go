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

// CreateUserTypeSpecification describes one CREATE TYPE statement: the type
// name plus its fields in declaration order.
type CreateUserTypeSpecification struct {
	keyspace    types.Identifier
	name        types.Identifier
	ifNotExists bool
	fields      []*FieldSpecification
}

// CreateUserType starts a CREATE TYPE specification.
func CreateUserType(name string) *CreateUserTypeSpecification {
	return &CreateUserTypeSpecification{name: types.MustIdentifier(name)}
}

// In qualifies the type name with a keyspace.
func (s *CreateUserTypeSpecification) In(keyspace string) *CreateUserTypeSpecification {
	s.keyspace = types.MustIdentifier(keyspace)
	return s
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateUserTypeSpecification) IfNotExists() *CreateUserTypeSpecification {
	s.ifNotExists = true
	return s
}

// Field adds a field.
func (s *CreateUserTypeSpecification) Field(name string, dataType datatype.DataType) *CreateUserTypeSpecification {
	s.fields = append(s.fields, NewField(name, dataType))
	return s
}

// FieldSpec adds a pre-built field, typically one carrying a frozen flag.
func (s *CreateUserTypeSpecification) FieldSpec(field *FieldSpecification) *CreateUserTypeSpecification {
	s.fields = append(s.fields, field)
	return s
}

func (s *CreateUserTypeSpecification) Keyspace() types.Identifier    { return s.keyspace }
func (s *CreateUserTypeSpecification) Name() types.Identifier        { return s.name }
func (s *CreateUserTypeSpecification) HasIfNotExists() bool          { return s.ifNotExists }
func (s *CreateUserTypeSpecification) Fields() []*FieldSpecification { return s.fields }

// FieldChangeSpecification is one mutation applied to an existing user
// defined type.
type FieldChangeSpecification interface {
	Field() types.Identifier
}

// AddFieldSpecification adds a new field.
type AddFieldSpecification struct {
	name     types.Identifier
	dataType datatype.DataType
}

func (s AddFieldSpecification) Field() types.Identifier     { return s.name }
func (s AddFieldSpecification) DataType() datatype.DataType { return s.dataType }

// AlterFieldSpecification changes an existing field's type.
type AlterFieldSpecification struct {
	name     types.Identifier
	dataType datatype.DataType
}

func (s AlterFieldSpecification) Field() types.Identifier     { return s.name }
func (s AlterFieldSpecification) DataType() datatype.DataType { return s.dataType }

// RenameFieldSpecification renames a field.
type RenameFieldSpecification struct {
	from types.Identifier
	to   types.Identifier
}

func (s RenameFieldSpecification) Field() types.Identifier  { return s.from }
func (s RenameFieldSpecification) Target() types.Identifier { return s.to }

// AlterUserTypeSpecification describes one ALTER TYPE statement as an
// ordered list of field changes.
type AlterUserTypeSpecification struct {
	keyspace types.Identifier
	name     types.Identifier
	changes  []FieldChangeSpecification
}

// AlterUserType starts an ALTER TYPE specification.
func AlterUserType(name string) *AlterUserTypeSpecification {
	return &AlterUserTypeSpecification{name: types.MustIdentifier(name)}
}

// In qualifies the type name with a keyspace.
func (s *AlterUserTypeSpecification) In(keyspace string) *AlterUserTypeSpecification {
	s.keyspace = types.MustIdentifier(keyspace)
	return s
}

// Add appends an ADD field change.
func (s *AlterUserTypeSpecification) Add(name string, dataType datatype.DataType) *AlterUserTypeSpecification {
	if dataType == nil {
		panic("field data type must not be nil")
	}
	s.changes = append(s.changes, AddFieldSpecification{name: types.MustIdentifier(name), dataType: dataType})
	return s
}

// Alter appends an ALTER field type change.
func (s *AlterUserTypeSpecification) Alter(name string, dataType datatype.DataType) *AlterUserTypeSpecification {
	if dataType == nil {
		panic("field data type must not be nil")
	}
	s.changes = append(s.changes, AlterFieldSpecification{name: types.MustIdentifier(name), dataType: dataType})
	return s
}

// Rename appends a RENAME field change.
func (s *AlterUserTypeSpecification) Rename(from, to string) *AlterUserTypeSpecification {
	s.changes = append(s.changes, RenameFieldSpecification{from: types.MustIdentifier(from), to: types.MustIdentifier(to)})
	return s
}

func (s *AlterUserTypeSpecification) Keyspace() types.Identifier { return s.keyspace }
func (s *AlterUserTypeSpecification) Name() types.Identifier     { return s.name }

// Changes returns the field changes in call order.
func (s *AlterUserTypeSpecification) Changes() []FieldChangeSpecification {
	return s.changes
}

// DropUserTypeSpecification describes one DROP TYPE statement.
type DropUserTypeSpecification struct {
	keyspace types.Identifier
	name     types.Identifier
	ifExists bool
}

// DropUserType starts a DROP TYPE specification.
func DropUserType(name string) *DropUserTypeSpecification {
	return &DropUserTypeSpecification{name: types.MustIdentifier(name)}
}

// In qualifies the type name with a keyspace.
func (s *DropUserTypeSpecification) In(keyspace string) *DropUserTypeSpecification {
	s.keyspace = types.MustIdentifier(keyspace)
	return s
}

// IfExists adds the IF EXISTS guard.
func (s *DropUserTypeSpecification) IfExists() *DropUserTypeSpecification {
	s.ifExists = true
	return s
}

func (s *DropUserTypeSpecification) Keyspace() types.Identifier { return s.keyspace }
func (s *DropUserTypeSpecification) Name() types.Identifier     { return s.name }
func (s *DropUserTypeSpecification) HasIfExists() bool          { return s.ifExists }
