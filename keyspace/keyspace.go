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

// CreateKeyspaceSpecification describes one CREATE KEYSPACE statement.
type CreateKeyspaceSpecification struct {
	name        types.Identifier
	ifNotExists bool
	options     *OptionMap
}

// CreateKeyspace starts a CREATE KEYSPACE specification.
func CreateKeyspace(name string) *CreateKeyspaceSpecification {
	return &CreateKeyspaceSpecification{name: types.MustIdentifier(name), options: NewOptionMap()}
}

// IfNotExists adds the IF NOT EXISTS guard.
func (s *CreateKeyspaceSpecification) IfNotExists() *CreateKeyspaceSpecification {
	s.ifNotExists = true
	return s
}

// With records a WITH option, validated against the option's declared kind.
func (s *CreateKeyspaceSpecification) With(option Option, value interface{}) *CreateKeyspaceSpecification {
	if err := option.CheckValue(value); err != nil {
		panic(err)
	}
	if value == nil {
		s.options.Set(option.Name(), nil)
		return s
	}
	if om, ok := asOptionMap(value); ok {
		s.options.Set(option.Name(), om)
		return s
	}
	s.options.Set(option.Name(), option.FormatValue(value))
	return s
}

// WithSimpleReplication records a SimpleStrategy replication option with the
// given replication factor.
func (s *CreateKeyspaceSpecification) WithSimpleReplication(replicationFactor int) *CreateKeyspaceSpecification {
	return s.With(KeyspaceOptionReplication, SimpleReplication(replicationFactor))
}

// WithNetworkReplication records a NetworkTopologyStrategy replication
// option, one entry per datacenter in argument order.
func (s *CreateKeyspaceSpecification) WithNetworkReplication(dataCenters ...DataCenterReplication) *CreateKeyspaceSpecification {
	return s.With(KeyspaceOptionReplication, NetworkReplication(dataCenters...))
}

func (s *CreateKeyspaceSpecification) Name() types.Identifier { return s.name }
func (s *CreateKeyspaceSpecification) HasIfNotExists() bool   { return s.ifNotExists }
func (s *CreateKeyspaceSpecification) Options() *OptionMap    { return s.options }

// AlterKeyspaceSpecification describes one ALTER KEYSPACE statement.
type AlterKeyspaceSpecification struct {
	name    types.Identifier
	options *OptionMap
}

// AlterKeyspace starts an ALTER KEYSPACE specification.
func AlterKeyspace(name string) *AlterKeyspaceSpecification {
	return &AlterKeyspaceSpecification{name: types.MustIdentifier(name), options: NewOptionMap()}
}

// With records a WITH option, validated against the option's declared kind.
func (s *AlterKeyspaceSpecification) With(option Option, value interface{}) *AlterKeyspaceSpecification {
	if err := option.CheckValue(value); err != nil {
		panic(err)
	}
	if value == nil {
		s.options.Set(option.Name(), nil)
		return s
	}
	if om, ok := asOptionMap(value); ok {
		s.options.Set(option.Name(), om)
		return s
	}
	s.options.Set(option.Name(), option.FormatValue(value))
	return s
}

// WithSimpleReplication records a SimpleStrategy replication option.
func (s *AlterKeyspaceSpecification) WithSimpleReplication(replicationFactor int) *AlterKeyspaceSpecification {
	return s.With(KeyspaceOptionReplication, SimpleReplication(replicationFactor))
}

func (s *AlterKeyspaceSpecification) Name() types.Identifier { return s.name }
func (s *AlterKeyspaceSpecification) Options() *OptionMap    { return s.options }

// DropKeyspaceSpecification describes one DROP KEYSPACE statement.
type DropKeyspaceSpecification struct {
	name     types.Identifier
	ifExists bool
}

// DropKeyspace starts a DROP KEYSPACE specification.
func DropKeyspace(name string) *DropKeyspaceSpecification {
	return &DropKeyspaceSpecification{name: types.MustIdentifier(name)}
}

// IfExists adds the IF EXISTS guard.
func (s *DropKeyspaceSpecification) IfExists() *DropKeyspaceSpecification {
	s.ifExists = true
	return s
}

func (s *DropKeyspaceSpecification) Name() types.Identifier { return s.name }
func (s *DropKeyspaceSpecification) HasIfExists() bool      { return s.ifExists }
