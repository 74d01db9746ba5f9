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

package mapping

import (
	"fmt"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
)

// UserTypeResolver resolves a user defined type name to its full
// *datatype.UserDefined, fields included. The mapping context implements
// it from its registered entities; the admin package implements it from
// system_schema.
type UserTypeResolver interface {
	ResolveUserType(name string) (*datatype.UserDefined, error)
}

// resolveTypeName backs the global/methods resolver func for cqltype tag
// expressions that reference a user defined type by name. Column
// declarations only need the type's name, so the shallow form is enough, but
// the name must still be registered.
func (c *Context) resolveTypeName(name string) (datatype.DataType, error) {
	c.mu.RLock()
	_, ok := c.udtsByName[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("user defined type %s is not registered", name)
	}
	return c.shallowUserType(name)
}

// ResolveUserType builds the full user defined type for a registered entity,
// resolving every field's data type. Referencing an unregistered name is an
// error.
func (c *Context) ResolveUserType(name string) (*datatype.UserDefined, error) {
	c.mu.RLock()
	entity, ok := c.udtsByName[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("user defined type %s is not registered", name)
	}

	fieldNames := make([]string, 0, len(entity.Properties))
	fieldTypes := make([]datatype.DataType, 0, len(entity.Properties))
	for _, p := range entity.Properties {
		dt, _, err := c.DataTypeFor(entity, p)
		if err != nil {
			return nil, err
		}
		fieldNames = append(fieldNames, p.ColumnName.Unquoted())
		fieldTypes = append(fieldTypes, dt)
	}
	return datatype.NewUserDefined(c.keyspace, name, fieldNames, fieldTypes)
}

// shallowUserType builds a user defined type carrying only keyspace and
// name. Column declarations reference a user defined type by name, so the
// field layout is not needed there and resolving it would make every table
// depend on every type's fields.
func (c *Context) shallowUserType(name string) (*datatype.UserDefined, error) {
	return datatype.NewUserDefined(c.keyspace, name, nil, nil)
}
