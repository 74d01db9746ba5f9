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
	"reflect"
	"sync"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/gocql/gocql"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ollionorg/cassandra-schema-mapper/global/methods"
	"github.com/ollionorg/cassandra-schema-mapper/global/types"
	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
)

// Context holds the registered entities of one keyspace and derives schema
// specifications from them. Registration is explicit; Freeze verifies the
// whole set at once and reports every finding, after which the context is
// read-only and safe for concurrent use.
type Context struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	keyspace string
	frozen   bool

	entities     map[reflect.Type]*EntityDescriptor
	tablesByName map[string]*EntityDescriptor
	udtsByName   map[string]*EntityDescriptor
	converters   map[reflect.Type]datatype.DataType
}

// NewContext creates a mapping context for the given keyspace. A nil logger
// disables logging.
func NewContext(keyspaceName string, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		logger:       logger,
		keyspace:     keyspaceName,
		entities:     make(map[reflect.Type]*EntityDescriptor),
		tablesByName: make(map[string]*EntityDescriptor),
		udtsByName:   make(map[string]*EntityDescriptor),
		converters:   make(map[reflect.Type]datatype.DataType),
	}
}

// Keyspace returns the keyspace this context maps into.
func (c *Context) Keyspace() string {
	return c.keyspace
}

// Register registers a struct as a table entity. An empty table name
// defaults to the snake_case form of the struct's type name. Struct types of
// composite primary key fields are registered implicitly.
func (c *Context) Register(entity interface{}, tableName string) error {
	t, err := entityType(entity)
	if err != nil {
		return err
	}
	if tableName == "" {
		tableName = toSnakeCase(t.Name())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return fmt.Errorf("mapping context is frozen, cannot register %s", t)
	}
	if existing, ok := c.entities[t]; ok {
		return fmt.Errorf("type %s is already registered as %s %s", t, existing.Kind, existing.Name())
	}
	if existing, ok := c.tablesByName[tableName]; ok {
		return fmt.Errorf("table %s is already mapped by %s", tableName, existing.GoType)
	}

	props, err := describeStruct(t)
	if err != nil {
		return err
	}
	desc := &EntityDescriptor{
		GoType:     t,
		Kind:       KindTable,
		TableName:  types.MustIdentifier(tableName),
		Properties: props,
	}
	c.entities[t] = desc
	c.tablesByName[tableName] = desc

	for _, p := range props {
		if !p.CompositeKey {
			continue
		}
		if err := c.registerKeyClassLocked(p.GoType); err != nil {
			delete(c.entities, t)
			delete(c.tablesByName, tableName)
			return err
		}
	}

	c.logger.Debug("registered table entity",
		zap.String("type", t.String()), zap.String("table", tableName))
	return nil
}

// RegisterUDT registers a struct as a user defined type entity. An empty
// type name defaults to the snake_case form of the struct's type name.
func (c *Context) RegisterUDT(entity interface{}, typeName string) error {
	t, err := entityType(entity)
	if err != nil {
		return err
	}
	if typeName == "" {
		typeName = toSnakeCase(t.Name())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return fmt.Errorf("mapping context is frozen, cannot register %s", t)
	}
	if existing, ok := c.entities[t]; ok {
		return fmt.Errorf("type %s is already registered as %s %s", t, existing.Kind, existing.Name())
	}
	if existing, ok := c.udtsByName[typeName]; ok {
		return fmt.Errorf("user defined type %s is already mapped by %s", typeName, existing.GoType)
	}

	props, err := describeStruct(t)
	if err != nil {
		return err
	}
	desc := &EntityDescriptor{
		GoType:     t,
		Kind:       KindUserDefinedType,
		UDTName:    types.MustIdentifier(typeName),
		Properties: props,
	}
	c.entities[t] = desc
	c.udtsByName[typeName] = desc

	c.logger.Debug("registered user defined type entity",
		zap.String("type", t.String()), zap.String("udt", typeName))
	return nil
}

// RegisterConverter maps a Go type directly to a Cassandra data type,
// bypassing structural inference for every property of that type.
func (c *Context) RegisterConverter(goType reflect.Type, dt datatype.DataType) {
	if goType == nil || dt == nil {
		panic("converter type and data type must not be nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.converters[goType] = dt
}

func (c *Context) registerKeyClassLocked(t reflect.Type) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if existing, ok := c.entities[t]; ok {
		if existing.Kind != KindPrimaryKeyClass {
			return fmt.Errorf("type %s is used as a composite primary key but is registered as %s", t, existing.Kind)
		}
		return nil
	}
	props, err := describeStruct(t)
	if err != nil {
		return err
	}
	c.entities[t] = &EntityDescriptor{
		GoType:     t,
		Kind:       KindPrimaryKeyClass,
		Properties: props,
	}
	return nil
}

// Freeze verifies every registered entity and resolves every property's data
// type. It returns one MappingError per failing entity, aggregated, so a
// single run surfaces all problems. After a successful Freeze the context is
// read-only.
func (c *Context) Freeze() error {
	c.mu.RLock()
	frozen := c.frozen
	entities := make([]*EntityDescriptor, 0, len(c.entities))
	for _, e := range c.entities {
		entities = append(entities, e)
	}
	c.mu.RUnlock()
	if frozen {
		return nil
	}

	var combined error
	for _, entity := range entities {
		var findings []error
		for _, v := range defaultVerifiers {
			findings = append(findings, v.Verify(entity)...)
		}
		for _, p := range entity.Properties {
			if p.CompositeKey {
				continue
			}
			if _, _, err := c.DataTypeFor(entity, p); err != nil {
				findings = append(findings, err)
			}
		}
		if len(findings) > 0 {
			combined = multierr.Append(combined, newMappingError(entity.Name(), findings...))
		}
	}
	if combined != nil {
		return combined
	}

	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
	c.logger.Info("mapping context frozen",
		zap.String("keyspace", c.keyspace), zap.Int("entities", len(entities)))
	return nil
}

// EntityFor returns the descriptor registered for a Go type.
func (c *Context) EntityFor(t reflect.Type) (*EntityDescriptor, bool) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entities[t]
	return e, ok
}

// TableFor returns the descriptor mapped to a table name.
func (c *Context) TableFor(tableName string) (*EntityDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.tablesByName[tableName]
	return e, ok
}

// Tables returns the table entities in no particular order.
func (c *Context) Tables() []*EntityDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*EntityDescriptor, 0, len(c.tablesByName))
	for _, e := range c.tablesByName {
		out = append(out, e)
	}
	return out
}

// UserDefinedTypes returns the user defined type entities in no particular
// order.
func (c *Context) UserDefinedTypes() []*EntityDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*EntityDescriptor, 0, len(c.udtsByName))
	for _, e := range c.udtsByName {
		out = append(out, e)
	}
	return out
}

// ContainsTable reports whether live table metadata corresponds to a
// registered table entity.
func (c *Context) ContainsTable(tm *gocql.TableMetadata) bool {
	if tm == nil {
		return false
	}
	if c.keyspace != "" && tm.Keyspace != c.keyspace {
		return false
	}
	_, ok := c.TableFor(tm.Name)
	return ok
}

// DataTypeFor resolves a property's Cassandra data type and whether the
// column needs a frozen<> wrapper. Resolution precedence: explicit cqltype
// expression, registered user defined type, registered converter, built-in
// simple type inference.
func (c *Context) DataTypeFor(entity *EntityDescriptor, prop *PropertyDescriptor) (datatype.DataType, bool, error) {
	if prop.CompositeKey {
		return nil, false, fmt.Errorf(
			"composite primary key field %s.%s has no single data type", entity.Name(), prop.FieldName)
	}

	if prop.TypeLiteral != "" {
		dt, literalFrozen, err := methods.ParseCQLType(prop.TypeLiteral, c.resolveTypeName)
		if err != nil {
			return nil, false, fmt.Errorf("property %s.%s: %w", entity.Name(), prop.FieldName, err)
		}
		return dt, literalFrozen || prop.Frozen, nil
	}

	dt, ok := c.resolveGoType(prop.GoType, prop.AsSet)
	if !ok {
		return nil, false, &TypeResolutionError{
			Entity:   entity.Name(),
			Property: prop.FieldName,
			GoType:   prop.GoType,
		}
	}
	return dt, prop.Frozen, nil
}

// resolveGoType resolves a Go type structurally, consulting registered user
// defined types and converters before the built-in simple type table. A type
// registered both ways resolves to the user defined type.
func (c *Context) resolveGoType(t reflect.Type, asSet bool) (datatype.DataType, bool) {
	if t == nil {
		return nil, false
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	c.mu.RLock()
	converted, hasConverter := c.converters[t]
	entity, isEntity := c.entities[t]
	c.mu.RUnlock()
	if isEntity && entity.Kind == KindUserDefinedType {
		udt, err := c.shallowUserType(entity.UDTName.Unquoted())
		if err != nil {
			return nil, false
		}
		return udt, true
	}
	if hasConverter {
		return converted, true
	}
	if dt, ok := simpleTypes[t]; ok {
		return dt, true
	}

	switch t.Kind() {
	case reflect.Slice:
		elem, ok := c.resolveGoType(t.Elem(), false)
		if !ok {
			return nil, false
		}
		if asSet {
			return datatype.NewSet(elem), true
		}
		return datatype.NewList(elem), true
	case reflect.Map:
		key, ok := c.resolveGoType(t.Key(), false)
		if !ok {
			return nil, false
		}
		value, ok := c.resolveGoType(t.Elem(), false)
		if !ok {
			return nil, false
		}
		return datatype.NewMap(key, value), true
	default:
		return resolveSimpleType(t, asSet)
	}
}

// CreateTableSpecificationFor assembles a CREATE TABLE specification for a
// registered table entity. Composite primary key fields are flattened into
// the table's key columns in the key class's declaration order.
func (c *Context) CreateTableSpecificationFor(entity interface{}) (*keyspace.CreateTableSpecification, error) {
	t, err := entityType(entity)
	if err != nil {
		return nil, err
	}
	desc, ok := c.EntityFor(t)
	if !ok || desc.Kind != KindTable {
		return nil, fmt.Errorf("type %s is not registered as a table entity", t)
	}

	spec := keyspace.CreateTable(desc.TableName.Unquoted()).In(c.keyspace)
	partitionKeys := 0
	var findings []error
	for _, p := range desc.Properties {
		if p.CompositeKey {
			n, errs := c.addCompositeKeyColumns(spec, desc, p)
			partitionKeys += n
			findings = append(findings, errs...)
			continue
		}
		if err := c.addColumn(spec, desc, p); err != nil {
			findings = append(findings, err)
			continue
		}
		if p.KeyType == types.PartitionedKey {
			partitionKeys++
		}
	}
	if len(findings) > 0 {
		return nil, newMappingError(desc.Name(), findings...)
	}
	if partitionKeys == 0 {
		return nil, newMappingError(desc.Name(),
			fmt.Errorf("table %s has no partition key columns", desc.Name()))
	}
	return spec, nil
}

func (c *Context) addCompositeKeyColumns(spec *keyspace.CreateTableSpecification, owner *EntityDescriptor, p *PropertyDescriptor) (int, []error) {
	keyDesc, ok := c.EntityFor(p.GoType)
	if !ok || keyDesc.Kind != KindPrimaryKeyClass {
		return 0, []error{fmt.Errorf(
			"field %s.%s references unregistered composite primary key type %s",
			owner.Name(), p.FieldName, p.GoType)}
	}

	partitionKeys := 0
	var findings []error
	for _, kp := range keyDesc.Properties {
		dt, _, err := c.DataTypeFor(keyDesc, kp)
		if err != nil {
			findings = append(findings, err)
			continue
		}
		switch kp.KeyType {
		case types.PartitionedKey:
			spec.PartitionKeyColumn(kp.ColumnName.Unquoted(), dt)
			partitionKeys++
		case types.ClusteredKey:
			spec.ClusteredKeyColumnOrdered(kp.ColumnName.Unquoted(), dt, kp.Ordering)
		default:
			findings = append(findings, fmt.Errorf(
				"field %s of composite primary key %s is not annotated as a key column",
				kp.FieldName, keyDesc.Name()))
		}
	}
	return partitionKeys, findings
}

func (c *Context) addColumn(spec *keyspace.CreateTableSpecification, owner *EntityDescriptor, p *PropertyDescriptor) error {
	dt, frozen, err := c.DataTypeFor(owner, p)
	if err != nil {
		return err
	}

	column := keyspace.NewColumn(p.ColumnName.Unquoted(), dt)
	switch p.KeyType {
	case types.PartitionedKey:
		column.Partitioned()
	case types.ClusteredKey:
		column.ClusteredOrdered(p.Ordering)
	}
	if p.Static {
		column.Static()
	}
	if frozen {
		column.Frozen()
	}
	spec.ColumnSpec(column)
	return nil
}

// CreateUserTypeSpecificationFor assembles a CREATE TYPE specification for a
// registered user defined type entity.
func (c *Context) CreateUserTypeSpecificationFor(entity interface{}) (*keyspace.CreateUserTypeSpecification, error) {
	t, err := entityType(entity)
	if err != nil {
		return nil, err
	}
	desc, ok := c.EntityFor(t)
	if !ok || desc.Kind != KindUserDefinedType {
		return nil, fmt.Errorf("type %s is not registered as a user defined type entity", t)
	}
	if len(desc.Properties) == 0 {
		return nil, newMappingError(desc.Name(),
			fmt.Errorf("user defined type %s has no fields", desc.Name()))
	}

	spec := keyspace.CreateUserType(desc.UDTName.Unquoted()).In(c.keyspace)
	var findings []error
	for _, p := range desc.Properties {
		dt, frozen, err := c.DataTypeFor(desc, p)
		if err != nil {
			findings = append(findings, err)
			continue
		}
		field := keyspace.NewField(p.ColumnName.Unquoted(), dt)
		if frozen {
			field.Frozen()
		}
		spec.FieldSpec(field)
	}
	if len(findings) > 0 {
		return nil, newMappingError(desc.Name(), findings...)
	}
	return spec, nil
}

// CreateTableSpecifications assembles CREATE TABLE specifications for every
// registered table, in registration-independent name order left to the
// caller.
func (c *Context) CreateTableSpecifications() ([]*keyspace.CreateTableSpecification, error) {
	var specs []*keyspace.CreateTableSpecification
	var combined error
	for _, e := range c.Tables() {
		spec, err := c.CreateTableSpecificationFor(reflect.New(e.GoType).Interface())
		if err != nil {
			combined = multierr.Append(combined, err)
			continue
		}
		specs = append(specs, spec)
	}
	return specs, combined
}

// CreateUserTypeSpecifications assembles CREATE TYPE specifications for
// every registered user defined type.
func (c *Context) CreateUserTypeSpecifications() ([]*keyspace.CreateUserTypeSpecification, error) {
	var specs []*keyspace.CreateUserTypeSpecification
	var combined error
	for _, e := range c.UserDefinedTypes() {
		spec, err := c.CreateUserTypeSpecificationFor(reflect.New(e.GoType).Interface())
		if err != nil {
			combined = multierr.Append(combined, err)
			continue
		}
		specs = append(specs, spec)
	}
	return specs, combined
}

func entityType(entity interface{}) (reflect.Type, error) {
	if entity == nil {
		return nil, fmt.Errorf("entity must not be nil")
	}
	t, ok := entity.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(entity)
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("entity type %s is not a struct", t)
	}
	return t, nil
}
