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
	"reflect"
	"testing"
	"time"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollionorg/cassandra-schema-mapper/cqlgen"
)

type address struct {
	Street string `cql:"street"`
	Zip    int32  `cql:"zip"`
}

type eventKey struct {
	Tenant string    `cql:"tenant,partitionkey"`
	Day    time.Time `cql:"day,partitionkey" cqltype:"date"`
	Ts     time.Time `cql:"ts,clusteringkey:desc"`
}

type event struct {
	Key     eventKey `cql:",primarykey"`
	Payload []byte   `cql:"payload"`
	Tags    []string `cql:"tags,set"`
	Home    address  `cql:"home,frozen"`
}

type user struct {
	ID   gocql.UUID `cql:"id,partitionkey"`
	Name string     `cql:"name"`
	Rank int32      `cql:"rank,static"`
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext("app", nil)
	require.NoError(t, ctx.RegisterUDT(address{}, ""))
	require.NoError(t, ctx.Register(event{}, "events"))
	require.NoError(t, ctx.Register(user{}, ""))
	return ctx
}

func TestRegister(t *testing.T) {
	ctx := newTestContext(t)

	desc, ok := ctx.TableFor("user")
	require.True(t, ok, "table name defaults to the snake_case type name")
	assert.Equal(t, KindTable, desc.Kind)

	keyDesc, ok := ctx.EntityFor(reflect.TypeOf(eventKey{}))
	require.True(t, ok, "composite key classes register implicitly")
	assert.Equal(t, KindPrimaryKeyClass, keyDesc.Kind)

	udtDesc, ok := ctx.EntityFor(reflect.TypeOf(&address{}))
	require.True(t, ok)
	assert.Equal(t, KindUserDefinedType, udtDesc.Kind)
	assert.Equal(t, "address", udtDesc.Name())
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := newTestContext(t)

	err := ctx.Register(user{}, "people")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = ctx.Register(struct {
		ID string `cql:"id,partitionkey"`
	}{}, "events")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mapped")

	err = ctx.RegisterUDT(struct {
		City string `cql:"city"`
	}{}, "address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mapped")
}

func TestRegisterRejectsNonStructs(t *testing.T) {
	ctx := NewContext("app", nil)
	assert.Error(t, ctx.Register("not a struct", "t"))
	assert.Error(t, ctx.Register(nil, "t"))
}

func TestFreeze(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Freeze())
	require.NoError(t, ctx.Freeze(), "freezing twice is a no-op")

	err := ctx.Register(struct {
		ID string `cql:"id,partitionkey"`
	}{}, "late")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frozen")
}

func TestFreezeAggregatesFindings(t *testing.T) {
	type badKey struct {
		A string `cql:"a"`
	}
	type badTable struct {
		Key badKey `cql:",primarykey"`
	}
	type keyless struct {
		Name string `cql:"name"`
	}

	ctx := NewContext("app", nil)
	require.NoError(t, ctx.Register(badTable{}, "bad"))
	require.NoError(t, ctx.Register(keyless{}, "keyless"))

	err := ctx.Freeze()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields annotated")
	assert.Contains(t, err.Error(), "is not annotated as a key column")
	assert.Contains(t, err.Error(), "table keyless has no primary key columns")

	require.NoError(t, ctx.Register(user{}, ""),
		"a failed freeze leaves the context open for fixes")
}

func TestFreezeRequiresPartitionKeyInKeyClass(t *testing.T) {
	type clusterKey struct {
		Ts time.Time `cql:"ts,clusteringkey"`
	}
	type table struct {
		Key clusterKey `cql:",primarykey"`
	}

	ctx := NewContext("app", nil)
	require.NoError(t, ctx.Register(table{}, "t"))
	err := ctx.Freeze()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have at least one field with a type of PARTITIONED")
}

func TestDataTypeForPrecedence(t *testing.T) {
	type price float64
	type row struct {
		ID     gocql.UUID `cql:"id,partitionkey"`
		Body   string     `cql:"body" cqltype:"frozen<set<text>>"`
		Home   address    `cql:"home"`
		Amount price      `cql:"amount"`
		Count  int64      `cql:"count"`
	}

	ctx := NewContext("app", nil)
	require.NoError(t, ctx.RegisterUDT(address{}, ""))
	require.NoError(t, ctx.Register(row{}, "rows"))
	ctx.RegisterConverter(reflect.TypeOf(price(0)), datatype.Decimal)

	desc, ok := ctx.TableFor("rows")
	require.True(t, ok)

	dt, frozen, err := ctx.DataTypeFor(desc, desc.Property("body"))
	require.NoError(t, err)
	assert.True(t, frozen, "an explicit frozen<> literal wins over the tag")
	assert.Equal(t, datatype.NewSet(datatype.Varchar), dt)

	dt, frozen, err = ctx.DataTypeFor(desc, desc.Property("home"))
	require.NoError(t, err)
	assert.False(t, frozen)
	udt, isUDT := dt.(*datatype.UserDefined)
	require.True(t, isUDT)
	assert.Equal(t, "address", udt.Name)

	dt, _, err = ctx.DataTypeFor(desc, desc.Property("amount"))
	require.NoError(t, err)
	assert.Equal(t, datatype.Decimal, dt, "registered converters win over kind inference")

	dt, _, err = ctx.DataTypeFor(desc, desc.Property("count"))
	require.NoError(t, err)
	assert.Equal(t, datatype.Bigint, dt)
}

func TestDataTypeForUserTypeWinsOverConverter(t *testing.T) {
	type row struct {
		ID   gocql.UUID `cql:"id,partitionkey"`
		Home address    `cql:"home"`
	}

	ctx := NewContext("app", nil)
	require.NoError(t, ctx.RegisterUDT(address{}, ""))
	require.NoError(t, ctx.Register(row{}, "rows"))
	ctx.RegisterConverter(reflect.TypeOf(address{}), datatype.Varchar)

	desc, ok := ctx.TableFor("rows")
	require.True(t, ok)

	dt, _, err := ctx.DataTypeFor(desc, desc.Property("home"))
	require.NoError(t, err)
	udt, isUDT := dt.(*datatype.UserDefined)
	require.True(t, isUDT, "a registered user defined type outranks a converter for the same Go type")
	assert.Equal(t, "address", udt.Name)
}

func TestDataTypeForUnresolvable(t *testing.T) {
	type row struct {
		ID string      `cql:"id,partitionkey"`
		Ch chan string `cql:"ch"`
	}
	ctx := NewContext("app", nil)
	require.NoError(t, ctx.Register(row{}, "rows"))

	desc, _ := ctx.TableFor("rows")
	_, _, err := ctx.DataTypeFor(desc, desc.Property("ch"))
	require.Error(t, err)
	var tre *TypeResolutionError
	require.ErrorAs(t, err, &tre)
	assert.Equal(t, "rows", tre.Entity)
	assert.Equal(t, "Ch", tre.Property)
}

func TestRegisterConverterPanicsOnNil(t *testing.T) {
	ctx := NewContext("app", nil)
	assert.Panics(t, func() { ctx.RegisterConverter(nil, datatype.Varchar) })
	assert.Panics(t, func() { ctx.RegisterConverter(reflect.TypeOf(""), nil) })
}

func TestCreateTableSpecificationFor(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Freeze())

	spec, err := ctx.CreateTableSpecificationFor(&event{})
	require.NoError(t, err)

	stmt, err := cqlgen.GenerateCreateTable(spec)
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE app.events (tenant text, day date, ts timestamp, payload blob, tags set<text>, home frozen<address>, PRIMARY KEY ((tenant, day), ts)) WITH CLUSTERING ORDER BY (ts DESC);",
		stmt)

	spec, err = ctx.CreateTableSpecificationFor(user{})
	require.NoError(t, err)
	stmt, err = cqlgen.GenerateCreateTable(spec)
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE app.user (id uuid, name text, rank int STATIC, PRIMARY KEY (id));",
		stmt)
}

func TestCreateTableSpecificationForRequiresPartitionKey(t *testing.T) {
	type row struct {
		Ts time.Time `cql:"ts,clusteringkey"`
	}
	ctx := NewContext("app", nil)
	require.NoError(t, ctx.Register(row{}, "rows"))

	_, err := ctx.CreateTableSpecificationFor(row{})
	require.Error(t, err)
	var me *MappingError
	require.ErrorAs(t, err, &me)
	assert.Contains(t, me.Error(), "no partition key columns")
}

func TestCreateTableSpecificationForUnregistered(t *testing.T) {
	ctx := NewContext("app", nil)
	_, err := ctx.CreateTableSpecificationFor(user{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered as a table entity")
}

func TestCreateUserTypeSpecificationFor(t *testing.T) {
	ctx := newTestContext(t)

	spec, err := ctx.CreateUserTypeSpecificationFor(address{})
	require.NoError(t, err)
	stmt, err := cqlgen.GenerateCreateUserType(spec)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TYPE app.address (street text, zip int);", stmt)

	_, err = ctx.CreateUserTypeSpecificationFor(user{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered as a user defined type entity")
}

func TestCreateTableSpecifications(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Freeze())

	specs, err := ctx.CreateTableSpecifications()
	require.NoError(t, err)
	assert.Len(t, specs, 2)

	names := make(map[string]bool)
	for _, s := range specs {
		names[s.Name().Unquoted()] = true
	}
	assert.True(t, names["events"])
	assert.True(t, names["user"])
}

func TestContainsTable(t *testing.T) {
	ctx := newTestContext(t)

	assert.True(t, ctx.ContainsTable(&gocql.TableMetadata{Keyspace: "app", Name: "events"}))
	assert.False(t, ctx.ContainsTable(&gocql.TableMetadata{Keyspace: "other", Name: "events"}))
	assert.False(t, ctx.ContainsTable(&gocql.TableMetadata{Keyspace: "app", Name: "missing"}))
	assert.False(t, ctx.ContainsTable(nil))
}

func TestResolveUserType(t *testing.T) {
	ctx := newTestContext(t)

	udt, err := ctx.ResolveUserType("address")
	require.NoError(t, err)
	assert.Equal(t, "app", udt.Keyspace)
	assert.Equal(t, "address", udt.Name)
	assert.Equal(t, []string{"street", "zip"}, udt.FieldNames)
	assert.Equal(t, []datatype.DataType{datatype.Varchar, datatype.Int}, udt.FieldTypes)

	_, err = ctx.ResolveUserType("missing")
	assert.Error(t, err)
}

func TestTablesAndUserDefinedTypes(t *testing.T) {
	ctx := newTestContext(t)
	assert.Len(t, ctx.Tables(), 2)
	assert.Len(t, ctx.UserDefinedTypes(), 1)
	assert.Equal(t, "app", ctx.Keyspace())
}
