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

package methods

import (
	"fmt"
	"testing"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCassandraColumnType(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    datatype.DataType
		wantErr bool
	}{
		{name: "text", expr: "text", want: datatype.Varchar},
		{name: "varchar maps to varchar", expr: "varchar", want: datatype.Varchar},
		{name: "int", expr: "int", want: datatype.Int},
		{name: "timestamp", expr: "timestamp", want: datatype.Timestamp},
		{name: "uuid", expr: "uuid", want: datatype.Uuid},
		{name: "duration", expr: "duration", want: datatype.Duration},
		{name: "list of text", expr: "list<text>", want: datatype.NewList(datatype.Varchar)},
		{name: "set of int", expr: "set<int>", want: datatype.NewSet(datatype.Int)},
		{name: "map of text to boolean", expr: "map<text, boolean>", want: datatype.NewMap(datatype.Varchar, datatype.Boolean)},
		{
			name: "nested map",
			expr: "map<text,frozen<map<text,int>>>",
			want: datatype.NewMap(datatype.Varchar, datatype.NewMap(datatype.Varchar, datatype.Int)),
		},
		{name: "frozen wrapper is dropped", expr: "frozen<list<uuid>>", want: datatype.NewList(datatype.Uuid)},
		{name: "case and spaces ignored", expr: "MAP< Text , Int >", want: datatype.NewMap(datatype.Varchar, datatype.Int)},
		{name: "unknown type", expr: "geolocation", wantErr: true},
		{name: "malformed map", expr: "map<text>", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetCassandraColumnType(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetCassandraColumnTypeCachesParses(t *testing.T) {
	first, err := GetCassandraColumnType("map<text, list<int>>")
	require.NoError(t, err)
	second, err := GetCassandraColumnType("map<text, list<int>>")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseCQLTypeFrozenFlag(t *testing.T) {
	dt, frozen, err := ParseCQLType("frozen<set<text>>", nil)
	require.NoError(t, err)
	assert.True(t, frozen)
	assert.Equal(t, datatype.NewSet(datatype.Varchar), dt)

	dt, frozen, err = ParseCQLType("set<text>", nil)
	require.NoError(t, err)
	assert.False(t, frozen)
	assert.Equal(t, datatype.NewSet(datatype.Varchar), dt)
}

func TestParseCQLTypeResolvesUserTypes(t *testing.T) {
	resolve := func(name string) (datatype.DataType, error) {
		if name != "address" {
			return nil, fmt.Errorf("unknown type %s", name)
		}
		return datatype.NewUserDefined("app", "address", nil, nil)
	}

	dt, frozen, err := ParseCQLType("frozen<address>", resolve)
	require.NoError(t, err)
	assert.True(t, frozen)
	udt, ok := dt.(*datatype.UserDefined)
	require.True(t, ok)
	assert.Equal(t, "address", udt.Name)

	_, _, err = ParseCQLType("frozen<unknown_type>", resolve)
	assert.Error(t, err)

	_, _, err = ParseCQLType("address", nil)
	assert.Error(t, err)
}

func TestConvertCQLDataTypeToString(t *testing.T) {
	address, err := datatype.NewUserDefined("app", "address", nil, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		dt   datatype.DataType
		want string
	}{
		{name: "varchar renders as text", dt: datatype.Varchar, want: "text"},
		{name: "bigint", dt: datatype.Bigint, want: "bigint"},
		{name: "list", dt: datatype.NewList(datatype.Varchar), want: "list<text>"},
		{name: "set", dt: datatype.NewSet(datatype.Int), want: "set<int>"},
		{name: "map", dt: datatype.NewMap(datatype.Varchar, datatype.Boolean), want: "map<text,boolean>"},
		{name: "udt renders bare at top level", dt: address, want: "address"},
		{name: "udt in list renders frozen", dt: datatype.NewList(address), want: "list<frozen<address>>"},
		{name: "udt in map value renders frozen", dt: datatype.NewMap(datatype.Varchar, address), want: "map<text,frozen<address>>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertCQLDataTypeToString(tt.dt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = ConvertCQLDataTypeToString(nil)
	assert.Error(t, err)
}
