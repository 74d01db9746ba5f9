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

package admin

import (
	"fmt"
	"testing"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserType(t *testing.T) {
	udt, err := buildUserType("app", "address",
		[]string{"street", "zip", "tags"},
		[]string{"text", "int", "set<text>"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "app", udt.Keyspace)
	assert.Equal(t, "address", udt.Name)
	assert.Equal(t, []string{"street", "zip", "tags"}, udt.FieldNames)
	assert.Equal(t, []datatype.DataType{
		datatype.Varchar,
		datatype.Int,
		datatype.NewSet(datatype.Varchar),
	}, udt.FieldTypes)
}

func TestBuildUserTypeNestedTypes(t *testing.T) {
	resolve := func(name string) (datatype.DataType, error) {
		if name != "geopoint" {
			return nil, fmt.Errorf("unknown type %s", name)
		}
		return datatype.NewUserDefined("app", "geopoint",
			[]string{"lat", "lon"},
			[]datatype.DataType{datatype.Double, datatype.Double})
	}

	udt, err := buildUserType("app", "address",
		[]string{"street", "location"},
		[]string{"text", "frozen<geopoint>"}, resolve)
	require.NoError(t, err)

	require.Len(t, udt.FieldTypes, 2)
	nested, ok := udt.FieldTypes[1].(*datatype.UserDefined)
	require.True(t, ok)
	assert.Equal(t, "geopoint", nested.Name)
	assert.Equal(t, []string{"lat", "lon"}, nested.FieldNames)

	_, err = buildUserType("app", "address",
		[]string{"location"},
		[]string{"frozen<elsewhere>"}, resolve)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field location")
}

func TestBuildUserTypeErrors(t *testing.T) {
	_, err := buildUserType("app", "address",
		[]string{"street", "zip"},
		[]string{"text"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 field names but 1 field types")

	_, err = buildUserType("app", "address",
		[]string{"street"},
		[]string{"geolocation"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field street")
}
