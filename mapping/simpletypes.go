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
	"math/big"
	"net"
	"reflect"
	"time"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"gopkg.in/inf.v0"
)

// simpleTypes maps well-known Go types directly to their Cassandra
// counterpart. Resolution consults this table before falling back to
// kind-based inference, so time.Time wins over its struct kind.
var simpleTypes = map[reflect.Type]datatype.DataType{
	reflect.TypeOf(time.Time{}):      datatype.Timestamp,
	reflect.TypeOf(time.Duration(0)): datatype.Duration,
	reflect.TypeOf(gocql.UUID{}):     datatype.Uuid,
	reflect.TypeOf(uuid.UUID{}):      datatype.Uuid,
	reflect.TypeOf(net.IP{}):         datatype.Inet,
	reflect.TypeOf(big.Int{}):        datatype.Varint,
	reflect.TypeOf(inf.Dec{}):        datatype.Decimal,
	reflect.TypeOf([]byte(nil)):      datatype.Blob,
}

// resolveSimpleType resolves a Go type to a Cassandra data type without
// consulting registered user defined types or converters. The second return
// reports whether the type was resolvable at this level.
func resolveSimpleType(t reflect.Type, asSet bool) (datatype.DataType, bool) {
	if t == nil {
		return nil, false
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if dt, ok := simpleTypes[t]; ok {
		return dt, true
	}

	switch t.Kind() {
	case reflect.String:
		return datatype.Varchar, true
	case reflect.Bool:
		return datatype.Boolean, true
	case reflect.Int, reflect.Int64:
		return datatype.Bigint, true
	case reflect.Int32:
		return datatype.Int, true
	case reflect.Int16:
		return datatype.Smallint, true
	case reflect.Int8:
		return datatype.Tinyint, true
	case reflect.Float32:
		return datatype.Float, true
	case reflect.Float64:
		return datatype.Double, true
	case reflect.Slice:
		elem, ok := resolveSimpleType(t.Elem(), false)
		if !ok {
			return nil, false
		}
		if asSet {
			return datatype.NewSet(elem), true
		}
		return datatype.NewList(elem), true
	case reflect.Map:
		key, ok := resolveSimpleType(t.Key(), false)
		if !ok {
			return nil, false
		}
		value, ok := resolveSimpleType(t.Elem(), false)
		if !ok {
			return nil, false
		}
		return datatype.NewMap(key, value), true
	default:
		return nil, false
	}
}
