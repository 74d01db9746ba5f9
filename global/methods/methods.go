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

/*
 * @file methods.go
 * @brief To avoid circular dependency, we have moved the methods to a separate file.
 */
package methods

import (
	"fmt"
	"strings"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/datastax/go-cassandra-native-protocol/primitive"
	lru "github.com/hashicorp/golang-lru"
)

const (
	// Primitive types
	CassandraTypeText      = "text"
	CassandraTypeVarchar   = "varchar"
	CassandraTypeAscii     = "ascii"
	CassandraTypeBlob      = "blob"
	CassandraTypeTimestamp = "timestamp"
	CassandraTypeDate      = "date"
	CassandraTypeTime      = "time"
	CassandraTypeInt       = "int"
	CassandraTypeSmallint  = "smallint"
	CassandraTypeTinyint   = "tinyint"
	CassandraTypeBigint    = "bigint"
	CassandraTypeVarint    = "varint"
	CassandraTypeDecimal   = "decimal"
	CassandraTypeBoolean   = "boolean"
	CassandraTypeUuid      = "uuid"
	CassandraTypeTimeuuid  = "timeuuid"
	CassandraTypeFloat     = "float"
	CassandraTypeDouble    = "double"
	CassandraTypeInet      = "inet"
	CassandraTypeCounter   = "counter"
	CassandraTypeDuration  = "duration"
)

// UserTypeResolverFunc resolves a bare type name that is not a Cassandra
// primitive into a user defined type. A nil func means user defined type
// names are rejected.
type UserTypeResolverFunc func(name string) (datatype.DataType, error)

// typeCache memoizes resolver-free parses. Type expressions repeat heavily
// when building schema for many entities, and parses are pure.
var typeCache *lru.Cache

func init() {
	typeCache, _ = lru.New(256)
}

// GetCassandraColumnType() converts a string representation of a Cassandra
// data type into a corresponding DataType value. It supports the common
// primitive types plus frozen, list, set and map compositions (e.g. "text",
// "int", "map<text, boolean>", "frozen<list<uuid>>"). The frozen wrapper is
// dropped; callers that need it should use ParseCQLType.
//
// Returns an error when the expression does not describe a known Cassandra
// type.
func GetCassandraColumnType(c string) (datatype.DataType, error) {
	if cached, ok := typeCache.Get(c); ok {
		return cached.(datatype.DataType), nil
	}
	dt, _, err := ParseCQLType(c, nil)
	if err != nil {
		return nil, err
	}
	typeCache.Add(c, dt)
	return dt, nil
}

// ParseCQLType parses a CQL type expression, reporting whether the outermost
// type was wrapped in frozen<>. Bare names that are not primitives are handed
// to resolve, so user defined type references ("frozen<address>") can be
// turned into *datatype.UserDefined values.
func ParseCQLType(c string, resolve UserTypeResolverFunc) (datatype.DataType, bool, error) {
	choice := strings.ToLower(strings.ReplaceAll(c, " ", ""))
	if strings.HasSuffix(choice, ">") {
		if strings.HasPrefix(choice, "frozen<") {
			innerType, _, err := ParseCQLType(choice[7:len(choice)-1], resolve)
			if err != nil {
				return nil, false, fmt.Errorf("failed to extract type for '%s': %w", c, err)
			}
			return innerType, true, nil
		} else if strings.HasPrefix(choice, "list<") {
			innerType, _, err := ParseCQLType(choice[5:len(choice)-1], resolve)
			if err != nil {
				return nil, false, fmt.Errorf("failed to extract type for '%s': %w", c, err)
			}
			return datatype.NewList(innerType), false, nil
		} else if strings.HasPrefix(choice, "set<") {
			innerType, _, err := ParseCQLType(choice[4:len(choice)-1], resolve)
			if err != nil {
				return nil, false, fmt.Errorf("failed to extract type for '%s': %w", c, err)
			}
			return datatype.NewSet(innerType), false, nil
		} else if strings.HasPrefix(choice, "map<") {
			key, value, ok := splitMapArguments(choice[4 : len(choice)-1])
			if !ok {
				return nil, false, fmt.Errorf("malformed map type '%s'", c)
			}
			keyType, _, err := ParseCQLType(key, resolve)
			if err != nil {
				return nil, false, fmt.Errorf("failed to extract type for '%s': %w", c, err)
			}
			valueType, _, err := ParseCQLType(value, resolve)
			if err != nil {
				return nil, false, fmt.Errorf("failed to extract type for '%s': %w", c, err)
			}
			return datatype.NewMap(keyType, valueType), false, nil
		}
	}
	if dt, ok := primitiveTypeFor(choice); ok {
		return dt, false, nil
	}
	if resolve != nil {
		dt, err := resolve(choice)
		if err != nil {
			return nil, false, err
		}
		return dt, false, nil
	}
	return nil, false, fmt.Errorf("unsupported column type: %s", choice)
}

// splitMapArguments splits "k,v" at the top-level comma, ignoring commas
// nested inside angle brackets (map<text,frozen<map<text,int>>>).
func splitMapArguments(s string) (string, string, bool) {
	depth := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

func primitiveTypeFor(name string) (datatype.DataType, bool) {
	switch name {
	case CassandraTypeText, CassandraTypeVarchar:
		return datatype.Varchar, true
	case CassandraTypeAscii:
		return datatype.Ascii, true
	case CassandraTypeBlob:
		return datatype.Blob, true
	case CassandraTypeTimestamp:
		return datatype.Timestamp, true
	case CassandraTypeDate:
		return datatype.Date, true
	case CassandraTypeTime:
		return datatype.Time, true
	case CassandraTypeInt:
		return datatype.Int, true
	case CassandraTypeSmallint:
		return datatype.Smallint, true
	case CassandraTypeTinyint:
		return datatype.Tinyint, true
	case CassandraTypeBigint:
		return datatype.Bigint, true
	case CassandraTypeVarint:
		return datatype.Varint, true
	case CassandraTypeDecimal:
		return datatype.Decimal, true
	case CassandraTypeBoolean:
		return datatype.Boolean, true
	case CassandraTypeUuid:
		return datatype.Uuid, true
	case CassandraTypeTimeuuid:
		return datatype.Timeuuid, true
	case CassandraTypeFloat:
		return datatype.Float, true
	case CassandraTypeDouble:
		return datatype.Double, true
	case CassandraTypeInet:
		return datatype.Inet, true
	case CassandraTypeCounter:
		return datatype.Counter, true
	case CassandraTypeDuration:
		return datatype.Duration, true
	default:
		return nil, false
	}
}

// ConvertCQLDataTypeToString renders a DataType back to its CQL textual form.
// A top-level user defined type renders as its bare name and callers decide
// whether a frozen<> wrapper is required; inside collections, where Cassandra
// insists on it, user defined types render pre-wrapped in frozen<>.
func ConvertCQLDataTypeToString(cqlType datatype.DataType) (string, error) {
	if cqlType == nil {
		return "", fmt.Errorf("datatype is nil")
	}

	switch cqlType.Code() {
	case primitive.DataTypeCodeVarchar:
		return CassandraTypeText, nil
	case primitive.DataTypeCodeAscii:
		return CassandraTypeAscii, nil
	case primitive.DataTypeCodeBlob:
		return CassandraTypeBlob, nil
	case primitive.DataTypeCodeTimestamp:
		return CassandraTypeTimestamp, nil
	case primitive.DataTypeCodeDate:
		return CassandraTypeDate, nil
	case primitive.DataTypeCodeTime:
		return CassandraTypeTime, nil
	case primitive.DataTypeCodeInt:
		return CassandraTypeInt, nil
	case primitive.DataTypeCodeSmallint:
		return CassandraTypeSmallint, nil
	case primitive.DataTypeCodeTinyint:
		return CassandraTypeTinyint, nil
	case primitive.DataTypeCodeBigint:
		return CassandraTypeBigint, nil
	case primitive.DataTypeCodeVarint:
		return CassandraTypeVarint, nil
	case primitive.DataTypeCodeDecimal:
		return CassandraTypeDecimal, nil
	case primitive.DataTypeCodeBoolean:
		return CassandraTypeBoolean, nil
	case primitive.DataTypeCodeUuid:
		return CassandraTypeUuid, nil
	case primitive.DataTypeCodeTimeuuid:
		return CassandraTypeTimeuuid, nil
	case primitive.DataTypeCodeFloat:
		return CassandraTypeFloat, nil
	case primitive.DataTypeCodeDouble:
		return CassandraTypeDouble, nil
	case primitive.DataTypeCodeInet:
		return CassandraTypeInet, nil
	case primitive.DataTypeCodeCounter:
		return CassandraTypeCounter, nil
	case primitive.DataTypeCodeDuration:
		return CassandraTypeDuration, nil
	case primitive.DataTypeCodeSet:
		setType, ok := cqlType.(*datatype.Set)
		if !ok {
			return "", fmt.Errorf("failed to assert set type for %v", cqlType)
		}
		elemTypeStr, elemErr := collectionElementString(setType.ElementType)
		if elemErr != nil {
			return "", elemErr
		}
		return fmt.Sprintf("set<%s>", elemTypeStr), nil
	case primitive.DataTypeCodeList:
		listType, ok := cqlType.(*datatype.List)
		if !ok {
			return "", fmt.Errorf("failed to assert list type for %v", cqlType)
		}
		elemTypeStr, elemErr := collectionElementString(listType.ElementType)
		if elemErr != nil {
			return "", elemErr
		}
		return fmt.Sprintf("list<%s>", elemTypeStr), nil
	case primitive.DataTypeCodeMap:
		mapType, ok := cqlType.(*datatype.Map)
		if !ok {
			return "", fmt.Errorf("failed to assert map type for %v", cqlType)
		}
		keyTypeStr, keyErr := collectionElementString(mapType.KeyType)
		if keyErr != nil {
			return "", keyErr
		}
		valueTypeStr, valueErr := collectionElementString(mapType.ValueType)
		if valueErr != nil {
			return "", valueErr
		}
		return fmt.Sprintf("map<%s,%s>", keyTypeStr, valueTypeStr), nil
	case primitive.DataTypeCodeUdt:
		udt, ok := cqlType.(*datatype.UserDefined)
		if !ok {
			return "", fmt.Errorf("failed to assert user defined type for %v", cqlType)
		}
		return udt.Name, nil
	default:
		return "", fmt.Errorf("unsupported data type: %v", cqlType)
	}
}

func collectionElementString(elem datatype.DataType) (string, error) {
	s, err := ConvertCQLDataTypeToString(elem)
	if err != nil {
		return "", err
	}
	if elem.Code() == primitive.DataTypeCodeUdt {
		return fmt.Sprintf("frozen<%s>", s), nil
	}
	return s, nil
}
