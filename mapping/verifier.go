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

	"github.com/ollionorg/cassandra-schema-mapper/global/types"
)

// EntityVerifier checks one structural rule of an entity descriptor. A
// verifier returns every finding it has rather than stopping at the first,
// and the context aggregates findings across all verifiers into a single
// MappingError per entity.
type EntityVerifier interface {
	Verify(entity *EntityDescriptor) []error
}

// defaultVerifiers is the chain every registered entity runs through
// during Freeze.
var defaultVerifiers = []EntityVerifier{
	compositeKeyClassVerifier{},
	tableKeyVerifier{},
	userTypeVerifier{},
}

// compositeKeyClassVerifier checks structs used as composite primary keys:
// every field must be a key column and at least one must be a partition key.
type compositeKeyClassVerifier struct{}

func (compositeKeyClassVerifier) Verify(entity *EntityDescriptor) []error {
	if entity.Kind != KindPrimaryKeyClass {
		return nil
	}

	var errs []error
	keyFields := 0
	partitionFields := 0
	for _, p := range entity.Properties {
		if p.CompositeKey {
			errs = append(errs, fmt.Errorf(
				"composite primary key %s cannot nest another composite key in field %s",
				entity.Name(), p.FieldName))
			continue
		}
		switch p.KeyType {
		case types.PartitionedKey:
			keyFields++
			partitionFields++
		case types.ClusteredKey:
			keyFields++
		default:
			errs = append(errs, fmt.Errorf(
				"field %s of composite primary key %s is not annotated as a key column",
				p.FieldName, entity.Name()))
		}
	}
	if keyFields == 0 {
		errs = append(errs, fmt.Errorf(
			"composite primary key %s has no fields annotated as key columns", entity.Name()))
	} else if partitionFields == 0 {
		errs = append(errs, fmt.Errorf(
			"composite primary key %s must have at least one field with a type of PARTITIONED", entity.Name()))
	}
	return errs
}

// tableKeyVerifier checks tables: a table carries either one composite
// primary key field or direct key columns, never both, and needs at least
// one partition key either way.
type tableKeyVerifier struct{}

func (tableKeyVerifier) Verify(entity *EntityDescriptor) []error {
	if entity.Kind != KindTable {
		return nil
	}

	var errs []error
	compositeFields := 0
	directKeyFields := 0
	for _, p := range entity.Properties {
		if p.CompositeKey {
			compositeFields++
		}
		if p.KeyType != "" {
			directKeyFields++
		}
	}
	if compositeFields > 1 {
		errs = append(errs, fmt.Errorf(
			"table %s has %d composite primary key fields, at most one is allowed",
			entity.Name(), compositeFields))
	}
	if compositeFields > 0 && directKeyFields > 0 {
		errs = append(errs, fmt.Errorf(
			"table %s mixes a composite primary key field with directly annotated key columns",
			entity.Name()))
	}
	if compositeFields == 0 && directKeyFields == 0 {
		errs = append(errs, fmt.Errorf(
			"table %s has no primary key columns", entity.Name()))
	}
	return errs
}

// userTypeVerifier checks user defined types: no key roles, no static
// columns, at least one field.
type userTypeVerifier struct{}

func (userTypeVerifier) Verify(entity *EntityDescriptor) []error {
	if entity.Kind != KindUserDefinedType {
		return nil
	}

	var errs []error
	if len(entity.Properties) == 0 {
		errs = append(errs, fmt.Errorf(
			"user defined type %s has no fields", entity.Name()))
	}
	for _, p := range entity.Properties {
		if p.KeyType != "" || p.CompositeKey {
			errs = append(errs, fmt.Errorf(
				"user defined type %s cannot declare key column %s", entity.Name(), p.FieldName))
		}
		if p.Static {
			errs = append(errs, fmt.Errorf(
				"user defined type %s cannot declare static field %s", entity.Name(), p.FieldName))
		}
	}
	return errs
}
