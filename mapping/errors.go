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

	"go.uber.org/multierr"
)

// MappingError reports schema-derivation failures for one entity. All
// findings discovered while verifying or deriving that entity are aggregated
// into a single error, so a developer sees every problem in one run instead
// of iterating one error at a time.
type MappingError struct {
	Entity string
	err    error
}

func newMappingError(entity string, errs ...error) *MappingError {
	return &MappingError{Entity: entity, err: multierr.Combine(errs...)}
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("entity %s: %v", e.Entity, e.err)
}

func (e *MappingError) Unwrap() error {
	return e.err
}

// Findings returns the individual findings behind the aggregate.
func (e *MappingError) Findings() []error {
	return multierr.Errors(e.err)
}

// TypeResolutionError reports a property whose Go type could not be resolved
// to a Cassandra data type. It names the owner entity, the property and the
// Go type so the mapping can be fixed without decompiling the framework.
type TypeResolutionError struct {
	Entity   string
	Property string
	GoType   reflect.Type
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve a Cassandra data type for property %s.%s of Go type %s",
		e.Entity, e.Property, e.GoType)
}
