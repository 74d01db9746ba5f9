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
	"fmt"
	"strings"
)

// OptionEntry is one rendered WITH clause entry.
type OptionEntry struct {
	Name  string
	Value interface{}
}

// OptionMap is an insertion-order-preserving map of option name to value.
// Clause order is visible in generated CQL, so it must be deterministic.
type OptionMap struct {
	names  []string
	values map[string]interface{}
}

// NewOptionMap returns an empty option map.
func NewOptionMap() *OptionMap {
	return &OptionMap{values: make(map[string]interface{})}
}

// Set stores value under name, keeping first-insertion order. Setting an
// existing name overwrites the value but keeps its original position.
func (m *OptionMap) Set(name string, value interface{}) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value stored under name.
func (m *OptionMap) Get(name string) (interface{}, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of entries.
func (m *OptionMap) Len() int {
	return len(m.names)
}

// Entries returns all entries in insertion order.
func (m *OptionMap) Entries() []OptionEntry {
	entries := make([]OptionEntry, 0, len(m.names))
	for _, name := range m.names {
		entries = append(entries, OptionEntry{Name: name, Value: m.values[name]})
	}
	return entries
}

func (m *OptionMap) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", e.Name, e.Value)
	}
	sb.WriteString("}")
	return sb.String()
}
