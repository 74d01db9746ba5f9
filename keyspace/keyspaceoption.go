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

	"github.com/ollionorg/cassandra-schema-mapper/global/constants"
)

// KeyspaceOption is one of the known CREATE/ALTER KEYSPACE WITH options.
type KeyspaceOption struct {
	DefaultOption
}

var (
	KeyspaceOptionReplication   = KeyspaceOption{NewOption("replication", OptionKindMap, true, false, false)}
	KeyspaceOptionDurableWrites = KeyspaceOption{NewOption("durable_writes", OptionKindBoolean, true, false, false)}
)

var keyspaceOptions = []KeyspaceOption{
	KeyspaceOptionReplication,
	KeyspaceOptionDurableWrites,
}

// KeyspaceOptionValueOfIgnoreCase finds the keyspace option with the given
// CQL name, ignoring case. Unknown names are an error.
func KeyspaceOptionValueOfIgnoreCase(name string) (KeyspaceOption, error) {
	if opt := FindKeyspaceOption(name); opt != nil {
		return *opt, nil
	}
	return KeyspaceOption{}, fmt.Errorf("unknown keyspace option: %q", name)
}

// FindKeyspaceOption returns nil for unknown names instead of an error.
func FindKeyspaceOption(name string) *KeyspaceOption {
	for i := range keyspaceOptions {
		if strings.EqualFold(keyspaceOptions[i].Name(), name) {
			return &keyspaceOptions[i]
		}
	}
	return nil
}

// DataCenterReplication is one datacenter entry of a
// NetworkTopologyStrategy replication map.
type DataCenterReplication struct {
	DataCenter        string
	ReplicationFactor int
}

// SimpleReplication builds the replication option value for SimpleStrategy.
func SimpleReplication(replicationFactor int) *OptionMap {
	m := NewOptionMap()
	m.Set("class", constants.SimpleStrategy)
	m.Set("replication_factor", replicationFactor)
	return m
}

// NetworkReplication builds the replication option value for
// NetworkTopologyStrategy, one entry per datacenter in argument order.
func NetworkReplication(dataCenters ...DataCenterReplication) *OptionMap {
	m := NewOptionMap()
	m.Set("class", constants.NetworkTopologyStrategy)
	for _, dc := range dataCenters {
		m.Set(dc.DataCenter, dc.ReplicationFactor)
	}
	return m
}
