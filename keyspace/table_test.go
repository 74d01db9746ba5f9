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
	"testing"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollionorg/cassandra-schema-mapper/global/types"
)

func TestColumnSpecificationRoles(t *testing.T) {
	t.Run("partitioned clears ordering", func(t *testing.T) {
		col := NewColumn("id", datatype.Uuid).ClusteredOrdered(types.Descending).Partitioned()
		assert.Equal(t, types.PartitionedKey, col.KeyType())
		assert.Equal(t, types.Ordering(""), col.Ordering())
	})

	t.Run("clustered defaults to ascending", func(t *testing.T) {
		col := NewColumn("ts", datatype.Timestamp).Clustered()
		assert.Equal(t, types.ClusteredKey, col.KeyType())
		assert.Equal(t, types.Ascending, col.Ordering())
	})

	t.Run("nil data type panics", func(t *testing.T) {
		assert.Panics(t, func() { NewColumn("broken", nil) })
	})
}

func TestTableSpecificationClassification(t *testing.T) {
	spec := CreateTable("events").In("analytics").
		PartitionKeyColumn("tenant", datatype.Varchar).
		PartitionKeyColumn("day", datatype.Date).
		ClusteredKeyColumnOrdered("ts", datatype.Timestamp, types.Descending).
		Column("payload", datatype.Blob).
		StaticColumn("owner", datatype.Varchar)

	require.Len(t, spec.Columns(), 5)
	require.Len(t, spec.PartitionKeyColumns(), 2)
	require.Len(t, spec.ClusteredKeyColumns(), 1)
	require.Len(t, spec.NonKeyColumns(), 2)
	require.Len(t, spec.StaticColumns(), 1)

	pk := spec.PrimaryKeyColumns()
	require.Len(t, pk, 3)
	assert.Equal(t, "tenant", pk[0].Name().Unquoted())
	assert.Equal(t, "day", pk[1].Name().Unquoted())
	assert.Equal(t, "ts", pk[2].Name().Unquoted())

	assert.Equal(t, "analytics", spec.Keyspace().Unquoted())
	assert.True(t, spec.StaticColumns()[0].IsStatic())
}

func TestTableSpecificationStaticKeyColumnPanics(t *testing.T) {
	spec := CreateTable("events")
	assert.PanicsWithValue(t, "a static column cannot be a primary key column", func() {
		spec.ColumnSpec(NewColumn("id", datatype.Uuid).Static().Partitioned())
	})
}

func TestCreateTableWith(t *testing.T) {
	spec := CreateTable("events").
		PartitionKeyColumn("id", datatype.Uuid).
		With(TableOptionComment, "user events").
		WithFlag(TableOptionCompactStorage).
		With(TableOptionGCGraceSeconds, 86400)

	entries := spec.Options().Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "comment", entries[0].Name)
	assert.Equal(t, "'user events'", entries[0].Value)
	assert.Equal(t, "COMPACT STORAGE", entries[1].Name)
	assert.Nil(t, entries[1].Value)
	assert.Equal(t, "gc_grace_seconds", entries[2].Name)
	assert.Equal(t, "86400", entries[2].Value)
}

func TestCreateTableWithInvalidValuePanics(t *testing.T) {
	spec := CreateTable("events")
	assert.Panics(t, func() { spec.With(TableOptionGCGraceSeconds, "not-a-number") })
	assert.Panics(t, func() { spec.With(TableOptionComment, nil) })
}

func TestCreateTableWithMapOptionStoredRaw(t *testing.T) {
	caching := NewOptionMap()
	caching.Set("keys", "ALL")
	spec := CreateTable("events").With(TableOptionCaching, caching)

	v, ok := spec.Options().Get("caching")
	require.True(t, ok)
	assert.Same(t, caching, v)
}

func TestCreateTableWithPlainMapOption(t *testing.T) {
	spec := CreateTable("events").With(TableOptionCompaction, map[string]string{
		"max_threshold": "32",
		"class":         "SizeTieredCompactionStrategy",
	})

	v, ok := spec.Options().Get("compaction")
	require.True(t, ok)
	om, ok := v.(*OptionMap)
	require.True(t, ok, "plain maps normalize to an OptionMap for the map literal path")
	require.Equal(t, 2, om.Len())
	assert.Equal(t, "class", om.Entries()[0].Name, "plain map keys are sorted")
	assert.Equal(t, "max_threshold", om.Entries()[1].Name)
}

func TestAlterTableWithPlainMapOption(t *testing.T) {
	spec := AlterTable("events").With(TableOptionCompaction, map[string]string{
		"class": "LeveledCompactionStrategy",
	})

	v, ok := spec.Options().Get("compaction")
	require.True(t, ok)
	_, isMap := v.(*OptionMap)
	assert.True(t, isMap)
}

func TestAlterTableChanges(t *testing.T) {
	spec := AlterTable("events").In("analytics").
		Add("source", datatype.Varchar).
		Alter("payload", datatype.Blob).
		Rename("ts", "event_ts").
		Drop("legacy")

	changes := spec.Changes()
	require.Len(t, changes, 4)
	assert.IsType(t, AddColumnSpecification{}, changes[0])
	assert.IsType(t, AlterColumnSpecification{}, changes[1])
	assert.IsType(t, RenameColumnSpecification{}, changes[2])
	assert.IsType(t, DropColumnSpecification{}, changes[3])
	assert.Equal(t, "source", changes[0].Column().Unquoted())
}

func TestDropTable(t *testing.T) {
	spec := DropTable("events").In("analytics").IfExists()
	assert.True(t, spec.HasIfExists())
	assert.Equal(t, "events", spec.Name().Unquoted())
	assert.Equal(t, "analytics", spec.Keyspace().Unquoted())
}
