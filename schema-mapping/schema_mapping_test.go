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

package schemaMapping

import (
	"testing"
	"time"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollionorg/cassandra-schema-mapper/global/constants"
	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
	"github.com/ollionorg/cassandra-schema-mapper/mapping"
)

func eventsSpec() *keyspace.CreateTableSpecification {
	return keyspace.CreateTable("events").In("analytics").
		PartitionKeyColumn("tenant", datatype.Varchar).
		PartitionKeyColumn("day", datatype.Date).
		ClusteredKeyColumn("ts", datatype.Timestamp).
		Column("payload", datatype.Blob).
		Column("tags", datatype.NewSet(datatype.Varchar))
}

func newTestCatalog(t *testing.T) *SchemaMappingConfig {
	t.Helper()
	cfg := NewSchemaMappingConfig(nil)
	require.NoError(t, cfg.AddTable(eventsSpec()))
	require.NoError(t, cfg.AddTable(keyspace.CreateTable("users").In("analytics").
		PartitionKeyColumn("id", datatype.Uuid).
		Column("name", datatype.Varchar)))
	return cfg
}

func TestAddTable(t *testing.T) {
	cfg := newTestCatalog(t)

	require.Contains(t, cfg.TablesMetaData, "analytics")
	require.Contains(t, cfg.TablesMetaData["analytics"], "events")

	tenant := cfg.TablesMetaData["analytics"]["events"]["tenant"]
	require.NotNil(t, tenant)
	assert.True(t, tenant.IsPrimaryKey)
	assert.Equal(t, constants.KeyTypePartition, tenant.KeyType)
	assert.Equal(t, int32(0), tenant.Metadata.Index)
	assert.Equal(t, int32(1), tenant.PkPrecedence)

	tags := cfg.TablesMetaData["analytics"]["events"]["tags"]
	require.NotNil(t, tags)
	assert.True(t, tags.IsCollection)
	assert.False(t, tags.IsPrimaryKey)
	assert.Equal(t, constants.KeyTypeRegular, tags.KeyType)
	assert.Equal(t, int32(4), tags.Metadata.Index)
}

func TestAddTableErrors(t *testing.T) {
	cfg := newTestCatalog(t)

	err := cfg.AddTable(eventsSpec())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	err = cfg.AddTable(keyspace.CreateTable("orphan").
		PartitionKeyColumn("id", datatype.Uuid))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no keyspace")
}

func TestBuildFromContext(t *testing.T) {
	type order struct {
		Region  string    `cql:"region,partitionkey"`
		Placed  time.Time `cql:"placed,clusteringkey:desc"`
		Total   float64   `cql:"total"`
		Comment string    `cql:"comment"`
	}

	ctx := mapping.NewContext("shop", nil)
	require.NoError(t, ctx.Register(order{}, ""))
	require.NoError(t, ctx.Freeze())

	cfg, err := BuildFromContext(ctx, nil)
	require.NoError(t, err)

	assert.True(t, cfg.KeyspaceExists("shop"))
	assert.True(t, cfg.TableExist("shop", "order"))

	pks, err := cfg.GetPkByTableName("order", "shop")
	require.NoError(t, err)
	require.Len(t, pks, 2)
	assert.Equal(t, "region", pks[0].ColumnName)
	assert.Equal(t, constants.KeyTypePartition, pks[0].KeyType)
	assert.Equal(t, "placed", pks[1].ColumnName)
	assert.Equal(t, constants.KeyTypeClustering, pks[1].KeyType)
}

func TestGetPkByTableName(t *testing.T) {
	cfg := newTestCatalog(t)

	pks, err := cfg.GetPkByTableName("events", "analytics")
	require.NoError(t, err)
	require.Len(t, pks, 3)
	assert.Equal(t, "tenant", pks[0].ColumnName)
	assert.Equal(t, "day", pks[1].ColumnName)
	assert.Equal(t, "ts", pks[2].ColumnName)
	assert.Equal(t, int32(1), pks[0].PkPrecedence)
	assert.Equal(t, int32(3), pks[2].PkPrecedence)

	_, err = cfg.GetPkByTableName("missing", "analytics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find metadata")
}

func TestGetColumnType(t *testing.T) {
	cfg := newTestCatalog(t)

	col, err := cfg.GetColumnType("analytics", "events", "ts")
	require.NoError(t, err)
	assert.Equal(t, datatype.Timestamp, col.CQLType)
	assert.True(t, col.IsPrimaryKey)
	assert.Equal(t, constants.KeyTypeClustering, col.KeyType)

	original := cfg.TablesMetaData["analytics"]["events"]["ts"]
	assert.NotSame(t, original, col, "callers get a copy, not the cache entry")

	_, err = cfg.GetColumnType("analytics", "events", "missing")
	assert.Error(t, err)
	_, err = cfg.GetColumnType("analytics", "missing", "ts")
	assert.Error(t, err)
}

func TestGetMetadataForColumns(t *testing.T) {
	cfg := newTestCatalog(t)

	all, err := cfg.GetMetadataForColumns("analytics", "events", nil)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "tenant", all[0].Name)
	assert.Equal(t, "tags", all[4].Name)
	for i, md := range all {
		assert.Equal(t, int32(i), md.Index)
		assert.Equal(t, "analytics", md.Keyspace)
		assert.Equal(t, "events", md.Table)
	}

	specific, err := cfg.GetMetadataForColumns("analytics", "events", []string{"payload", "tenant"})
	require.NoError(t, err)
	require.Len(t, specific, 2)
	assert.Equal(t, "payload", specific[0].Name)
	assert.Equal(t, int32(0), specific[0].Index, "specific lookups re-index in request order")
	assert.Equal(t, "tenant", specific[1].Name)
	assert.Equal(t, int32(1), specific[1].Index)

	_, err = cfg.GetMetadataForColumns("analytics", "events", []string{"missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata not found for the `missing` column in `events` table")

	_, err = cfg.GetMetadataForColumns("analytics", "missing", nil)
	assert.Error(t, err)
}

func TestGetPkKeyType(t *testing.T) {
	cfg := newTestCatalog(t)

	keyType, err := cfg.GetPkKeyType("events", "analytics", "day")
	require.NoError(t, err)
	assert.Equal(t, constants.KeyTypePartition, keyType)

	keyType, err = cfg.GetPkKeyType("events", "analytics", "ts")
	require.NoError(t, err)
	assert.Equal(t, constants.KeyTypeClustering, keyType)

	_, err = cfg.GetPkKeyType("events", "analytics", "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a primary key")
}

func TestKeyspaceAndTableListing(t *testing.T) {
	cfg := newTestCatalog(t)
	require.NoError(t, cfg.AddTable(keyspace.CreateTable("sessions").In("auth").
		PartitionKeyColumn("token", datatype.Varchar)))

	if diff := cmp.Diff([]string{"analytics", "auth"}, cfg.ListKeyspaces()); diff != "" {
		t.Errorf("ListKeyspaces() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"events", "users"}, cfg.ListTables("analytics")); diff != "" {
		t.Errorf("ListTables() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, cfg.ListTables("missing"))

	assert.True(t, cfg.KeyspaceExists("auth"))
	assert.False(t, cfg.KeyspaceExists("missing"))
	assert.True(t, cfg.TableExist("auth", "sessions"))
	assert.False(t, cfg.TableExist("auth", "events"))
}
