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

package cqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollionorg/cassandra-schema-mapper/global/types"
	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
)

func TestGenerateCreateIndex(t *testing.T) {
	tests := []struct {
		name    string
		spec    *keyspace.CreateIndexSpecification
		want    string
		wantErr bool
	}{
		{
			name: "plain index",
			spec: keyspace.CreateIndex("events_by_source").In("analytics").
				On("events").Column("source"),
			want: "CREATE INDEX events_by_source ON analytics.events (source);",
		},
		{
			name: "unnamed index",
			spec: keyspace.CreateIndex("").In("analytics").
				On("events").Column("source"),
			want: "CREATE INDEX ON analytics.events (source);",
		},
		{
			name: "if not exists with entries function",
			spec: keyspace.CreateIndex("events_by_tag").In("analytics").
				On("events").Column("tags").
				WithFunction(types.FunctionEntries).IfNotExists(),
			want: "CREATE INDEX IF NOT EXISTS events_by_tag ON analytics.events (ENTRIES(tags));",
		},
		{
			name: "custom index with class and options",
			spec: keyspace.CreateIndex("events_fuzzy").In("analytics").
				On("events").Column("source").
				Using("org.apache.cassandra.index.sasi.SASIIndex").
				WithOption("mode", "CONTAINS"),
			want: "CREATE CUSTOM INDEX events_fuzzy ON analytics.events (source) USING 'org.apache.cassandra.index.sasi.SASIIndex' WITH OPTIONS = {'mode': 'CONTAINS'};",
		},
		{
			name:    "missing table",
			spec:    keyspace.CreateIndex("broken").Column("source"),
			wantErr: true,
		},
		{
			name:    "missing column",
			spec:    keyspace.CreateIndex("broken").On("events"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateCreateIndex(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateDropIndex(t *testing.T) {
	assert.Equal(t,
		"DROP INDEX IF EXISTS analytics.events_by_source;",
		GenerateDropIndex(keyspace.DropIndex("events_by_source").In("analytics").IfExists()))
	assert.Equal(t,
		"DROP INDEX events_by_source;",
		GenerateDropIndex(keyspace.DropIndex("events_by_source")))
}
