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

// Package schemaMapping holds the runtime catalog of mapped schema: per
// keyspace, per table, per column metadata plus a primary key cache in
// partition-then-clustering order. The catalog is built once from a frozen
// mapping context and is read-only afterwards.
package schemaMapping

import (
	"fmt"
	"sort"

	"github.com/datastax/go-cassandra-native-protocol/message"
	"go.uber.org/zap"

	"github.com/ollionorg/cassandra-schema-mapper/global/constants"
	"github.com/ollionorg/cassandra-schema-mapper/global/types"
	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
	"github.com/ollionorg/cassandra-schema-mapper/mapping"
	"github.com/ollionorg/cassandra-schema-mapper/utilities"
)

type SchemaMappingConfig struct {
	Logger          *zap.Logger
	TablesMetaData  map[string]map[string]map[string]*types.Column
	PkMetadataCache map[string]map[string][]types.Column
}

// NewSchemaMappingConfig builds an empty catalog.
func NewSchemaMappingConfig(logger *zap.Logger) *SchemaMappingConfig {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchemaMappingConfig{
		Logger:          logger,
		TablesMetaData:  make(map[string]map[string]map[string]*types.Column),
		PkMetadataCache: make(map[string]map[string][]types.Column),
	}
}

// BuildFromContext builds the catalog from a frozen mapping context by
// assembling each registered table's specification and indexing its columns.
func BuildFromContext(ctx *mapping.Context, logger *zap.Logger) (*SchemaMappingConfig, error) {
	cfg := NewSchemaMappingConfig(logger)
	specs, err := ctx.CreateTableSpecifications()
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		if err := cfg.AddTable(spec); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// AddTable indexes one table specification into the catalog. The column
// index order is the specification's insertion order; the primary key cache
// keeps partition keys before clustering keys.
func (c *SchemaMappingConfig) AddTable(spec *keyspace.CreateTableSpecification) error {
	ks := spec.Keyspace().Unquoted()
	tableName := spec.Name().Unquoted()
	if ks == "" {
		return fmt.Errorf("table %s has no keyspace", tableName)
	}
	if _, ok := c.TablesMetaData[ks][tableName]; ok {
		return fmt.Errorf("table %s already exists in keyspace %s", tableName, ks)
	}

	columnsMap := make(map[string]*types.Column, len(spec.Columns()))
	for i, col := range spec.Columns() {
		columnsMap[col.Name().Unquoted()] = &types.Column{
			ColumnName:   col.Name().Unquoted(),
			CQLType:      col.DataType(),
			IsPrimaryKey: col.KeyType() != "",
			IsCollection: utilities.IsCollectionDataType(col.DataType()),
			IsStatic:     col.IsStatic(),
			IsFrozen:     col.IsFrozen(),
			KeyType:      catalogKeyType(col),
			Metadata: message.ColumnMetadata{
				Keyspace: ks,
				Table:    tableName,
				Name:     col.Name().Unquoted(),
				Index:    int32(i),
				Type:     col.DataType(),
			},
		}
	}

	var pkMeta []types.Column
	for i, col := range spec.PrimaryKeyColumns() {
		entry := columnsMap[col.Name().Unquoted()]
		entry.PkPrecedence = int32(i + 1)
		pkMeta = append(pkMeta, *entry)
	}

	if c.TablesMetaData[ks] == nil {
		c.TablesMetaData[ks] = make(map[string]map[string]*types.Column)
		c.PkMetadataCache[ks] = make(map[string][]types.Column)
	}
	c.TablesMetaData[ks][tableName] = columnsMap
	c.PkMetadataCache[ks][tableName] = pkMeta
	c.Logger.Debug("indexed table",
		zap.String("keyspace", ks), zap.String("table", tableName),
		zap.Int("columns", len(columnsMap)), zap.Int("primaryKeys", len(pkMeta)))
	return nil
}

func catalogKeyType(col *keyspace.ColumnSpecification) string {
	switch col.KeyType() {
	case types.PartitionedKey:
		return constants.KeyTypePartition
	case types.ClusteredKey:
		return constants.KeyTypeClustering
	default:
		return constants.KeyTypeRegular
	}
}

// GetPkByTableName finds the primary key columns of a specified table in a given keyspace.
//
// This method looks up the cached primary key metadata and returns the relevant columns
// in partition-then-clustering order.
//
// Parameters:
//   - tableName: The name of the table for which primary key metadata is requested.
//   - keySpace: The name of the keyspace where the table resides.
//
// Returns:
//   - []types.Column: A slice of types.Column structs representing the primary keys of the table.
//   - error: Returns an error if the primary key metadata is not found.
func (c *SchemaMappingConfig) GetPkByTableName(tableName string, keySpace string) ([]types.Column, error) {
	pkMeta, ok := c.PkMetadataCache[keySpace][tableName]
	if !ok {
		return nil, fmt.Errorf("could not find metadata for the table: %s", tableName)
	}
	return pkMeta, nil
}

// GetColumnType retrieves the metadata for a specified column in a given table and keyspace.
//
// Parameters:
//   - keyspace: The name of the keyspace where the table resides.
//   - tableName: The name of the table containing the column.
//   - columnName: The name of the column for which metadata is retrieved.
//
// Returns:
//   - A pointer to a types.Column struct containing the column's CQL type, whether it's a collection,
//     whether it's a primary key, and its key type.
//   - An error if the table or column metadata is not found.
func (c *SchemaMappingConfig) GetColumnType(keyspace, tableName, columnName string) (*types.Column, error) {
	td, ok := c.TablesMetaData[keyspace][tableName]
	if !ok {
		return nil, fmt.Errorf("could not find metadata for the table: %s", tableName)
	}

	col, ok := td[columnName]
	if !ok {
		return nil, fmt.Errorf("could not find column %s metadata for the table: %s", columnName, tableName)
	}

	if col.CQLType == nil {
		return nil, fmt.Errorf("could not find column %s metadata for the table: %s", columnName, tableName)
	}

	return &types.Column{
		ColumnName:   col.ColumnName,
		CQLType:      col.CQLType,
		IsPrimaryKey: col.IsPrimaryKey,
		IsCollection: col.IsCollection,
		IsStatic:     col.IsStatic,
		IsFrozen:     col.IsFrozen,
		KeyType:      col.KeyType,
		PkPrecedence: col.PkPrecedence,
	}, nil
}

// GetMetadataForColumns() retrieves metadata for specific columns in a given table.
//
// Parameters:
//   - keySpace: The keyspace where the table resides.
//   - tableName: The name of the table for which column metadata is being requested.
//   - columnNames(optional): Accepts nil if no columnNames provided or else a slice of strings
//     containing the names of the columns for which metadata is required. If this slice is
//     empty, metadata for all columns in the table will be returned.
//
// Returns:
// - A slice of pointers to ColumnMetadata structs containing metadata for each requested column.
// - An error if the specified table is not found in the TablesMetaData.
func (c *SchemaMappingConfig) GetMetadataForColumns(keySpace, tableName string, columnNames []string) ([]*message.ColumnMetadata, error) {
	columnsMap, ok := c.TablesMetaData[keySpace][tableName]
	if !ok {
		err := fmt.Errorf("could not find metadata for the table: %s", tableName)
		c.Logger.Error(err.Error())
		return nil, err
	}

	if len(columnNames) == 0 {
		return c.getAllColumnsMetadata(columnsMap), nil
	}
	return c.getSpecificColumnsMetadata(columnsMap, columnNames, tableName)
}

// getAllColumnsMetadata() retrieves metadata for all columns in a given table,
// sorted by column index.
func (c *SchemaMappingConfig) getAllColumnsMetadata(columnsMap map[string]*types.Column) []*message.ColumnMetadata {
	var columnMetadataList []*message.ColumnMetadata
	for _, column := range columnsMap {
		columnMd := column.Metadata.DeepCopy()
		columnMetadataList = append(columnMetadataList, columnMd)
	}
	sort.Slice(columnMetadataList, func(i, j int) bool {
		return columnMetadataList[i].Index < columnMetadataList[j].Index
	})
	return columnMetadataList
}

// getSpecificColumnsMetadata() retrieves metadata for specific columns in a
// given table, indexed in request order.
func (c *SchemaMappingConfig) getSpecificColumnsMetadata(columnsMap map[string]*types.Column, columnNames []string, tableName string) ([]*message.ColumnMetadata, error) {
	var columnMetadataList []*message.ColumnMetadata
	for i, columnName := range columnNames {
		column, ok := columnsMap[columnName]
		if !ok {
			errMsg := fmt.Sprintf("metadata not found for the `%s` column in `%s` table", columnName, tableName)
			c.Logger.Error(errMsg)
			return nil, fmt.Errorf("%s", errMsg)
		}
		columnMetadataList = append(columnMetadataList, c.cloneColumnMetadata(&column.Metadata, int32(i)))
	}
	return columnMetadataList, nil
}

// cloneColumnMetadata() clones the metadata from cache with a caller-chosen
// index.
func (c *SchemaMappingConfig) cloneColumnMetadata(metadata *message.ColumnMetadata, index int32) *message.ColumnMetadata {
	columnMd := metadata.DeepCopy()
	columnMd.Index = index
	return columnMd
}

// KeyspaceExists checks if a given keyspace exists in the schema mapping catalog.
func (c *SchemaMappingConfig) KeyspaceExists(keyspace string) bool {
	_, ok := c.TablesMetaData[keyspace]
	return ok
}

// TableExist checks if a given table exists within a specified keyspace in the schema mapping catalog.
func (c *SchemaMappingConfig) TableExist(keyspace string, tableName string) bool {
	_, ok := c.TablesMetaData[keyspace][tableName]
	return ok
}

// GetPkKeyType() returns the key type of a primary key column for a given table and keyspace.
// Returns the key type as a string if the column is a primary key, or an error if:
// - There's an error retrieving primary key information
// - The specified column is not a primary key in the table
func (c *SchemaMappingConfig) GetPkKeyType(tableName string, keySpace string, columnName string) (string, error) {
	pkColumns, err := c.GetPkByTableName(tableName, keySpace)
	if err != nil {
		return "", err
	}
	for _, col := range pkColumns {
		if col.ColumnName == columnName {
			return col.KeyType, nil
		}
	}
	return "", fmt.Errorf("column %s is not a primary key in table %s", columnName, tableName)
}

// ListKeyspaces returns a sorted list of all keyspace names in the schema mapping.
func (c *SchemaMappingConfig) ListKeyspaces() []string {
	keyspaces := make([]string, 0, len(c.TablesMetaData))
	for ks := range c.TablesMetaData {
		keyspaces = append(keyspaces, ks)
	}
	sort.Strings(keyspaces)
	return keyspaces
}

// ListTables returns a sorted list of all table names in a keyspace.
func (c *SchemaMappingConfig) ListTables(keyspace string) []string {
	tables := make([]string, 0, len(c.TablesMetaData[keyspace]))
	for t := range c.TablesMetaData[keyspace] {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	return tables
}
