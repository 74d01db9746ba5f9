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

// Package admin executes schema specifications against a live Cassandra
// cluster. It renders specifications through cqlgen, runs the resulting DDL
// over a gocql session and reads schema state back from system_schema.
package admin

import (
	"context"
	"fmt"

	"github.com/datastax/go-cassandra-native-protocol/datatype"
	"github.com/gocql/gocql"
	"go.uber.org/zap"

	"github.com/ollionorg/cassandra-schema-mapper/cqlgen"
	"github.com/ollionorg/cassandra-schema-mapper/global/methods"
	"github.com/ollionorg/cassandra-schema-mapper/keyspace"
	"github.com/ollionorg/cassandra-schema-mapper/mapping"
	otelgo "github.com/ollionorg/cassandra-schema-mapper/otel"
)

const (
	queryTypeCreate = "create"
	queryTypeAlter  = "alter"
	queryTypeDrop   = "drop"
)

// Admin runs schema DDL against one cluster.
type Admin struct {
	session  *gocql.Session
	logger   *zap.Logger
	otel     *otelgo.OpenTelemetry
	keyspace string
}

// NewAdmin connects to the cluster described by cfg. The returned shutdown
// func flushes tracing; Close releases the session.
func NewAdmin(ctx context.Context, cfg *Config, logger *zap.Logger) (*Admin, func(context.Context) error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cluster := gocql.NewCluster(cfg.ContactPoints...)
	cluster.Port = cfg.Port
	cluster.Timeout = cfg.Timeout()
	cluster.NumConns = cfg.NumConns
	cluster.Consistency = gocql.Quorum
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to cluster: %w", err)
	}

	otelConfig := &otelgo.OTelConfig{OTELEnabled: false}
	if cfg.Otel != nil {
		otelConfig = &otelgo.OTelConfig{
			TracerEndpoint:     cfg.Otel.TracerEndpoint,
			ServiceName:        cfg.Otel.ServiceName,
			TraceSampleRatio:   cfg.Otel.TraceSampleRatio,
			OTELEnabled:        cfg.Otel.Enabled,
			Database:           "cassandra",
			HealthCheckEnabled: cfg.Otel.HealthCheckEnabled,
			HealthCheckEp:      cfg.Otel.HealthCheckEp,
			ServiceVersion:     cfg.Otel.ServiceVersion,
		}
	}
	otelInst, shutdown, err := otelgo.NewOpenTelemetry(ctx, otelConfig, logger)
	if err != nil {
		session.Close()
		return nil, nil, err
	}
	if shutdown == nil {
		shutdown = func(context.Context) error { return nil }
	}

	return &Admin{
		session:  session,
		logger:   logger,
		otel:     otelInst,
		keyspace: cfg.Keyspace,
	}, shutdown, nil
}

// Close releases the underlying session.
func (a *Admin) Close() {
	a.session.Close()
}

func (a *Admin) execute(ctx context.Context, stmt, queryType, table string) error {
	ctx, span := a.otel.StartSpan(ctx, "admin.execute", otelgo.Attributes{
		Keyspace:  a.keyspace,
		Table:     table,
		QueryType: queryType,
	})
	err := a.session.Query(stmt).WithContext(ctx).Exec()
	a.otel.RecordError(span, err)
	a.otel.EndSpan(span)
	if err != nil {
		a.logger.Error("DDL statement failed",
			zap.String("statement", stmt), zap.Error(err))
		return fmt.Errorf("failed to execute %q: %w", stmt, err)
	}
	a.logger.Info("executed DDL statement", zap.String("statement", stmt))
	return nil
}

// CreateKeyspace renders and runs a CREATE KEYSPACE specification.
func (a *Admin) CreateKeyspace(ctx context.Context, spec *keyspace.CreateKeyspaceSpecification) error {
	stmt, err := cqlgen.GenerateCreateKeyspace(spec)
	if err != nil {
		return err
	}
	return a.execute(ctx, stmt, queryTypeCreate, "")
}

// AlterKeyspace renders and runs an ALTER KEYSPACE specification.
func (a *Admin) AlterKeyspace(ctx context.Context, spec *keyspace.AlterKeyspaceSpecification) error {
	stmt, err := cqlgen.GenerateAlterKeyspace(spec)
	if err != nil {
		return err
	}
	return a.execute(ctx, stmt, queryTypeAlter, "")
}

// DropKeyspace renders and runs a DROP KEYSPACE specification.
func (a *Admin) DropKeyspace(ctx context.Context, spec *keyspace.DropKeyspaceSpecification) error {
	return a.execute(ctx, cqlgen.GenerateDropKeyspace(spec), queryTypeDrop, "")
}

// CreateTable renders and runs a CREATE TABLE specification.
func (a *Admin) CreateTable(ctx context.Context, spec *keyspace.CreateTableSpecification) error {
	stmt, err := cqlgen.GenerateCreateTable(spec)
	if err != nil {
		return err
	}
	return a.execute(ctx, stmt, queryTypeCreate, spec.Name().Unquoted())
}

// AlterTable renders and runs an ALTER TABLE specification.
func (a *Admin) AlterTable(ctx context.Context, spec *keyspace.AlterTableSpecification) error {
	stmt, err := cqlgen.GenerateAlterTable(spec)
	if err != nil {
		return err
	}
	return a.execute(ctx, stmt, queryTypeAlter, spec.Name().Unquoted())
}

// DropTable renders and runs a DROP TABLE specification.
func (a *Admin) DropTable(ctx context.Context, spec *keyspace.DropTableSpecification) error {
	return a.execute(ctx, cqlgen.GenerateDropTable(spec), queryTypeDrop, spec.Name().Unquoted())
}

// CreateIndex renders and runs a CREATE INDEX specification.
func (a *Admin) CreateIndex(ctx context.Context, spec *keyspace.CreateIndexSpecification) error {
	stmt, err := cqlgen.GenerateCreateIndex(spec)
	if err != nil {
		return err
	}
	return a.execute(ctx, stmt, queryTypeCreate, spec.TableName().Unquoted())
}

// DropIndex renders and runs a DROP INDEX specification.
func (a *Admin) DropIndex(ctx context.Context, spec *keyspace.DropIndexSpecification) error {
	return a.execute(ctx, cqlgen.GenerateDropIndex(spec), queryTypeDrop, "")
}

// CreateUserType renders and runs a CREATE TYPE specification.
func (a *Admin) CreateUserType(ctx context.Context, spec *keyspace.CreateUserTypeSpecification) error {
	stmt, err := cqlgen.GenerateCreateUserType(spec)
	if err != nil {
		return err
	}
	return a.execute(ctx, stmt, queryTypeCreate, "")
}

// AlterUserType renders and runs an ALTER TYPE specification.
func (a *Admin) AlterUserType(ctx context.Context, spec *keyspace.AlterUserTypeSpecification) error {
	stmt, err := cqlgen.GenerateAlterUserType(spec)
	if err != nil {
		return err
	}
	return a.execute(ctx, stmt, queryTypeAlter, "")
}

// DropUserType renders and runs a DROP TYPE specification.
func (a *Admin) DropUserType(ctx context.Context, spec *keyspace.DropUserTypeSpecification) error {
	return a.execute(ctx, cqlgen.GenerateDropUserType(spec), queryTypeDrop, "")
}

// ApplyContext creates the schema of a frozen mapping context: user defined
// types first, since tables may reference them, then tables.
func (a *Admin) ApplyContext(ctx context.Context, mctx *mapping.Context) error {
	typeSpecs, err := mctx.CreateUserTypeSpecifications()
	if err != nil {
		return err
	}
	for _, spec := range typeSpecs {
		if err := a.CreateUserType(ctx, spec.IfNotExists()); err != nil {
			return err
		}
	}
	tableSpecs, err := mctx.CreateTableSpecifications()
	if err != nil {
		return err
	}
	for _, spec := range tableSpecs {
		if err := a.CreateTable(ctx, spec.IfNotExists()); err != nil {
			return err
		}
	}
	return nil
}

// ListTables returns the table names of a keyspace from system_schema.
func (a *Admin) ListTables(ctx context.Context, keyspaceName string) ([]string, error) {
	iter := a.session.Query(
		"SELECT table_name FROM system_schema.tables WHERE keyspace_name = ?",
		keyspaceName,
	).WithContext(ctx).Iter()

	var tables []string
	var name string
	for iter.Scan(&name) {
		tables = append(tables, name)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to list tables of %s: %w", keyspaceName, err)
	}
	return tables, nil
}

// ListTypes returns the user defined type names of a keyspace from
// system_schema.
func (a *Admin) ListTypes(ctx context.Context, keyspaceName string) ([]string, error) {
	iter := a.session.Query(
		"SELECT type_name FROM system_schema.types WHERE keyspace_name = ?",
		keyspaceName,
	).WithContext(ctx).Iter()

	var names []string
	var name string
	for iter.Scan(&name) {
		names = append(names, name)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to list types of %s: %w", keyspaceName, err)
	}
	return names, nil
}

// ResolveUserType reads one user defined type's definition from
// system_schema and builds the full datatype value. It implements
// mapping.UserTypeResolver against live schema.
func (a *Admin) ResolveUserType(name string) (*datatype.UserDefined, error) {
	var fieldNames, fieldTypes []string
	err := a.session.Query(
		"SELECT field_names, field_types FROM system_schema.types WHERE keyspace_name = ? AND type_name = ?",
		a.keyspace, name,
	).Scan(&fieldNames, &fieldTypes)
	if err == gocql.ErrNotFound {
		return nil, fmt.Errorf("user defined type %s does not exist in keyspace %s", name, a.keyspace)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read type %s: %w", name, err)
	}
	resolve := func(n string) (datatype.DataType, error) {
		return a.ResolveUserType(n)
	}
	return buildUserType(a.keyspace, name, fieldNames, fieldTypes, resolve)
}

// buildUserType assembles a user defined type from the raw system_schema
// rows. Field type expressions may reference other user defined types, so
// nested names go through resolve.
func buildUserType(keyspaceName, name string, fieldNames, fieldTypes []string, resolve methods.UserTypeResolverFunc) (*datatype.UserDefined, error) {
	if len(fieldNames) != len(fieldTypes) {
		return nil, fmt.Errorf("type %s has %d field names but %d field types",
			name, len(fieldNames), len(fieldTypes))
	}
	types := make([]datatype.DataType, 0, len(fieldTypes))
	for i, expr := range fieldTypes {
		dt, _, err := methods.ParseCQLType(expr, resolve)
		if err != nil {
			return nil, fmt.Errorf("type %s field %s: %w", name, fieldNames[i], err)
		}
		types = append(types, dt)
	}
	return datatype.NewUserDefined(keyspaceName, name, fieldNames, types)
}

// TableMetadata returns gocql's view of one table.
func (a *Admin) TableMetadata(keyspaceName, tableName string) (*gocql.TableMetadata, error) {
	km, err := a.session.KeyspaceMetadata(keyspaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyspace metadata for %s: %w", keyspaceName, err)
	}
	tm, ok := km.Tables[tableName]
	if !ok {
		return nil, fmt.Errorf("table %s does not exist in keyspace %s", tableName, keyspaceName)
	}
	return tm, nil
}
