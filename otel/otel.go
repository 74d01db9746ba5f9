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

package otelgo

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Attributes carries the span attributes used by schema operations.
type Attributes struct {
	Keyspace  string
	Table     string
	QueryType string
}

var (
	attributeKeyDatabase  = attribute.Key("database")
	attributeKeyKeyspace  = attribute.Key("keyspace")
	attributeKeyTable     = attribute.Key("table")
	attributeKeyQueryType = attribute.Key("query_type")
)

// OTelConfig holds configuration for OpenTelemetry.
type OTelConfig struct {
	TracerEndpoint     string
	ServiceName        string
	TraceSampleRatio   float64
	OTELEnabled        bool
	Database           string
	HealthCheckEnabled bool
	HealthCheckEp      string
	ServiceVersion     string
}

// OpenTelemetry provides methods to set up and use tracing.
type OpenTelemetry struct {
	Config *OTelConfig
	tracer trace.Tracer
	logger *zap.Logger
}

// NewOpenTelemetry() initializes OpenTelemetry tracing components.
// It sets up the tracer provider, configures health checks (if enabled),
// and returns an OpenTelemetry instance along with a shutdown function.
//
// Parameters:
//   - ctx: Context for managing OpenTelemetry lifecycle.
//   - config: Configuration struct for OpenTelemetry settings.
//   - logger: Logger instance for capturing OpenTelemetry logs.
//
// Returns:
//   - *OpenTelemetry: A configured instance of OpenTelemetry.
//   - func(context.Context) error: A shutdown function to clean up resources.
//   - error: An error if initialization fails.
func NewOpenTelemetry(ctx context.Context, config *OTelConfig, logger *zap.Logger) (*OpenTelemetry, func(context.Context) error, error) {
	otelInst := &OpenTelemetry{Config: config, logger: logger}
	if !config.OTELEnabled {
		return otelInst, nil, nil
	}

	if config.HealthCheckEnabled {
		resp, err := http.Get("http://" + config.HealthCheckEp)
		if err != nil {
			return nil, nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != 200 {
			return nil, nil, errors.New("OTEL collector service is not up and running")
		}
		logger.Info("OTEL health check complete")
	}
	otelResource := buildOtelResource(ctx, config)

	tracerProvider, err := InitTracerProvider(ctx, config, otelResource)
	if err != nil {
		logger.Error("error while initializing the tracer provider", zap.Error(err))
		return nil, nil, err
	}
	otel.SetTracerProvider(tracerProvider)
	otelInst.tracer = tracerProvider.Tracer(config.ServiceName)
	return otelInst, tracerProvider.Shutdown, nil
}

// InitTracerProvider() configures and initializes an OpenTelemetry TracerProvider.
// It sets up a gRPC-based OTLP trace exporter and applies the sampling strategy.
//
// Parameters:
//   - ctx: Context for managing initialization.
//   - config: OpenTelemetry configuration settings.
//   - resource: OpenTelemetry resource with metadata.
//
// Returns:
//   - *sdktrace.TracerProvider: A configured TracerProvider instance.
//   - error: An error if initialization fails.
func InitTracerProvider(ctx context.Context, config *OTelConfig, resource *resource.Resource) (*sdktrace.TracerProvider, error) {
	sampler := sdktrace.TraceIDRatioBased(config.TraceSampleRatio)
	if config.TracerEndpoint == "" {
		return nil, errors.New("tracer endpoint cannot be empty")
	}
	// Basic validation for incorrect endpoint format
	if !isValidEndpoint(config.TracerEndpoint) {
		return nil, errors.New("invalid tracer endpoint format")
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(config.TracerEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(resource),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler)),
	)
	return tp, nil
}

// buildOtelResource() creates an OpenTelemetry resource containing metadata about the service.
// It falls back to manually provided attributes if detection fails.
//
// Parameters:
//   - ctx: Context for managing initialization.
//   - config: OpenTelemetry configuration settings.
//
// Returns:
//   - *resource.Resource: A configured OpenTelemetry resource containing metadata.
func buildOtelResource(ctx context.Context, config *OTelConfig) *resource.Resource {
	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceInstanceIDKey.String(uuid.New().String()),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
		),
	)

	if err != nil {
		// Default resource
		return resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceInstanceIDKey.String(uuid.New().String()),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
		)
	}

	return res
}

// StartSpan() creates and starts a new trace span in OpenTelemetry.
// If OpenTelemetry is disabled, it returns the original context.
//
// Parameters:
//   - ctx: The current execution context.
//   - name: The name of the span to be created.
//   - attrs: Attributes to associate with the span.
//
// Returns:
//   - context.Context: The updated context containing the new span.
//   - trace.Span: The created span instance.
func (o *OpenTelemetry) StartSpan(ctx context.Context, name string, attrs Attributes) (context.Context, trace.Span) {
	if !o.Config.OTELEnabled {
		return ctx, nil
	}

	attr := []attribute.KeyValue{
		attributeKeyDatabase.String(o.Config.Database),
		attributeKeyKeyspace.String(attrs.Keyspace),
		attributeKeyQueryType.String(attrs.QueryType),
	}
	if attrs.Table != "" {
		attr = append(attr, attributeKeyTable.String(attrs.Table))
	}
	return o.tracer.Start(ctx, name, trace.WithAttributes(attr...))
}

// RecordError() logs an error inside an active trace span in OpenTelemetry.
// It updates the span's status to indicate an error has occurred.
//
// Parameters:
//   - span: The active trace span where the error should be recorded.
//   - err: The error to be recorded in the span. If nil, the span is marked as OK.
func (o *OpenTelemetry) RecordError(span trace.Span, err error) {
	if !o.Config.OTELEnabled {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// EndSpan() finalizes the current span in OpenTelemetry.
// If OpenTelemetry is disabled, this function does nothing.
//
// Parameters:
//   - span: The span to be ended.
func (o *OpenTelemetry) EndSpan(span trace.Span) {
	if !o.Config.OTELEnabled {
		return
	}

	span.End()
}

// AddAnnotation() adds an event annotation to the active span in the given context.
//
// Parameters:
//   - ctx: The execution context containing the span.
//   - event: The event name to be added as an annotation.
func AddAnnotation(ctx context.Context, event string) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(event)
}

// AddAnnotationWithAttr() adds an event annotation with attributes to the active span.
//
// Parameters:
//   - ctx: The execution context containing the span.
//   - event: The event name to be added as an annotation.
//   - attr: A list of attributes to attach to the annotation.
func AddAnnotationWithAttr(ctx context.Context, event string, attr []attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(event, trace.WithAttributes(attr...))
}

// isValidEndpoint checks if the given endpoint is a valid host:port format
func isValidEndpoint(endpoint string) bool {
	if strings.Contains(endpoint, "://") {
		parsedURL, err := url.Parse(endpoint)
		if err != nil {
			return false
		}
		// Check if the original endpoint string had an empty host.
		if strings.HasPrefix(endpoint, parsedURL.Scheme+"://:") {
			return false
		}
		if parsedURL.Host == "" || parsedURL.Port() == "" {
			return false
		}
		return true
	}

	parts := strings.Split(endpoint, ":")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}
