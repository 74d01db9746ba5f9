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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewOpenTelemetryDisabled(t *testing.T) {
	inst, shutdown, err := NewOpenTelemetry(context.Background(), &OTelConfig{OTELEnabled: false}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, inst)
	assert.Nil(t, shutdown)
}

func TestNewOpenTelemetryHealthCheckFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("collector down"))
	}))
	defer srv.Close()

	cfg := &OTelConfig{
		OTELEnabled:        true,
		HealthCheckEnabled: true,
		HealthCheckEp:      strings.TrimPrefix(srv.URL, "http://"),
	}
	_, _, err := NewOpenTelemetry(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not up and running")
}

func TestNewOpenTelemetryHealthCheckUnreachable(t *testing.T) {
	cfg := &OTelConfig{
		OTELEnabled:        true,
		HealthCheckEnabled: true,
		HealthCheckEp:      "127.0.0.1:1",
	}
	_, _, err := NewOpenTelemetry(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
