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

package admin

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ollionorg/cassandra-schema-mapper/utilities"
)

// Config is the admin client configuration, typically loaded from a yaml
// file.
type Config struct {
	ContactPoints  []string `yaml:"contactPoints"`
	Port           int      `yaml:"port"`
	Keyspace       string   `yaml:"keyspace"`
	Username       string   `yaml:"username"`
	Password       string   `yaml:"password"`
	TimeoutSeconds int      `yaml:"timeoutSeconds"`
	NumConns       int      `yaml:"numConns"`

	LogLevel     string                  `yaml:"logLevel"`
	LoggerConfig *utilities.LoggerConfig `yaml:"loggerConfig"`
	Otel         *OtelConfig             `yaml:"otel"`
}

// OtelConfig is the tracing section of the admin configuration.
type OtelConfig struct {
	Enabled            bool    `yaml:"enabled"`
	ServiceName        string  `yaml:"serviceName"`
	TracerEndpoint     string  `yaml:"tracerEndpoint"`
	TraceSampleRatio   float64 `yaml:"traceSampleRatio"`
	HealthCheckEnabled bool    `yaml:"healthCheckEnabled"`
	HealthCheckEp      string  `yaml:"healthCheckEp"`
	ServiceVersion     string  `yaml:"serviceVersion"`
}

// LoadConfig reads and validates a yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required fields and fills in defaults.
func (c *Config) Validate() error {
	if len(c.ContactPoints) == 0 {
		return fmt.Errorf("at least one contact point is required")
	}
	if c.Keyspace == "" {
		return fmt.Errorf("keyspace is required")
	}
	if c.Port == 0 {
		c.Port = 9042
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.NumConns == 0 {
		c.NumConns = 2
	}
	if c.LogLevel == "" {
		c.LogLevel = utilities.Info
	}
	return nil
}

// Timeout returns the connection timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
