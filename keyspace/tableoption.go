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

// TableOption is one of the known CREATE/ALTER TABLE WITH options. Lookup is
// by CQL option name, case-insensitively, not by Go identifier.
type TableOption struct {
	DefaultOption
}

var (
	TableOptionComment                 = TableOption{NewOption("comment", OptionKindString, true, true, true)}
	TableOptionCompactStorage          = TableOption{NewOption("COMPACT STORAGE", OptionKindVoid, false, false, false)}
	TableOptionBloomFilterFPChance     = TableOption{NewOption("bloom_filter_fp_chance", OptionKindDouble, true, false, false)}
	TableOptionCaching                 = TableOption{NewOption("caching", OptionKindMap, true, false, false)}
	TableOptionCompaction              = TableOption{NewOption("compaction", OptionKindMap, true, false, false)}
	TableOptionCompression             = TableOption{NewOption("compression", OptionKindMap, true, false, false)}
	TableOptionDCLocalReadRepairChance = TableOption{NewOption("dclocal_read_repair_chance", OptionKindDouble, true, false, false)}
	TableOptionDefaultTimeToLive       = TableOption{NewOption("default_time_to_live", OptionKindLong, true, false, false)}
	TableOptionGCGraceSeconds          = TableOption{NewOption("gc_grace_seconds", OptionKindLong, true, false, false)}
	TableOptionMemtableFlushPeriod     = TableOption{NewOption("memtable_flush_period_in_ms", OptionKindLong, true, false, false)}
	TableOptionReadRepairChance        = TableOption{NewOption("read_repair_chance", OptionKindDouble, true, false, false)}
	TableOptionSpeculativeRetry        = TableOption{NewOption("speculative_retry", OptionKindString, true, true, true)}
)

// tableOptions lists every enumerated option, in the order they are declared.
var tableOptions = []TableOption{
	TableOptionComment,
	TableOptionCompactStorage,
	TableOptionBloomFilterFPChance,
	TableOptionCaching,
	TableOptionCompaction,
	TableOptionCompression,
	TableOptionDCLocalReadRepairChance,
	TableOptionDefaultTimeToLive,
	TableOptionGCGraceSeconds,
	TableOptionMemtableFlushPeriod,
	TableOptionReadRepairChance,
	TableOptionSpeculativeRetry,
}

// TableOptionValueOfIgnoreCase finds the table option with the given CQL
// name, ignoring case. Unknown names are an error.
func TableOptionValueOfIgnoreCase(name string) (TableOption, error) {
	if opt := FindTableOption(name); opt != nil {
		return *opt, nil
	}
	return TableOption{}, fmt.Errorf("unknown table option: %q", name)
}

// FindTableOption is TableOptionValueOfIgnoreCase returning nil for unknown
// names instead of an error.
func FindTableOption(name string) *TableOption {
	for i := range tableOptions {
		if strings.EqualFold(tableOptions[i].Name(), name) {
			return &tableOptions[i]
		}
	}
	return nil
}

// CachingOption names the structured sub-options of the caching map.
type CachingOption struct {
	DefaultOption
}

var (
	CachingOptionKeys             = CachingOption{NewOption("keys", OptionKindString, true, false, true)}
	CachingOptionRowsPerPartition = CachingOption{NewOption("rows_per_partition", OptionKindString, true, false, true)}
)

// CompactionOption names the structured sub-options of the compaction map.
type CompactionOption struct {
	DefaultOption
}

var (
	CompactionOptionClass                       = CompactionOption{NewOption("class", OptionKindString, true, false, true)}
	CompactionOptionEnabled                     = CompactionOption{NewOption("enabled", OptionKindBoolean, true, false, true)}
	CompactionOptionTombstoneCompactionInterval = CompactionOption{NewOption("tombstone_compaction_interval", OptionKindLong, true, false, false)}
	CompactionOptionTombstoneThreshold          = CompactionOption{NewOption("tombstone_threshold", OptionKindDouble, true, false, false)}
	CompactionOptionMinThreshold                = CompactionOption{NewOption("min_threshold", OptionKindLong, true, false, false)}
	CompactionOptionMaxThreshold                = CompactionOption{NewOption("max_threshold", OptionKindLong, true, false, false)}
	CompactionOptionMinSSTableSize              = CompactionOption{NewOption("min_sstable_size", OptionKindLong, true, false, false)}
	CompactionOptionSSTableSizeInMB             = CompactionOption{NewOption("sstable_size_in_mb", OptionKindLong, true, false, false)}
)

// CompressionOption names the structured sub-options of the compression map.
type CompressionOption struct {
	DefaultOption
}

var (
	CompressionOptionSSTableCompression = CompressionOption{NewOption("sstable_compression", OptionKindString, true, false, true)}
	CompressionOptionChunkLengthKB      = CompressionOption{NewOption("chunk_length_kb", OptionKindLong, true, false, false)}
	CompressionOptionCRCCheckChance     = CompressionOption{NewOption("crc_check_chance", OptionKindDouble, true, false, false)}
)
