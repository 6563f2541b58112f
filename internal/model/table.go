/*
 * Copyright (c) YugabyteDB, Inc.
 */

package model

// Table is an entry of the universe table listing
type Table struct {
	TableUUID    string  `json:"tableUUID"`
	TableName    string  `json:"tableName"`
	TableType    string  `json:"tableType,omitempty"`
	KeySpace     string  `json:"keySpace,omitempty"`
	SizeBytes    float64 `json:"sizeBytes,omitempty"`
	IsIndexTable bool    `json:"isIndexTable,omitempty"`
}

// ColumnDetails describes a single column of a table
type ColumnDetails struct {
	ColumnOrder     int32  `json:"columnOrder"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	KeyType         string `json:"keyType,omitempty"`
	ValueType       string `json:"valueType,omitempty"`
	IsPartitionKey  bool   `json:"isPartitionKey"`
	IsClusteringKey bool   `json:"isClusteringKey"`
	SortOrder       string `json:"sortOrder,omitempty"`
}

// TableDetails holds the schema of a table
type TableDetails struct {
	TableName    string          `json:"tableName"`
	Keyspace     string          `json:"keyspace"`
	TTLInSeconds int64           `json:"ttlInSeconds,omitempty"`
	Columns      []ColumnDetails `json:"columns"`
}

// TableDetail is the response of the table describe call
type TableDetail struct {
	TableUUID    string       `json:"tableUUID"`
	TableType    string       `json:"tableType"`
	TableDetails TableDetails `json:"tableDetails"`
}

// TableDefinition is the request body used to create a table
type TableDefinition struct {
	TableName    string       `json:"tableName"`
	TableType    string       `json:"tableType"`
	TableDetails TableDetails `json:"tableDetails"`
}

// ColumnTypes lists the column data types supported by the platform
type ColumnTypes struct {
	Primitives  []string `json:"primitives"`
	Collections []string `json:"collections"`
}

// BulkImportParams is the request body of a bulk import
type BulkImportParams struct {
	S3Bucket      string `json:"s3Bucket"`
	Keyspace      string `json:"keyspace,omitempty"`
	TableName     string `json:"tableName,omitempty"`
	InstanceCount int32  `json:"instanceCount,omitempty"`
}
