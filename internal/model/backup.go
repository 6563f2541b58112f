/*
 * Copyright (c) YugabyteDB, Inc.
 */

package model

// Backup action types
const (
	// CreateBackupAction is used for create_backup requests
	CreateBackupAction = "CREATE"
	// RestoreBackupAction is used for restore requests
	RestoreBackupAction = "RESTORE"
)

// BackupParams is the request body of a table backup
type BackupParams struct {
	Keyspace            string `json:"keyspace"`
	TableName           string `json:"tableName"`
	TableUUID           string `json:"tableUUID,omitempty"`
	StorageConfigUUID   string `json:"storageConfigUUID"`
	ActionType          string `json:"actionType"`
	SchedulingFrequency int64  `json:"schedulingFrequency,omitempty"`
	CronExpression      string `json:"cronExpression,omitempty"`
}

// RestoreParams is the request body of a backup restore
type RestoreParams struct {
	Keyspace          string `json:"keyspace"`
	TableName         string `json:"tableName"`
	StorageConfigUUID string `json:"storageConfigUUID"`
	StorageLocation   string `json:"storageLocation,omitempty"`
	ActionType        string `json:"actionType"`
	UniverseUUID      string `json:"universeUUID,omitempty"`
}

// BackupInfo holds what was backed up and where
type BackupInfo struct {
	Keyspace          string `json:"keyspace,omitempty"`
	TableName         string `json:"tableName,omitempty"`
	TableUUID         string `json:"tableUUID,omitempty"`
	StorageConfigUUID string `json:"storageConfigUUID,omitempty"`
	StorageLocation   string `json:"storageLocation,omitempty"`
	UniverseUUID      string `json:"universeUUID,omitempty"`
}

// Backup of a table
type Backup struct {
	BackupUUID string     `json:"backupUUID"`
	State      string     `json:"state"`
	CreateTime int64      `json:"createTime,omitempty"`
	BackupInfo BackupInfo `json:"backupInfo"`
}
