/*
 * Copyright (c) YugabyteDB, Inc.
 */

package model

// CloudInfo of a node
type CloudInfo struct {
	PrivateIP string `json:"private_ip,omitempty"`
	Region    string `json:"region,omitempty"`
	AZ        string `json:"az,omitempty"`
	Cloud     string `json:"cloud,omitempty"`
}

// Node of a universe
type Node struct {
	NodeName  string    `json:"nodeName"`
	IsMaster  bool      `json:"isMaster"`
	IsTserver bool      `json:"isTserver"`
	State     string    `json:"state,omitempty"`
	CloudInfo CloudInfo `json:"cloudInfo"`
}

// UserIntent is the desired configuration of a universe
type UserIntent struct {
	UniverseName      string            `json:"universeName,omitempty"`
	NumNodes          int32             `json:"numNodes"`
	ReplicationFactor int32             `json:"replicationFactor"`
	YBSoftwareVersion string            `json:"ybSoftwareVersion,omitempty"`
	Provider          string            `json:"provider,omitempty"`
	ProviderType      string            `json:"providerType,omitempty"`
	RegionList        []string          `json:"regionList,omitempty"`
	InstanceType      string            `json:"instanceType,omitempty"`
	MasterGFlags      map[string]string `json:"masterGFlags,omitempty"`
	TserverGFlags     map[string]string `json:"tserverGFlags,omitempty"`
}

// UniverseDetails holds the intent and the nodes of a universe
type UniverseDetails struct {
	UserIntent       UserIntent `json:"userIntent"`
	NodeDetailsSet   []Node     `json:"nodeDetailsSet,omitempty"`
	UpdateInProgress bool       `json:"updateInProgress,omitempty"`
}

// Universe is a managed database cluster
type Universe struct {
	UniverseUUID    string          `json:"universeUUID"`
	Name            string          `json:"name"`
	CreationDate    string          `json:"creationDate,omitempty"`
	PricePerHour    float64         `json:"pricePerHour"`
	UniverseDetails UniverseDetails `json:"universeDetails"`
}

// GFlag is a single runtime flag of a master or tserver process
type GFlag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RollingUpgradePayload is the request body of a rolling upgrade
type RollingUpgradePayload struct {
	TaskType                       string     `json:"taskType"`
	YBSoftwareVersion              string     `json:"ybSoftwareVersion,omitempty"`
	UniverseUUID                   string     `json:"universeUUID"`
	UserIntent                     UserIntent `json:"userIntent"`
	MasterGFlags                   []GFlag    `json:"masterGFlags"`
	TserverGFlags                  []GFlag    `json:"tserverGFlags"`
	SleepAfterMasterRestartMillis  int64      `json:"sleepAfterMasterRestartMillis"`
	SleepAfterTServerRestartMillis int64      `json:"sleepAfterTServerRestartMillis"`
}
