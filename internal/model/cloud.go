/*
 * Copyright (c) YugabyteDB, Inc.
 */

package model

// Provider is a cloud provider configuration
type Provider struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// Region of a provider
type Region struct {
	UUID         string `json:"uuid"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProviderUUID string `json:"providerUUID,omitempty"`
}
