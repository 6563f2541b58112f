/*
 * Copyright (c) YugabyteDB, Inc.
 */

package actions

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// Cloud action types
const (
	GetProviderList        store.ActionType = "GET_PROVIDER_LIST"
	GetProviderListSuccess store.ActionType = "GET_PROVIDER_LIST_SUCCESS"
	GetProviderListFailure store.ActionType = "GET_PROVIDER_LIST_FAILURE"
	GetRegionList          store.ActionType = "GET_REGION_LIST"
	GetRegionListSuccess   store.ActionType = "GET_REGION_LIST_SUCCESS"
	GetRegionListFailure   store.ActionType = "GET_REGION_LIST_FAILURE"
	DeleteProvider         store.ActionType = "DELETE_PROVIDER"
	DeleteProviderSuccess  store.ActionType = "DELETE_PROVIDER_SUCCESS"
	DeleteProviderFailure  store.ActionType = "DELETE_PROVIDER_FAILURE"
	FetchCloudMetadata     store.ActionType = "FETCH_CLOUD_METADATA"
)

// GetProviderListRequest lists the cloud providers of the customer
func GetProviderListRequest(api CloudAPI) store.Action {
	return request(GetProviderList, func(ctx context.Context) (interface{}, error) {
		return api.ListProviders(ctx)
	})
}

// GetProviderListSuccessAction carries the providers
func GetProviderListSuccessAction(providers []model.Provider) store.Action {
	return success(GetProviderListSuccess, providers)
}

// GetProviderListFailureAction carries the provider listing error
func GetProviderListFailureAction(err error) store.Action {
	return failure(GetProviderListFailure, err)
}

// GetRegionListRequest lists the regions supported by the customer's providers
func GetRegionListRequest(api CloudAPI) store.Action {
	return request(GetRegionList, func(ctx context.Context) (interface{}, error) {
		return api.ListRegions(ctx)
	})
}

// GetRegionListSuccessAction carries the regions
func GetRegionListSuccessAction(regions []model.Region) store.Action {
	return success(GetRegionListSuccess, regions)
}

// GetRegionListFailureAction carries the region listing error
func GetRegionListFailureAction(err error) store.Action {
	return failure(GetRegionListFailure, err)
}

// DeleteProviderRequest deletes a provider configuration
func DeleteProviderRequest(api CloudAPI, pUUID string) store.Action {
	return request(DeleteProvider, func(ctx context.Context) (interface{}, error) {
		return api.DeleteProvider(ctx, pUUID)
	})
}

// DeleteProviderSuccessAction carries the delete response
func DeleteProviderSuccessAction(data interface{}) store.Action {
	return success(DeleteProviderSuccess, data)
}

// DeleteProviderFailureAction carries the delete failure
func DeleteProviderFailureAction(payload interface{}) store.Action {
	return store.Action{Type: DeleteProviderFailure, Payload: payload, Error: true}
}

// FetchCloudMetadataAction marks the start of a provider and region refresh
func FetchCloudMetadataAction() store.Action {
	return store.Action{Type: FetchCloudMetadata}
}
