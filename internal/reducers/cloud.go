/*
 * Copyright (c) YugabyteDB, Inc.
 */

package reducers

import (
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// CloudState holds the cloud provider configuration
type CloudState struct {
	Providers           store.AsyncData[[]model.Provider]   `json:"providers"`
	SupportedRegionList store.AsyncData[[]model.Region]     `json:"supportedRegionList"`
	DeleteProvider      store.AsyncData[model.TaskResponse] `json:"deleteProvider"`
}

// InitialCloudState with nothing fetched
func InitialCloudState() CloudState {
	return CloudState{
		Providers:           store.Init[[]model.Provider](),
		SupportedRegionList: store.Init[[]model.Region](),
		DeleteProvider:      store.Init[model.TaskResponse](),
	}
}

// Cloud reduces provider and region actions
func Cloud(state CloudState, action store.Action) CloudState {
	if action.Type == actions.FetchCloudMetadata {
		state.Providers = store.Loading(state.Providers)
		state.SupportedRegionList = store.Loading(state.SupportedRegionList)
		return state
	}
	if v, ok := setAsyncList(state.Providers, action, actions.GetProviderList,
		actions.GetProviderListSuccess, actions.GetProviderListFailure); ok {
		state.Providers = v
		return state
	}
	if v, ok := setAsyncList(state.SupportedRegionList, action, actions.GetRegionList,
		actions.GetRegionListSuccess, actions.GetRegionListFailure); ok {
		state.SupportedRegionList = v
		return state
	}
	if v, ok := setAsync(state.DeleteProvider, action, actions.DeleteProvider,
		actions.DeleteProviderSuccess, actions.DeleteProviderFailure); ok {
		state.DeleteProvider = v
	}
	return state
}
