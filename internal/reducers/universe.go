/*
 * Copyright (c) YugabyteDB, Inc.
 */

package reducers

import (
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// UniverseState holds the universes, the open modal and the last upgrade
type UniverseState struct {
	UniverseList     store.AsyncData[[]model.Universe]   `json:"universeList"`
	CurrentUniverse  store.AsyncData[model.Universe]     `json:"currentUniverse"`
	VisibleModal     string                              `json:"visibleModal,omitempty"`
	Error            string                              `json:"error,omitempty"`
	RollingUpgrade   store.AsyncData[model.TaskResponse] `json:"rollingUpgrade"`
	SoftwareVersions store.AsyncData[[]string]           `json:"softwareVersions"`
}

// InitialUniverseState with nothing fetched and no modal open
func InitialUniverseState() UniverseState {
	return UniverseState{
		UniverseList:     store.Init[[]model.Universe](),
		CurrentUniverse:  store.Init[model.Universe](),
		RollingUpgrade:   store.Init[model.TaskResponse](),
		SoftwareVersions: store.Init[[]string](),
	}
}

// Universe reduces universe actions
func Universe(state UniverseState, action store.Action) UniverseState {
	switch action.Type {
	case actions.ResetUniverseList:
		state.UniverseList = store.Init[[]model.Universe]()
		return state
	case actions.ShowUniverseModal:
		state.VisibleModal, _ = store.PayloadAs[string](action)
		return state
	case actions.CloseUniverseDialog:
		state.VisibleModal = ""
		return state
	case actions.ResetRollingUpgrade:
		state.RollingUpgrade = store.Init[model.TaskResponse]()
		state.Error = ""
		return state
	}

	if v, ok := setAsyncList(state.UniverseList, action, actions.FetchUniverseList,
		actions.FetchUniverseListSuccess, actions.FetchUniverseListFailure); ok {
		state.UniverseList = v
		return state
	}
	if v, ok := setAsync(state.CurrentUniverse, action, actions.FetchUniverseInfo,
		actions.FetchUniverseInfoSuccess, actions.FetchUniverseInfoFailure); ok {
		state.CurrentUniverse = v
		return state
	}
	if v, ok := setAsyncList(state.SoftwareVersions, action, actions.FetchSoftwareVersions,
		actions.FetchSoftwareVersionsSuccess, actions.FetchSoftwareVersionsFailure); ok {
		state.SoftwareVersions = v
		return state
	}
	if v, ok := setAsync(state.RollingUpgrade, action, actions.RollingUpgrade,
		actions.RollingUpgradeSuccess, actions.RollingUpgradeFailure); ok {
		state.RollingUpgrade = v
		switch action.Type {
		case actions.RollingUpgrade, actions.RollingUpgradeSuccess:
			state.Error = ""
		case actions.RollingUpgradeFailure:
			state.Error = v.Error
		}
	}
	return state
}
