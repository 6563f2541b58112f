/*
 * Copyright (c) YugabyteDB, Inc.
 */

package actions

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// Universe action types
const (
	FetchUniverseList            store.ActionType = "FETCH_UNIVERSE_LIST"
	FetchUniverseListSuccess     store.ActionType = "FETCH_UNIVERSE_LIST_SUCCESS"
	FetchUniverseListFailure     store.ActionType = "FETCH_UNIVERSE_LIST_FAILURE"
	ResetUniverseList            store.ActionType = "RESET_UNIVERSE_LIST"
	FetchUniverseInfo            store.ActionType = "FETCH_UNIVERSE_INFO"
	FetchUniverseInfoSuccess     store.ActionType = "FETCH_UNIVERSE_INFO_SUCCESS"
	FetchUniverseInfoFailure     store.ActionType = "FETCH_UNIVERSE_INFO_FAILURE"
	ShowUniverseModal            store.ActionType = "SHOW_UNIVERSE_MODAL"
	CloseUniverseDialog          store.ActionType = "CLOSE_UNIVERSE_DIALOG"
	RollingUpgrade               store.ActionType = "ROLLING_UPGRADE"
	RollingUpgradeSuccess        store.ActionType = "ROLLING_UPGRADE_SUCCESS"
	RollingUpgradeFailure        store.ActionType = "ROLLING_UPGRADE_FAILURE"
	ResetRollingUpgrade          store.ActionType = "RESET_ROLLING_UPGRADE"
	FetchSoftwareVersions        store.ActionType = "FETCH_SOFTWARE_VERSIONS"
	FetchSoftwareVersionsSuccess store.ActionType = "FETCH_SOFTWARE_VERSIONS_SUCCESS"
	FetchSoftwareVersionsFailure store.ActionType = "FETCH_SOFTWARE_VERSIONS_FAILURE"
)

// FetchUniverseListRequest lists the universes of the customer
func FetchUniverseListRequest(api UniverseAPI) store.Action {
	return request(FetchUniverseList, func(ctx context.Context) (interface{}, error) {
		return api.ListUniverses(ctx)
	})
}

// FetchUniverseListSuccessAction carries the universes
func FetchUniverseListSuccessAction(universes []model.Universe) store.Action {
	return success(FetchUniverseListSuccess, universes)
}

// FetchUniverseListFailureAction carries the universe listing error
func FetchUniverseListFailureAction(err error) store.Action {
	return failure(FetchUniverseListFailure, err)
}

// ResetUniverseListAction clears the universe list
func ResetUniverseListAction() store.Action {
	return store.Action{Type: ResetUniverseList}
}

// FetchUniverseInfoRequest fetches a single universe
func FetchUniverseInfoRequest(api UniverseAPI, uUUID string) store.Action {
	return request(FetchUniverseInfo, func(ctx context.Context) (interface{}, error) {
		return api.GetUniverse(ctx, uUUID)
	})
}

// FetchUniverseInfoSuccessAction carries the universe
func FetchUniverseInfoSuccessAction(universe model.Universe) store.Action {
	return success(FetchUniverseInfoSuccess, universe)
}

// FetchUniverseInfoFailureAction carries the universe fetch error
func FetchUniverseInfoFailureAction(err error) store.Action {
	return failure(FetchUniverseInfoFailure, err)
}

// ShowUniverseModalAction opens the named modal
func ShowUniverseModalAction(modal string) store.Action {
	return success(ShowUniverseModal, modal)
}

// CloseUniverseDialogAction closes any open modal
func CloseUniverseDialogAction() store.Action {
	return store.Action{Type: CloseUniverseDialog}
}

// RollingUpgradeRequest submits a rolling upgrade of the universe
func RollingUpgradeRequest(
	api UniverseAPI,
	uUUID string,
	payload model.RollingUpgradePayload,
) store.Action {
	return request(RollingUpgrade, func(ctx context.Context) (interface{}, error) {
		return api.RollingUpgrade(ctx, uUUID, payload)
	})
}

// RollingUpgradeSuccessAction carries the upgrade task
func RollingUpgradeSuccessAction(r model.TaskResponse) store.Action {
	return success(RollingUpgradeSuccess, r)
}

// RollingUpgradeFailureAction carries the upgrade error
func RollingUpgradeFailureAction(err error) store.Action {
	return failure(RollingUpgradeFailure, err)
}

// ResetRollingUpgradeAction clears the upgrade outcome
func ResetRollingUpgradeAction() store.Action {
	return store.Action{Type: ResetRollingUpgrade}
}

// FetchSoftwareVersionsRequest lists the database releases available for upgrades
func FetchSoftwareVersionsRequest(api UniverseAPI) store.Action {
	return request(FetchSoftwareVersions, func(ctx context.Context) (interface{}, error) {
		return api.SoftwareVersions(ctx)
	})
}

// FetchSoftwareVersionsSuccessAction carries the releases
func FetchSoftwareVersionsSuccessAction(versions []string) store.Action {
	return success(FetchSoftwareVersionsSuccess, versions)
}

// FetchSoftwareVersionsFailureAction carries the release listing error
func FetchSoftwareVersionsFailureAction(err error) store.Action {
	return failure(FetchSoftwareVersionsFailure, err)
}
