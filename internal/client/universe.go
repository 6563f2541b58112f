/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// ListUniverses fetches the universes of the customer
func (a *AuthAPIClient) ListUniverses(ctx context.Context) ([]model.Universe, error) {
	params, err := newRestAPIParameters(http.MethodGet, "universes",
		"Universe", "List", true, nil)
	if err != nil {
		return nil, err
	}
	universes := make([]model.Universe, 0)
	if err := a.restJSON(ctx, params, &universes); err != nil {
		return nil, err
	}
	return universes, nil
}

// GetUniverse fetches a single universe
func (a *AuthAPIClient) GetUniverse(ctx context.Context, uUUID string) (model.Universe, error) {
	var r model.Universe
	params, err := newRestAPIParameters(http.MethodGet, "universes/"+url.PathEscape(uUUID),
		"Universe", "Describe", true, nil)
	if err != nil {
		return r, err
	}
	err = a.restJSON(ctx, params, &r)
	return r, err
}

// RollingUpgrade submits a software or gflags rolling upgrade
func (a *AuthAPIClient) RollingUpgrade(
	ctx context.Context,
	uUUID string,
	payload model.RollingUpgradePayload,
) (model.TaskResponse, error) {
	return a.taskCall(ctx, http.MethodPost, "universes/"+url.PathEscape(uUUID)+"/upgrade",
		"Universe", "Upgrade "+payload.TaskType, payload)
}
