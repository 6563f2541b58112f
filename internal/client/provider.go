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

// ListProviders fetches the providers of the customer
func (a *AuthAPIClient) ListProviders(ctx context.Context) ([]model.Provider, error) {
	params, err := newRestAPIParameters(http.MethodGet, "providers",
		"Provider", "List", true, nil)
	if err != nil {
		return nil, err
	}
	providers := make([]model.Provider, 0)
	if err := a.restJSON(ctx, params, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// ListRegions fetches the regions of every provider of the customer
func (a *AuthAPIClient) ListRegions(ctx context.Context) ([]model.Region, error) {
	params, err := newRestAPIParameters(http.MethodGet, "regions",
		"Region", "List", true, nil)
	if err != nil {
		return nil, err
	}
	regions := make([]model.Region, 0)
	if err := a.restJSON(ctx, params, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// DeleteProvider deletes a provider
func (a *AuthAPIClient) DeleteProvider(
	ctx context.Context,
	pUUID string,
) (model.TaskResponse, error) {
	return a.taskCall(ctx, http.MethodDelete, "providers/"+url.PathEscape(pUUID),
		"Provider", "Delete", nil)
}
