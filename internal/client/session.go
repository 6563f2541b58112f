/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// SessionInfo fetches the session of the API token
func (a *AuthAPIClient) SessionInfo(ctx context.Context) (model.SessionInfo, error) {
	var r model.SessionInfo
	params, err := newRestAPIParameters(http.MethodGet, "session_info",
		"Session", "Get Session Info", false, nil)
	if err != nil {
		return r, err
	}
	err = a.restJSON(ctx, params, &r)
	return r, err
}

// GetCustomerUUID resolves the customer UUID unless it was configured explicitly
func (a *AuthAPIClient) GetCustomerUUID(ctx context.Context) error {
	if a.CustomerUUID != "" {
		return nil
	}
	r, err := a.SessionInfo(ctx)
	if err != nil {
		return err
	}
	if r.CustomerUUID == "" {
		return errors.New("could not retrieve Customer UUID")
	}
	a.CustomerUUID = r.CustomerUUID
	return nil
}
