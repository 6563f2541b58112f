/*
 * Copyright (c) YugabyteDB, Inc.
 */

package actions

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// Customer action types
const (
	FetchCustomer        store.ActionType = "FETCH_CUSTOMER"
	FetchCustomerSuccess store.ActionType = "FETCH_CUSTOMER_SUCCESS"
	FetchCustomerFailure store.ActionType = "FETCH_CUSTOMER_FAILURE"
)

// FetchCustomerRequest resolves the session of the API token
func FetchCustomerRequest(api CustomerAPI) store.Action {
	return request(FetchCustomer, func(ctx context.Context) (interface{}, error) {
		return api.SessionInfo(ctx)
	})
}

// FetchCustomerSuccessAction carries the session
func FetchCustomerSuccessAction(session model.SessionInfo) store.Action {
	return success(FetchCustomerSuccess, session)
}

// FetchCustomerFailureAction carries the session error
func FetchCustomerFailureAction(err error) store.Action {
	return failure(FetchCustomerFailure, err)
}
