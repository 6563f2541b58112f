/*
 * Copyright (c) YugabyteDB, Inc.
 */

package reducers

import (
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// CustomerState holds the session of the logged in customer
type CustomerState struct {
	CustomerUUID    string                             `json:"customerUUID,omitempty"`
	CurrentCustomer store.AsyncData[model.SessionInfo] `json:"currentCustomer"`
}

// InitialCustomerState before any session is resolved
func InitialCustomerState() CustomerState {
	return CustomerState{CurrentCustomer: store.Init[model.SessionInfo]()}
}

// Customer reduces customer actions
func Customer(state CustomerState, action store.Action) CustomerState {
	current, ok := setAsync(state.CurrentCustomer, action,
		actions.FetchCustomer, actions.FetchCustomerSuccess, actions.FetchCustomerFailure)
	if !ok {
		return state
	}
	state.CurrentCustomer = current
	if action.Type == actions.FetchCustomerSuccess {
		state.CustomerUUID = current.Data.CustomerUUID
	}
	return state
}
