/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/reducers"
)

// Customer is the container of the customer session
type Customer struct {
	store *Store
	api   actions.CustomerAPI
}

// NewCustomer creates the customer container
func NewCustomer(s *Store, api actions.CustomerAPI) *Customer {
	return &Customer{store: s, api: api}
}

// Props maps state to the customer props
func (c *Customer) Props() reducers.CustomerState {
	return c.store.GetState().Customer
}

// FetchCustomer resolves the session of the API token
func (c *Customer) FetchCustomer(ctx context.Context) (model.SessionInfo, error) {
	return fetch(ctx, c.store, actions.FetchCustomerRequest(c.api),
		actions.FetchCustomerSuccessAction, actions.FetchCustomerFailureAction)
}
