/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// CloudProps are rendered by the provider configuration view
type CloudProps struct {
	Providers store.AsyncData[[]model.Provider] `json:"providers"`
	Regions   store.AsyncData[[]model.Region]   `json:"regions"`
}

// Cloud is the container of the provider configuration
type Cloud struct {
	store *Store
	api   actions.CloudAPI
}

// NewCloud creates the cloud container
func NewCloud(s *Store, api actions.CloudAPI) *Cloud {
	return &Cloud{store: s, api: api}
}

// Props maps state to the provider configuration props
func (c *Cloud) Props() CloudProps {
	state := c.store.GetState()
	return CloudProps{
		Providers: state.Cloud.Providers,
		Regions:   state.Cloud.SupportedRegionList,
	}
}

// FetchCloudMetadata refreshes the providers and the regions
func (c *Cloud) FetchCloudMetadata(ctx context.Context) error {
	c.store.Dispatch(ctx, actions.FetchCloudMetadataAction())
	if _, err := fetch(ctx, c.store, actions.GetProviderListRequest(c.api),
		actions.GetProviderListSuccessAction, actions.GetProviderListFailureAction); err != nil {
		return err
	}
	_, err := fetch(ctx, c.store, actions.GetRegionListRequest(c.api),
		actions.GetRegionListSuccessAction, actions.GetRegionListFailureAction)
	return err
}

// DeleteProviderConfig deletes a provider. Anything but a 200 answer is a failure,
// on success the cloud metadata is fetched again.
func (c *Cloud) DeleteProviderConfig(ctx context.Context, pUUID string) error {
	r := c.store.Dispatch(ctx, actions.DeleteProviderRequest(c.api, pUUID))
	if r.StatusCode != http.StatusOK {
		err := r.Err
		if err == nil {
			err = fmt.Errorf("delete provider %s returned status %d", pUUID, r.StatusCode)
		}
		c.store.Dispatch(ctx, actions.DeleteProviderFailureAction(err))
		return err
	}
	c.store.Dispatch(ctx, actions.DeleteProviderSuccessAction(r.Data))
	return c.FetchCloudMetadata(ctx)
}
