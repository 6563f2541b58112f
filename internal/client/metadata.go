/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"context"
	"net/http"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// ColumnTypes fetches the column data types supported for table creation
func (a *AuthAPIClient) ColumnTypes(ctx context.Context) (model.ColumnTypes, error) {
	var r model.ColumnTypes
	params, err := newRestAPIParameters(http.MethodGet, "metadata/column_types",
		"Metadata", "Column Types", false, nil)
	if err != nil {
		return r, err
	}
	err = a.restJSON(ctx, params, &r)
	return r, err
}

// SoftwareVersions fetches the database versions available for upgrades
func (a *AuthAPIClient) SoftwareVersions(ctx context.Context) ([]string, error) {
	params, err := newRestAPIParameters(http.MethodGet, "metadata/yb_versions",
		"Metadata", "Software Versions", false, nil)
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0)
	if err := a.restJSON(ctx, params, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}
