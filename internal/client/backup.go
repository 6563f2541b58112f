/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// RestoreBackup restores a backup into the universe
func (a *AuthAPIClient) RestoreBackup(
	ctx context.Context,
	uUUID, bUUID string,
	req model.RestoreParams,
) (model.TaskResponse, error) {
	route := fmt.Sprintf("universes/%s/backups/%s/restore",
		url.PathEscape(uUUID), url.PathEscape(bUUID))
	return a.taskCall(ctx, http.MethodPost, route, "Backup", "Restore", req)
}
