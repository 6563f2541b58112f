/*
 * Copyright (c) YugabyteDB, Inc.
 */

package panels

import (
	"fmt"
	"strconv"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// LoadTestTool is the load generator pointed at the masters endpoint
const LoadTestTool = "yb_load_test_tool --load_test_master_endpoint "

// DescriptionItem is one row of a description list
type DescriptionItem struct {
	Name string `json:"name"`
	Data string `json:"data"`
	// Code marks data shown as a command snippet
	Code bool `json:"code,omitempty"`
}

// MastersEndpoint of a universe under the platform API root
func MastersEndpoint(rootURL, customerUUID, universeUUID string) string {
	return fmt.Sprintf("%s/customers/%s/universes/%s/masters", rootURL, customerUUID,
		universeUUID)
}

// ConnectString lists how to reach a universe
func ConnectString(universe model.Universe, customerUUID, rootURL string) []DescriptionItem {
	intent := universe.UniverseDetails.UserIntent
	endpoint := MastersEndpoint(rootURL, customerUUID, universe.UniverseUUID)
	return []DescriptionItem{
		{Name: "Nodes", Data: strconv.Itoa(int(intent.NumNodes))},
		{Name: "Replication Factor", Data: strconv.Itoa(int(intent.ReplicationFactor))},
		{Name: "Meta Masters", Data: endpoint},
		{Name: "Load Test", Data: LoadTestTool + endpoint, Code: true},
	}
}
