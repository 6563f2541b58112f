/*
 * Copyright (c) YugabyteDB, Inc.
 */

package util

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/client"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/containers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/metric"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

var output io.Writer = os.Stdout

func outputWriter() io.Writer {
	return output
}

// Console holds the platform client and the containers of one command run
type Console struct {
	API      *client.AuthAPIClient
	Store    *containers.Store
	Customer *containers.Customer
	Cloud    *containers.Cloud
	Universe *containers.Universe
	Tables   *containers.Tables
	Tasks    *containers.Tasks
	Graph    *containers.Graph
}

// NewStore creates the console store with logging, metrics and request resolution
func NewStore() *containers.Store {
	return containers.NewStore(store.Logger, metric.GetInstance().Instrument, store.Promise)
}

// NewConsole connects to the platform configured through viper and resolves the
// customer of the API token
func NewConsole(ctx context.Context) (*Console, error) {
	authAPI, err := client.NewAuthAPIClient()
	if err != nil {
		return nil, err
	}
	s := NewStore()
	c := &Console{
		API:      authAPI,
		Store:    s,
		Customer: containers.NewCustomer(s, authAPI),
		Cloud:    containers.NewCloud(s, authAPI),
		Universe: containers.NewUniverse(s, authAPI),
		Tables:   containers.NewTables(s, authAPI),
		Tasks:    containers.NewTasks(s, authAPI),
		Graph:    containers.NewGraph(s, authAPI),
	}
	if authAPI.CustomerUUID == "" {
		session, err := c.Customer.FetchCustomer(ctx)
		if err != nil {
			return nil, err
		}
		authAPI.CustomerUUID = session.CustomerUUID
	}
	logrus.Debugf("Customer UUID: %s\n", authAPI.CustomerUUID)
	return c, nil
}

// MustConsole is NewConsole exiting on error
func MustConsole(ctx context.Context) *Console {
	c, err := NewConsole(ctx)
	if err != nil {
		Fatal(err)
	}
	return c
}

// FindUniverse resolves a universe by name
func (c *Console) FindUniverse(ctx context.Context, name string) (model.Universe, error) {
	list, err := c.Universe.FetchUniverseList(ctx)
	if err != nil {
		return model.Universe{}, err
	}
	for _, u := range list {
		if u.Name == name {
			return c.Universe.FetchUniverseInfo(ctx, u.UniverseUUID)
		}
	}
	return model.Universe{}, fmt.Errorf("no universes with name: %s found", name)
}

// FindTable resolves a table of a universe by name
func (c *Console) FindTable(
	ctx context.Context,
	universeUUID, keyspace, name string,
) (model.Table, error) {
	tables, err := c.Tables.FetchUniverseTables(ctx, universeUUID)
	if err != nil {
		return model.Table{}, err
	}
	for _, t := range tables {
		if t.TableName == name && (keyspace == "" || t.KeySpace == keyspace) {
			return t, nil
		}
	}
	return model.Table{}, fmt.Errorf("no table with name: %s found", name)
}
