/*
 * Copyright (c) YugabyteDB, Inc.
 */

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/panels"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
)

// UpgradeRequest is the body of a rolling upgrade submission
type UpgradeRequest struct {
	// Modal is softwareUpgradesModal or gFlagsModal
	Modal             string `json:"modal"`
	YBSoftwareVersion string `json:"ybSoftwareVersion,omitempty"`
	// MasterGFlags and TserverGFlags edit the flags of the universe, a row
	// without a value removes that flag
	MasterGFlags  []upgrade.FlagRow `json:"masterGFlags,omitempty"`
	TserverGFlags []upgrade.FlagRow `json:"tserverGFlags,omitempty"`
	TimeDelay     int64             `json:"timeDelay"`
}

// GraphPeriodRequest is the body of a graph period change
type GraphPeriodRequest struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// GetState - whole console state
func (srv *Server) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, srv.store.GetState())
}

// GetCustomer - session of the current customer
func (srv *Server) GetCustomer(c echo.Context) error {
	session, err := srv.customer.FetchCustomer(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// GetProviders - providers and their regions
func (srv *Server) GetProviders(c echo.Context) error {
	if err := srv.cloud.FetchCloudMetadata(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, srv.cloud.Props())
}

// DeleteProvider - delete a provider and refetch the provider list
func (srv *Server) DeleteProvider(c echo.Context) error {
	if err := srv.cloud.DeleteProviderConfig(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, srv.cloud.Props())
}

// GetUniverses - list the customer's universes
func (srv *Server) GetUniverses(c echo.Context) error {
	list, err := srv.universe.FetchUniverseList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// GetUniverseStats - highlighted stats of the universe list
func (srv *Server) GetUniverseStats(c echo.Context) error {
	if _, err := srv.universe.FetchUniverseList(c.Request().Context()); err != nil {
		return err
	}
	stats := panels.NewHighlightedStats(srv.universe.Props().Universe.UniverseList, srv.now())
	return c.JSON(http.StatusOK, stats)
}

// GetUniverse - details of a universe
func (srv *Server) GetUniverse(c echo.Context) error {
	u, err := srv.universe.FetchUniverseInfo(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// GetConnect - how to connect to a universe
func (srv *Server) GetConnect(c echo.Context) error {
	u, err := srv.universe.FetchUniverseInfo(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, panels.ConnectString(u, srv.customerUUID(), srv.config.RootURL))
}

// GetTables - tables of a universe
func (srv *Server) GetTables(c echo.Context) error {
	tables, err := srv.tables.FetchUniverseTables(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tables)
}

// GetColumnTypes - column types available to new tables
func (srv *Server) GetColumnTypes(c echo.Context) error {
	types, err := srv.tables.FetchColumnTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// GetTasks - tasks of the customer
func (srv *Server) GetTasks(c echo.Context) error {
	tasks, err := srv.tasks.FetchCustomerTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// PostUpgrade - submit the rolling upgrade form of a universe. The form starts
// from the gflags the universe runs with and the gflag rows of the request are
// merged into it.
func (srv *Server) PostUpgrade(c echo.Context) error {
	ctx := c.Request().Context()
	var req UpgradeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	srv.upgradeMu.Lock()
	defer srv.upgradeMu.Unlock()

	uUUID := c.Param("uuid")
	u, err := srv.universe.FetchUniverseInfo(ctx, uUUID)
	if err != nil {
		return err
	}
	if u.UniverseUUID != uUUID {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("universe %s was answered for %s", u.UniverseUUID, uUUID))
	}
	srv.universe.ShowModal(ctx, req.Modal)
	srv.universe.InitializeUpgradeForm(ctx, u)
	srv.universe.MountUpgradeForm(ctx)
	if err := srv.universe.ChangeUpgradeField(ctx, upgrade.SoftwareVersionField,
		req.YBSoftwareVersion); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := srv.universe.ChangeUpgradeField(ctx, upgrade.TimeDelayField,
		strconv.FormatInt(req.TimeDelay, 10)); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	edits := []struct {
		field string
		rows  []upgrade.FlagRow
	}{
		{upgrade.MasterGFlagsField, req.MasterGFlags},
		{upgrade.TServerGFlagsField, req.TserverGFlags},
	}
	for _, edit := range edits {
		if err := srv.universe.EditFlagRows(ctx, edit.field, edit.rows); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if err := srv.universe.UpgradeFormOf(ctx, u).HandleSubmit(ctx); err != nil {
		if errors.Is(err, upgrade.ErrNoUpgradeModal) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, srv.universe.LastUpgrade())
}

// GetMetrics - query metrics of a universe over the current graph period
func (srv *Server) GetMetrics(c echo.Context) error {
	names := strings.Split(c.QueryParam("metrics"), ",")
	resp, err := srv.graph.QueryMetrics(c.Request().Context(), c.Param("uuid"), names)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// PutGraphPeriod - change the period of the metrics graphs
func (srv *Server) PutGraphPeriod(c echo.Context) error {
	var req GraphPeriodRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	filter, err := srv.graph.ChangeGraphQueryPeriod(c.Request().Context(), req.Value, req.Unit,
		srv.now())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, filter)
}

// DeleteGraphPeriod - restore the default graph period
func (srv *Server) DeleteGraphPeriod(c echo.Context) error {
	srv.graph.ResetGraphQueryPeriod(c.Request().Context())
	return c.JSON(http.StatusOK, srv.graph.Props().GraphFilter)
}

func (srv *Server) customerUUID() string {
	if uuid := srv.customer.Props().CustomerUUID; uuid != "" {
		return uuid
	}
	return srv.config.CustomerUUID
}
