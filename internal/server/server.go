/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package server exposes the console containers over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/containers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/metric"
)

// DefaultPort the console listens on
const DefaultPort = 15480

// Config of the console server
type Config struct {
	Port int
	// RootURL of the platform API, used in connection strings
	RootURL string
	// CustomerUUID the containers act for
	CustomerUUID string
}

// Server serves the console state and operations
type Server struct {
	config   Config
	echo     *echo.Echo
	store    *containers.Store
	customer *containers.Customer
	cloud    *containers.Cloud
	universe *containers.Universe
	tables   *containers.Tables
	graph    *containers.Graph
	tasks    *containers.Tasks
	now      func() time.Time

	// upgradeMu serializes the upgrade form, which lives in the shared store
	upgradeMu sync.Mutex
}

// New wires the containers over api into a server
func New(config Config, api actions.API, s *containers.Store) *Server {
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	srv := &Server{
		config:   config,
		echo:     echo.New(),
		store:    s,
		customer: containers.NewCustomer(s, api),
		cloud:    containers.NewCloud(s, api),
		universe: containers.NewUniverse(s, api),
		tables:   containers.NewTables(s, api),
		graph:    containers.NewGraph(s, api),
		tasks:    containers.NewTasks(s, api),
		now:      time.Now,
	}
	srv.echo.HideBanner = true
	srv.echo.HidePort = true
	srv.echo.HTTPErrorHandler = errorHandler
	srv.echo.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logrus.Errorf("[PANIC RECOVER] %v %s\n", err, stack)
			return nil
		},
	}))
	srv.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:           true,
		LogStatus:        true,
		LogLatency:       true,
		LogMethod:        true,
		LogContentLength: true,
		LogResponseSize:  true,
		LogRemoteIP:      true,
		LogError:         true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			bytesIn, err := strconv.ParseInt(v.ContentLength, 10, 64)
			if err != nil {
				bytesIn = 0
			}
			errString := ""
			if v.Error != nil {
				errString = v.Error.Error()
			}
			logrus.WithFields(logrus.Fields{
				"remote_ip": v.RemoteIP,
				"method":    v.Method,
				"URI":       v.URI,
				"status":    v.Status,
				"error":     errString,
				"latency":   v.Latency.String(),
				"bytes_in":  bytesIn,
				"bytes_out": v.ResponseSize,
			}).Debugf("request\n")
			metric.GetInstance().PublishHTTPStats(v.Latency, v.Method, c.Path(), v.Status)
			return nil
		},
	}))
	srv.routes()
	return srv
}

func (srv *Server) routes() {
	e := srv.echo
	e.GET("/api/state", srv.GetState)
	e.GET("/api/customer", srv.GetCustomer)
	e.GET("/api/providers", srv.GetProviders)
	e.DELETE("/api/providers/:uuid", srv.DeleteProvider)
	e.GET("/api/universes", srv.GetUniverses)
	e.GET("/api/universes/stats", srv.GetUniverseStats)
	e.GET("/api/universes/:uuid", srv.GetUniverse)
	e.GET("/api/universes/:uuid/connect", srv.GetConnect)
	e.GET("/api/universes/:uuid/tables", srv.GetTables)
	e.POST("/api/universes/:uuid/upgrade", srv.PostUpgrade)
	e.GET("/api/universes/:uuid/metrics", srv.GetMetrics)
	e.GET("/api/metadata/column_types", srv.GetColumnTypes)
	e.GET("/api/tasks", srv.GetTasks)
	e.PUT("/api/graph/period", srv.PutGraphPeriod)
	e.DELETE("/api/graph/period", srv.DeleteGraphPeriod)
	e.GET("/metrics", echo.WrapHandler(metric.GetInstance().HTTPHandler()))
}

// Handler of the server, for tests and embedding
func (srv *Server) Handler() http.Handler {
	return srv.echo
}

// Start serves until ctx is done, then shuts the server down
func (srv *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Console listening on port %d\n", srv.config.Port)
		errCh <- srv.echo.Start(":" + strconv.Itoa(srv.config.Port))
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.echo.Shutdown(shutdownCtx)
	}
}

type statusCoder interface {
	HTTPStatus() int
}

// errorHandler answers platform failures with their status and a YBPError-like body
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := err.Error()
	var he *echo.HTTPError
	var sc statusCoder
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	case errors.As(err, &sc) && sc.HTTPStatus() != 0:
		code = sc.HTTPStatus()
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	}
	if err := c.JSON(code, map[string]interface{}{"success": false, "error": message}); err != nil {
		logrus.Errorf("Error writing response: %v\n", err)
	}
}
