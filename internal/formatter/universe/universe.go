/*
 * Copyright (c) YugabyteDB, Inc.
 */

package universe

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/panels"
)

const (
	defaultUniverseListing = "table {{.Name}}\t{{.UUID}}\t{{.Version}}" +
		"\t{{.ProviderCode}}\t{{.Nodes}}\t{{.RF}}\t{{.MonthlyCost}}\t{{.State}}"

	versionHeader     = "Version"
	nodesHeader       = "Nodes"
	rfHeader          = "RF"
	monthlyCostHeader = "Monthly Cost"
	stateHeader       = "State"

	readyState    = "Ready"
	updatingState = "Updating"
)

// Context for universe outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	u   model.Universe
	now time.Time
}

// NewUniverseFormat for formatting output
func NewUniverseFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultUniverseListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Universes. The monthly cost is
// projected over the month now falls in.
func Write(ctx formatter.Context, universes []model.Universe, now time.Time) error {
	if written, err := ctx.WriteJSON(universes); written {
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, universe := range universes {
			err := format(&Context{u: universe, now: now})
			if err != nil {
				logrus.Debugf("Error rendering universe: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewUniverseContext(), render)
}

// NewUniverseContext creates a new context for rendering universe
func NewUniverseContext() *Context {
	universeCtx := Context{}
	universeCtx.Header = formatter.SubHeaderContext{
		"Name":         formatter.NameHeader,
		"UUID":         formatter.UUIDHeader,
		"Version":      versionHeader,
		"ProviderCode": formatter.ProviderHeader,
		"Nodes":        nodesHeader,
		"RF":           rfHeader,
		"MonthlyCost":  monthlyCostHeader,
		"State":        stateHeader,
	}
	return &universeCtx
}

// UUID fetches Universe UUID
func (c *Context) UUID() string {
	return c.u.UniverseUUID
}

// Name fetches Universe Name
func (c *Context) Name() string {
	return c.u.Name
}

// Version of the database software
func (c *Context) Version() string {
	return c.u.UniverseDetails.UserIntent.YBSoftwareVersion
}

// ProviderCode fetches the cloud of the universe
func (c *Context) ProviderCode() string {
	return c.u.UniverseDetails.UserIntent.ProviderType
}

// Nodes fetches the node count
func (c *Context) Nodes() string {
	return fmt.Sprintf("%d", c.u.UniverseDetails.UserIntent.NumNodes)
}

// RF fetches the replication factor
func (c *Context) RF() string {
	return fmt.Sprintf("%d", c.u.UniverseDetails.UserIntent.ReplicationFactor)
}

// MonthlyCost projects the hourly price over the month
func (c *Context) MonthlyCost() string {
	days := float64(panels.DaysInMonth(c.now))
	return panels.FormatUSD(c.u.PricePerHour * 24 * days)
}

// State of the universe
func (c *Context) State() string {
	if c.u.UniverseDetails.UpdateInProgress {
		return formatter.Colorize(updatingState, formatter.YellowColor)
	}
	return formatter.Colorize(readyState, formatter.GreenColor)
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.u)
}
