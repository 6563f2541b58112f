/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"
	"fmt"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/reducers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
)

// UniverseProps are rendered by the universe views
type UniverseProps struct {
	Universe     reducers.UniverseState `json:"universe"`
	CustomerUUID string                 `json:"customerUUID,omitempty"`
	UpgradeForm  upgrade.Values         `json:"upgradeForm"`
	FormTitle    string                 `json:"formTitle,omitempty"`
}

// Universe is the container of the universe list, detail and rolling upgrades
type Universe struct {
	store *Store
	api   actions.UniverseAPI
}

// NewUniverse creates the universe container
func NewUniverse(s *Store, api actions.UniverseAPI) *Universe {
	return &Universe{store: s, api: api}
}

// Props maps state to the universe props
func (c *Universe) Props() UniverseProps {
	state := c.store.GetState()
	return UniverseProps{
		Universe:     state.Universe,
		CustomerUUID: state.Customer.CustomerUUID,
		UpgradeForm:  state.Form.ValuesOf(upgrade.FormName),
		FormTitle:    upgrade.Title(state.Universe.VisibleModal),
	}
}

// FetchUniverseList lists the universes of the customer
func (c *Universe) FetchUniverseList(ctx context.Context) ([]model.Universe, error) {
	return fetch(ctx, c.store, actions.FetchUniverseListRequest(c.api),
		actions.FetchUniverseListSuccessAction, actions.FetchUniverseListFailureAction)
}

// FetchUniverseInfo fetches a universe and makes it the current one
func (c *Universe) FetchUniverseInfo(ctx context.Context, uUUID string) (model.Universe, error) {
	return fetch(ctx, c.store, actions.FetchUniverseInfoRequest(c.api, uUUID),
		actions.FetchUniverseInfoSuccessAction, actions.FetchUniverseInfoFailureAction)
}

// FetchSoftwareVersions lists the releases a universe can be upgraded to
func (c *Universe) FetchSoftwareVersions(ctx context.Context) ([]string, error) {
	return fetch(ctx, c.store, actions.FetchSoftwareVersionsRequest(c.api),
		actions.FetchSoftwareVersionsSuccessAction, actions.FetchSoftwareVersionsFailureAction)
}

// ShowModal opens the named modal
func (c *Universe) ShowModal(ctx context.Context, modal string) {
	c.store.Dispatch(ctx, actions.ShowUniverseModalAction(modal))
}

// CloseModal closes the open modal
func (c *Universe) CloseModal(ctx context.Context) {
	c.store.Dispatch(ctx, actions.CloseUniverseDialogAction())
}

// InitializeUpgradeForm seeds the upgrade form, and what a reset restores, with the
// gflags of universe
func (c *Universe) InitializeUpgradeForm(ctx context.Context, universe model.Universe) {
	c.store.Dispatch(ctx, actions.InitializeForm(upgrade.FormName,
		upgrade.InitialValues(universe)))
}

// MountUpgradeForm registers the upgrade form and gives each empty gflag list a
// first row
func (c *Universe) MountUpgradeForm(ctx context.Context) {
	state := c.store.GetState()
	if _, ok := state.Form.Initial[upgrade.FormName]; !ok {
		c.store.Dispatch(ctx, actions.InitializeForm(upgrade.FormName, upgrade.Values{}))
	}
	values := c.store.GetState().Form.ValuesOf(upgrade.FormName)
	if len(values.MasterGFlags) == 0 {
		c.store.Dispatch(ctx, actions.ArrayPush(upgrade.FormName,
			upgrade.MasterGFlagsField, upgrade.FlagRow{}))
	}
	if len(values.TserverGFlags) == 0 {
		c.store.Dispatch(ctx, actions.ArrayPush(upgrade.FormName,
			upgrade.TServerGFlagsField, upgrade.FlagRow{}))
	}
}

// ChangeUpgradeField edits a field of the upgrade form
func (c *Universe) ChangeUpgradeField(ctx context.Context, field, value string) error {
	c.store.Dispatch(ctx, actions.ChangeField(upgrade.FormName, field, value))
	return c.formError()
}

// AddFlagRow appends an empty row to a gflag list of the upgrade form
func (c *Universe) AddFlagRow(ctx context.Context, field string) error {
	c.store.Dispatch(ctx, actions.ArrayPush(upgrade.FormName, field, upgrade.FlagRow{}))
	return c.formError()
}

// RemoveFlagRow removes a row from a gflag list of the upgrade form
func (c *Universe) RemoveFlagRow(ctx context.Context, field string, index int) error {
	c.store.Dispatch(ctx, actions.ArrayRemove(upgrade.FormName, field, index))
	return c.formError()
}

// SetFlagRows replaces the rows of a gflag list of the upgrade form, editing the
// rows in place and trimming the ones left over
func (c *Universe) SetFlagRows(ctx context.Context, field string, rows []upgrade.FlagRow) error {
	current, err := c.store.GetState().Form.ValuesOf(upgrade.FormName).Rows(field)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i >= len(current) {
			if err := c.AddFlagRow(ctx, field); err != nil {
				return err
			}
		}
		if err := c.ChangeUpgradeField(ctx, fmt.Sprintf("%s[%d].name", field, i), row.Name); err != nil {
			return err
		}
		if err := c.ChangeUpgradeField(ctx, fmt.Sprintf("%s[%d].value", field, i), row.Value); err != nil {
			return err
		}
	}
	for i := len(current) - 1; i >= len(rows); i-- {
		if err := c.RemoveFlagRow(ctx, field, i); err != nil {
			return err
		}
	}
	return nil
}

// EditFlagRows merges edits into the rows of a gflag list of the upgrade form. A
// row left without a value is removed.
func (c *Universe) EditFlagRows(ctx context.Context, field string, edits []upgrade.FlagRow) error {
	current, err := c.store.GetState().Form.ValuesOf(upgrade.FormName).Rows(field)
	if err != nil {
		return err
	}
	return c.SetFlagRows(ctx, field, upgrade.MergeFlagRows(current, edits))
}

func (c *Universe) formError() error {
	if msg := c.store.GetState().Form.Errors[upgrade.FormName]; msg != "" {
		return formEditError(msg)
	}
	return nil
}

type formEditError string

func (e formEditError) Error() string {
	return string(e)
}

// ResetUpgradeForm restores the initial upgrade form values
func (c *Universe) ResetUpgradeForm(ctx context.Context) {
	c.store.Dispatch(ctx, actions.ResetForm(upgrade.FormName))
}

// UpgradeForm binds the current upgrade form values to the current universe
func (c *Universe) UpgradeForm(ctx context.Context) *upgrade.Form {
	return c.UpgradeFormOf(ctx, c.store.GetState().Universe.CurrentUniverse.Data)
}

// UpgradeFormOf binds the current upgrade form values to universe
func (c *Universe) UpgradeFormOf(ctx context.Context, universe model.Universe) *upgrade.Form {
	state := c.store.GetState()
	return &upgrade.Form{
		VisibleModal:     state.Universe.VisibleModal,
		Universe:         universe,
		SoftwareVersions: state.Universe.SoftwareVersions.Data,
		Values:           state.Form.ValuesOf(upgrade.FormName),
		Submit:           c.SubmitRollingUpgrade,
		Reset:            func() { c.ResetUpgradeForm(ctx) },
	}
}

// SubmitRollingUpgrade starts a rolling upgrade. On success the modal is closed and
// the form reset, a failure is kept on the universe state.
func (c *Universe) SubmitRollingUpgrade(
	ctx context.Context,
	payload model.RollingUpgradePayload,
	uUUID string,
	reset func(),
) error {
	_, err := fetch(ctx, c.store, actions.RollingUpgradeRequest(c.api, uUUID, payload),
		actions.RollingUpgradeSuccessAction, actions.RollingUpgradeFailureAction)
	if err != nil {
		return err
	}
	c.CloseModal(ctx)
	reset()
	return nil
}

// CloseUpgradeForm hides the upgrade modal and discards the form edits
func (c *Universe) CloseUpgradeForm(ctx context.Context) {
	c.CloseModal(ctx)
	c.ResetUpgradeForm(ctx)
	c.store.Dispatch(ctx, actions.ResetRollingUpgradeAction())
}

// LastUpgrade returns the task of the last successful rolling upgrade
func (c *Universe) LastUpgrade() model.TaskResponse {
	return c.store.GetState().Universe.RollingUpgrade.Data
}
