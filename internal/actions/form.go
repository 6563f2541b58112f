/*
 * Copyright (c) YugabyteDB, Inc.
 */

package actions

import (
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
)

// Form action types
const (
	FormChange      store.ActionType = "@@form/CHANGE"
	FormArrayPush   store.ActionType = "@@form/ARRAY_PUSH"
	FormArrayRemove store.ActionType = "@@form/ARRAY_REMOVE"
	FormReset       store.ActionType = "@@form/RESET"
	FormInitialize  store.ActionType = "@@form/INITIALIZE"
)

// FormMeta addresses a field of a named form
type FormMeta struct {
	Form  string `json:"form"`
	Field string `json:"field,omitempty"`
	Index int    `json:"index,omitempty"`
	Value string `json:"value,omitempty"`
	// Row is the row pushed onto a field array
	Row upgrade.FlagRow `json:"row,omitempty"`
	// Values replace the form values on initialize
	Values upgrade.Values `json:"values,omitempty"`
}

// ChangeField sets a single field of a form
func ChangeField(form, field, value string) store.Action {
	return success(FormChange, FormMeta{Form: form, Field: field, Value: value})
}

// ArrayPush appends a row to a field array
func ArrayPush(form, field string, row upgrade.FlagRow) store.Action {
	return success(FormArrayPush, FormMeta{Form: form, Field: field, Row: row})
}

// ArrayRemove removes the row at index from a field array
func ArrayRemove(form, field string, index int) store.Action {
	return success(FormArrayRemove, FormMeta{Form: form, Field: field, Index: index})
}

// ResetForm restores the initial values of a form
func ResetForm(form string) store.Action {
	return success(FormReset, FormMeta{Form: form})
}

// InitializeForm sets the initial values of a form
func InitializeForm(form string, values upgrade.Values) store.Action {
	return success(FormInitialize, FormMeta{Form: form, Values: values})
}
