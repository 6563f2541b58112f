/*
 * Copyright (c) YugabyteDB, Inc.
 */

package reducers

import (
	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
)

// FormState holds the values of named forms
type FormState struct {
	Values  map[string]upgrade.Values `json:"values"`
	Initial map[string]upgrade.Values `json:"initial"`
	// Errors holds the last rejected edit of each form
	Errors map[string]string `json:"errors,omitempty"`
}

// InitialFormState with no form registered
func InitialFormState() FormState {
	return FormState{
		Values:  map[string]upgrade.Values{},
		Initial: map[string]upgrade.Values{},
		Errors:  map[string]string{},
	}
}

// ValuesOf returns the values of the named form
func (f FormState) ValuesOf(form string) upgrade.Values {
	return f.Values[form]
}

func (f FormState) with(form string, values upgrade.Values, err error) FormState {
	next := FormState{
		Values:  make(map[string]upgrade.Values, len(f.Values)+1),
		Initial: f.Initial,
		Errors:  make(map[string]string, len(f.Errors)),
	}
	for k, v := range f.Values {
		next.Values[k] = v
	}
	for k, v := range f.Errors {
		next.Errors[k] = v
	}
	next.Values[form] = values
	if err != nil {
		next.Errors[form] = err.Error()
	} else {
		delete(next.Errors, form)
	}
	return next
}

// Form reduces form edits
func Form(state FormState, action store.Action) FormState {
	meta, ok := store.PayloadAs[actions.FormMeta](action)
	if !ok {
		return state
	}
	current := state.Values[meta.Form]
	var next upgrade.Values
	var err error

	switch action.Type {
	case actions.FormChange:
		next, err = current.Change(meta.Field, meta.Value)
	case actions.FormArrayPush:
		next, err = current.Push(meta.Field, meta.Row)
	case actions.FormArrayRemove:
		next, err = current.Remove(meta.Field, meta.Index)
	case actions.FormReset:
		next = state.Initial[meta.Form]
	case actions.FormInitialize:
		initial := make(map[string]upgrade.Values, len(state.Initial)+1)
		for k, v := range state.Initial {
			initial[k] = v
		}
		initial[meta.Form] = meta.Values
		state.Initial = initial
		next = meta.Values
	default:
		return state
	}

	if err != nil {
		logrus.Debugf("Rejected %s on %s: %s\n", action.Type, meta.Form, err.Error())
		return state.with(meta.Form, current, err)
	}
	return state.with(meta.Form, next, nil)
}
