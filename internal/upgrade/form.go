/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package upgrade holds the rolling upgrade form: its values, the editing of the
// master and tserver gflag rows and the shaping of the submitted payload.
package upgrade

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// Modals an upgrade can be submitted from
const (
	SoftwareUpgradesModal = "softwareUpgradesModal"
	GFlagsModal           = "gFlagsModal"
)

// Task types of a rolling upgrade
const (
	SoftwareTaskType = "Software"
	GFlagsTaskType   = "GFlags"
)

// Form fields
const (
	FormName               = "RollingUpgradeForm"
	SoftwareVersionField   = "ybSoftwareVersion"
	MasterGFlagsField      = "masterGFlags"
	TServerGFlagsField     = "tserverGFlags"
	TimeDelayField         = "timeDelay"
	millisecondsPerSeconds = 1000
)

var (
	// ErrNoUpgradeModal is returned when the form is submitted while no upgrade modal is open
	ErrNoUpgradeModal = errors.New("no upgrade modal is open")

	fieldPath = regexp.MustCompile(`^(masterGFlags|tserverGFlags)\[(\d+)\]\.(name|value)$`)
)

// FlagRow is one editable row of a gflag field array
type FlagRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Values of the rolling upgrade form
type Values struct {
	YBSoftwareVersion string    `json:"ybSoftwareVersion,omitempty"`
	MasterGFlags      []FlagRow `json:"masterGFlags"`
	TserverGFlags     []FlagRow `json:"tserverGFlags"`
	// TimeDelay between server restarts, in seconds
	TimeDelay int64 `json:"timeDelay"`
}

// Mount gives every empty gflag field array a first, empty row
func (v Values) Mount() Values {
	if len(v.MasterGFlags) == 0 {
		v.MasterGFlags = []FlagRow{{}}
	}
	if len(v.TserverGFlags) == 0 {
		v.TserverGFlags = []FlagRow{{}}
	}
	return v
}

// Rows returns a copy of the rows of a gflag field array
func (v Values) Rows(field string) ([]FlagRow, error) {
	switch field {
	case MasterGFlagsField:
		return append([]FlagRow(nil), v.MasterGFlags...), nil
	case TServerGFlagsField:
		return append([]FlagRow(nil), v.TserverGFlags...), nil
	}
	return nil, fmt.Errorf("%s is not a gflag field", field)
}

func (v Values) withRows(field string, rows []FlagRow) Values {
	if field == MasterGFlagsField {
		v.MasterGFlags = rows
	} else {
		v.TserverGFlags = rows
	}
	return v
}

// Push appends a row to a gflag field array
func (v Values) Push(field string, row FlagRow) (Values, error) {
	rows, err := v.Rows(field)
	if err != nil {
		return v, err
	}
	return v.withRows(field, append(rows, row)), nil
}

// Remove deletes the row at index from a gflag field array
func (v Values) Remove(field string, index int) (Values, error) {
	rows, err := v.Rows(field)
	if err != nil {
		return v, err
	}
	if index < 0 || index >= len(rows) {
		return v, fmt.Errorf("%s has no row %d", field, index)
	}
	return v.withRows(field, append(rows[:index], rows[index+1:]...)), nil
}

// Change sets a single field, addressed the way form inputs name them:
// ybSoftwareVersion, timeDelay or masterGFlags[1].value
func (v Values) Change(path, value string) (Values, error) {
	switch path {
	case SoftwareVersionField:
		v.YBSoftwareVersion = value
		return v, nil
	case TimeDelayField:
		if strings.TrimSpace(value) == "" {
			v.TimeDelay = 0
			return v, nil
		}
		delay, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return v, fmt.Errorf("invalid %s %q: %w", TimeDelayField, value, err)
		}
		v.TimeDelay = delay
		return v, nil
	}

	m := fieldPath.FindStringSubmatch(path)
	if m == nil {
		return v, fmt.Errorf("unknown field %s in %s", path, FormName)
	}
	rows, _ := v.Rows(m[1])
	index, _ := strconv.Atoi(m[2])
	if index >= len(rows) {
		return v, fmt.Errorf("%s has no row %d", m[1], index)
	}
	if m[3] == "name" {
		rows[index].Name = value
	} else {
		rows[index].Value = value
	}
	return v.withRows(m[1], rows), nil
}

// TaskTypeFor maps the open modal to the upgrade task type
func TaskTypeFor(visibleModal string) (string, error) {
	switch visibleModal {
	case SoftwareUpgradesModal:
		return SoftwareTaskType, nil
	case GFlagsModal:
		return GFlagsTaskType, nil
	}
	return "", ErrNoUpgradeModal
}

// Title of the modal showing the form
func Title(visibleModal string) string {
	if visibleModal == SoftwareUpgradesModal {
		return "Upgrade Software"
	}
	return "GFlags"
}

// FilterFlags keeps the rows that have both a name and a value
func FilterFlags(rows []FlagRow) []model.GFlag {
	flags := make([]model.GFlag, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.Value == "" {
			continue
		}
		flags = append(flags, model.GFlag{Name: row.Name, Value: row.Value})
	}
	return flags
}

// BuildPayload shapes the form values into the rolling upgrade request
func BuildPayload(
	visibleModal string,
	values Values,
	universe model.Universe,
) (model.RollingUpgradePayload, error) {
	taskType, err := TaskTypeFor(visibleModal)
	if err != nil {
		return model.RollingUpgradePayload{}, err
	}
	delay := values.TimeDelay * millisecondsPerSeconds
	return model.RollingUpgradePayload{
		TaskType:                       taskType,
		YBSoftwareVersion:              values.YBSoftwareVersion,
		UniverseUUID:                   universe.UniverseUUID,
		UserIntent:                     universe.UniverseDetails.UserIntent,
		MasterGFlags:                   FilterFlags(values.MasterGFlags),
		TserverGFlags:                  FilterFlags(values.TserverGFlags),
		SleepAfterMasterRestartMillis:  delay,
		SleepAfterTServerRestartMillis: delay,
	}, nil
}

// SubmitFunc receives the shaped payload together with a function resetting the form
type SubmitFunc func(
	ctx context.Context,
	payload model.RollingUpgradePayload,
	universeUUID string,
	reset func(),
) error

// Form binds the values to the universe being upgraded
type Form struct {
	VisibleModal     string
	Universe         model.Universe
	SoftwareVersions []string
	Values           Values
	Submit           SubmitFunc
	Reset            func()
}

// HandleSubmit shapes the payload and hands it to Submit. Nothing is submitted
// when no upgrade modal is open.
func (f *Form) HandleSubmit(ctx context.Context) error {
	payload, err := BuildPayload(f.VisibleModal, f.Values, f.Universe)
	if err != nil {
		return err
	}
	reset := f.Reset
	if reset == nil {
		reset = func() {}
	}
	return f.Submit(ctx, payload, f.Universe.UniverseUUID, reset)
}

// FlagRowsOf lists gflags as rows sorted by name
func FlagRowsOf(flags map[string]string) []FlagRow {
	rows := make([]FlagRow, 0, len(flags))
	for name, value := range flags {
		rows = append(rows, FlagRow{Name: name, Value: value})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// ParseFlagRows reads comma separated key=value pairs into rows. A pair without a
// value keeps an empty value and is dropped on submit.
func ParseFlagRows(in string) []FlagRow {
	rows := make([]FlagRow, 0)
	for _, pair := range strings.Split(in, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		rows = append(rows, FlagRow{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return rows
}

// InitialValues seeds the form with the gflags the universe runs with
func InitialValues(universe model.Universe) Values {
	intent := universe.UniverseDetails.UserIntent
	return Values{
		MasterGFlags:  FlagRowsOf(intent.MasterGFlags),
		TserverGFlags: FlagRowsOf(intent.TserverGFlags),
	}
}

// MergeFlagRows applies edits to the named rows of current. An edit of a known
// name replaces its value, an edit without a value removes the row and any other
// edit is appended. Rows without a name are dropped.
func MergeFlagRows(current, edits []FlagRow) []FlagRow {
	merged := make([]FlagRow, 0, len(current)+len(edits))
	index := make(map[string]int, len(current))
	for _, row := range current {
		if row.Name == "" {
			continue
		}
		index[row.Name] = len(merged)
		merged = append(merged, row)
	}
	removed := make(map[string]bool)
	for _, edit := range edits {
		if edit.Name == "" {
			continue
		}
		if i, ok := index[edit.Name]; ok {
			merged[i].Value = edit.Value
			removed[edit.Name] = edit.Value == ""
			continue
		}
		if edit.Value == "" {
			continue
		}
		index[edit.Name] = len(merged)
		merged = append(merged, edit)
		removed[edit.Name] = false
	}
	rows := make([]FlagRow, 0, len(merged))
	for _, row := range merged {
		if !removed[row.Name] {
			rows = append(rows, row)
		}
	}
	return rows
}
