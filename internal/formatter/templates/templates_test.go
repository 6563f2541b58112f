/*
 * Copyright (c) YugabyteDB, Inc.
 */

package templates

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseJSONFunction(t *testing.T) {
	tm, err := Parse(`{{json .Endpoint}}`)
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, map[string]string{
		"Endpoint": "http://yba:9000/api/v1/customers/c/universes/u/masters",
	}))
	assert.Check(t, is.Equal(`"http://yba:9000/api/v1/customers/c/universes/u/masters"`, b.String()))
}

func TestParseSprigFunctions(t *testing.T) {
	tm, err := Parse(`{{join "," (splitList ":" .) }}`)
	assert.NilError(t, err)
	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, "10.0.0.1:10.0.0.2:10.0.0.3"))
	assert.Check(t, is.Equal("10.0.0.1,10.0.0.2,10.0.0.3", b.String()))
}

func TestNewParse(t *testing.T) {
	tm, err := NewParse("universe", "universe {{ . }}")
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, "prod"))
	assert.Check(t, is.Equal("universe prod", b.String()))
}

func TestParseTruncateFunction(t *testing.T) {
	source := "f33e3c9b-4d21-4f4b-8b1e-0b1d2c3e4f5a"

	testCases := []struct {
		template string
		expected string
	}{
		{template: `{{truncate . 8}}`, expected: "f33e3c9b"},
		{template: `{{truncate . 36}}`, expected: source},
		{template: `{{truncate . 40}}`, expected: source},
	}

	for _, testCase := range testCases {
		testCase := testCase
		tm, err := Parse(testCase.template)
		assert.NilError(t, err)

		t.Run(testCase.template, func(t *testing.T) {
			var b bytes.Buffer
			assert.NilError(t, tm.Execute(&b, source))
			assert.Check(t, is.Equal(testCase.expected, b.String()))

			var empty bytes.Buffer
			assert.NilError(t, tm.Execute(&empty, ""))
			assert.Check(t, is.Equal("", empty.String()))
		})
	}
}

func TestParseHumanizeFunctions(t *testing.T) {
	tm, err := Parse(`{{bytes .Size}} {{comma .Rows}} {{percent .Done}} {{usd .Cost}}`)
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, struct {
		Size float64
		Rows int64
		Done float64
		Cost float64
	}{Size: 1536, Rows: 1234567, Done: 42.4, Cost: 1440}))
	assert.Check(t, is.Equal("1.5 KiB 1,234,567 42% $1,440.00", b.String()))
}

func TestHeaderFunctionsKeepNames(t *testing.T) {
	tm, err := Parse(`{{usd .Cost}}|{{truncate .UUID 4}}`)
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Funcs(HeaderFunctions).Execute(&b, map[string]string{
		"Cost": "Monthly Cost",
		"UUID": "Universe UUID",
	}))
	assert.Check(t, is.Equal("Monthly Cost|Universe UUID", b.String()))
}

func TestTruncateWideCharacters(t *testing.T) {
	tm, err := Parse(`{{truncate . 4}}`)
	assert.NilError(t, err)

	var b bytes.Buffer
	assert.NilError(t, tm.Execute(&b, "表格名称"))
	assert.Check(t, is.Equal("表格", b.String()))
}
