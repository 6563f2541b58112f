/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package payload reads request bodies from YAML or JSON files and validates
// them against the bundled JSON schemas before they are sent to the platform.
package payload

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
	"github.com/xeipuuv/gojsonschema"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"sigs.k8s.io/yaml"
)

//go:embed schemas/*.json
var schemas embed.FS

// Schema names
const (
	CreateTableSchema = "create_table"
	BulkImportSchema  = "bulk_import"
	BackupSchema      = "backup"
	RestoreSchema     = "restore"
)

// ValidationError lists every schema violation of a request body
type ValidationError struct {
	Schema string
	Causes []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request is not a valid %s body:\n- %s", e.Schema,
		strings.Join(e.Causes, "\n- "))
}

// Validate checks a YAML or JSON document against the named schema and returns
// the document converted to JSON.
func Validate(schema string, document []byte) ([]byte, error) {
	schemaBytes, err := schemas.ReadFile("schemas/" + schema + ".json")
	if err != nil {
		return nil, errors.Wrapf(err, "unknown schema %s", schema)
	}
	jsonBytes, err := yaml.YAMLToJSON(document)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse request")
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(jsonBytes))
	if err != nil {
		return nil, errors.Wrap(err, "could not validate request")
	}
	if !result.Valid() {
		causes := funk.Map(result.Errors(), func(desc gojsonschema.ResultError) string {
			return desc.String()
		}).([]string)
		return nil, &ValidationError{Schema: schema, Causes: causes}
	}
	logrus.Debugf("Request is a valid %s body\n", schema)
	return jsonBytes, nil
}

// Decode validates document against schema and unmarshals it into v
func Decode(schema string, document []byte, v interface{}) error {
	jsonBytes, err := Validate(schema, document)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, v)
}

// Load reads the request file at path and decodes it into v
func Load(path, schema string, v interface{}) error {
	document, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	return Decode(schema, document, v)
}

// TableDefinition loads a create-table request
func TableDefinition(path string) (model.TableDefinition, error) {
	var def model.TableDefinition
	err := Load(path, CreateTableSchema, &def)
	return def, err
}

// BulkImport loads a bulk import request
func BulkImport(path string) (model.BulkImportParams, error) {
	var params model.BulkImportParams
	err := Load(path, BulkImportSchema, &params)
	return params, err
}

// Backup loads a table backup request
func Backup(path string) (model.BackupParams, error) {
	var params model.BackupParams
	err := Load(path, BackupSchema, &params)
	return params, err
}

// Restore loads a table restore request
func Restore(path string) (model.RestoreParams, error) {
	var params model.RestoreParams
	err := Load(path, RestoreSchema, &params)
	return params, err
}
