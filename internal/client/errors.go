/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// YbaStructuredError is a structure mimicking YBPError, with error being an interface{}
// to accomodate errors thrown as YBPStructuredError
type YbaStructuredError struct {
	// User-visible unstructured error message
	Error *interface{} `json:"error,omitempty"`
	// Method for HTTP call that resulted in this error
	HTTPMethod *string `json:"httpMethod,omitempty"`
	// URI for HTTP request that resulted in this error
	RequestURI *string `json:"requestUri,omitempty"`
	// Mostly set to false to indicate failure
	Success *bool `json:"success,omitempty"`
}

// APIError is a non successful response of the platform
type APIError struct {
	StatusCode int    `json:"status"`
	Entity     string `json:"entity"`
	Operation  string `json:"operation"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s, Operation: %s - %d %s",
			e.Entity, e.Operation, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s, Operation: %s - %s", e.Entity, e.Operation, e.Message)
}

// HTTPStatus returns the status code of the failed response
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// ErrorFromHTTPResponse extracts the error message from the HTTP response of the API
func ErrorFromHTTPResponse(resp *http.Response, body []byte, entityName,
	operation string) error {
	apiErr := &APIError{
		Entity:    entityName,
		Operation: operation,
	}
	if resp != nil {
		apiErr.StatusCode = resp.StatusCode
	}
	errorBlock := YbaStructuredError{}
	if err := json.Unmarshal(body, &errorBlock); err != nil {
		logrus.Debugf("There was an error unmarshalling the response from the API\n")
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}
	apiErr.Message = ErrorFromResponseBody(errorBlock)
	return apiErr
}

// ErrorFromResponseBody is a function to extract error interfaces into string
func ErrorFromResponseBody(errorBlock YbaStructuredError) string {
	if errorBlock.Error == nil || *errorBlock.Error == nil {
		return ""
	}
	switch e := (*errorBlock.Error).(type) {
	case string:
		return e
	case map[string]interface{}:
		keys := make([]string, 0, len(e))
		for k := range e {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			var errorString string
			if k != "" {
				errorString = fmt.Sprintf("Field: %s, Error:", k)
			}
			switch v := e[k].(type) {
			case []interface{}:
				for _, s := range v {
					errorString = fmt.Sprintf("%s %v", errorString, s)
				}
			default:
				errorString = fmt.Sprintf("%s %v", errorString, v)
			}
			fields = append(fields, strings.TrimSpace(errorString))
		}
		return strings.Join(fields, "; ")
	default:
		return fmt.Sprintf("%v", e)
	}
}
