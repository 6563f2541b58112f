/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// RestAPIParameters is a struct to hold the parameters for a REST API call
type RestAPIParameters struct {
	reqBytes        []byte
	method          string
	urlRoute        string
	entity          string
	operationString string
	// customer scoped routes are prefixed with customers/<uuid>/
	customerScoped bool
}

func newRestAPIParameters(
	method, urlRoute, entity, operation string,
	customerScoped bool,
	body interface{},
) (RestAPIParameters, error) {
	params := RestAPIParameters{
		method:          method,
		urlRoute:        urlRoute,
		entity:          entity,
		operationString: operation,
		customerScoped:  customerScoped,
	}
	if body != nil {
		reqBytes, err := json.Marshal(body)
		if err != nil {
			return params, errors.Wrapf(err, "encoding %s %s request", entity, operation)
		}
		params.reqBytes = reqBytes
	}
	return params, nil
}

func (a *AuthAPIClient) requestURL(params RestAPIParameters) (string, error) {
	if !params.customerScoped {
		return fmt.Sprintf("%s/%s", a.RootURL(), params.urlRoute), nil
	}
	if a.CustomerUUID == "" {
		return "", fmt.Errorf("%s, Operation: %s - customer UUID is not set",
			params.entity, params.operationString)
	}
	return fmt.Sprintf("%s/customers/%s/%s", a.RootURL(), a.CustomerUUID, params.urlRoute), nil
}

// RestAPICall makes a REST API call to the platform and returns the raw body
func (a *AuthAPIClient) RestAPICall(
	ctx context.Context,
	params RestAPIParameters,
) ([]byte, error) {
	reqURL, err := a.requestURL(params)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if params.reqBytes != nil {
		reqBody = bytes.NewBuffer(params.reqBytes)
	}
	req, err := http.NewRequestWithContext(ctx, params.method, reqURL, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-AUTH-YW-API-TOKEN", a.RestClient.Token)

	logrus.Debugf("%s %s\n", params.method, reqURL)
	r, err := a.RestClient.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "error occurred during %s call for %s %s",
			params.method, params.entity, params.operationString)
	}
	defer r.Body.Close()
	store.RecordStatus(ctx, r.StatusCode)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s %s response body",
			params.entity, params.operationString)
	}
	if r.StatusCode >= http.StatusBadRequest {
		return nil, ErrorFromHTTPResponse(r, body, params.entity, params.operationString)
	}
	return body, nil
}

// restJSON performs the call and decodes the JSON response into out when out is not nil
func (a *AuthAPIClient) restJSON(
	ctx context.Context,
	params RestAPIParameters,
	out interface{},
) error {
	body, err := a.RestAPICall(ctx, params)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response",
			params.entity, params.operationString)
	}
	return nil
}
