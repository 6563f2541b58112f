/*
 * Copyright (c) YugaByte, Inc.
 */

package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var cliVersion = "0.1.0"

// DefaultAPIRoot is the path prefix of every platform REST route
const DefaultAPIRoot = "/api/v1"

// RestClient holds the HTTP transport and endpoint of the platform
type RestClient struct {
	Client  *http.Client
	Scheme  string
	Host    string
	APIRoot string
	Token   string
}

// AuthAPIClient contains authenticated rest client and customer UUID
type AuthAPIClient struct {
	RestClient   *RestClient
	CustomerUUID string
}

// SetVersion assigns the version of the console
func SetVersion(version string) {
	cliVersion = strings.TrimSpace(version)
}

// GetVersion fetches the version of the console
func GetVersion() string {
	return cliVersion
}

// NewAuthAPIClient returns a new AuthAPIClient configured from viper
func NewAuthAPIClient() (*AuthAPIClient, error) {
	host := viper.GetString("host")
	if len(host) == 0 {
		return nil, errors.New("no valid host detected, set --host or YBA_HOST")
	}
	endpoint, err := ParseURL(host)
	if err != nil {
		return nil, err
	}

	apiToken := viper.GetString("apiToken")
	if len(apiToken) == 0 {
		return nil, errors.New(
			"no valid API token detected, set --apiToken or YBA_APITOKEN")
	}

	authAPI, err := NewAuthAPIClientInitialize(
		endpoint,
		apiToken,
		viper.GetString("api-root"),
		viper.GetBool("insecure"),
		viper.GetString("ca-cert"),
	)
	if err != nil {
		return nil, err
	}
	authAPI.CustomerUUID = viper.GetString("customer-uuid")
	return authAPI, nil
}

// NewAuthAPIClientInitialize returns a new AuthAPIClient for the given endpoint
func NewAuthAPIClientInitialize(
	endpoint *url.URL,
	apiToken, apiRoot string,
	insecure bool,
	caCertPath string,
) (*AuthAPIClient, error) {
	if apiRoot == "" {
		apiRoot = DefaultAPIRoot
	}
	httpClient := &http.Client{Timeout: 2 * time.Minute}
	if endpoint.Scheme == "https" {
		tlsConfig := &tls.Config{InsecureSkipVerify: insecure}
		if !insecure && caCertPath != "" {
			caCert, err := os.ReadFile(caCertPath)
			if err != nil {
				return nil, errors.Wrap(err, "reading CA certificate")
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(caCert) {
				return nil, fmt.Errorf("no certificates found in %s", caCertPath)
			}
			tlsConfig.RootCAs = pool
		}
		httpClient.Transport = &http.Transport{TLSClientConfig: tlsConfig}
	}

	return &AuthAPIClient{
		RestClient: &RestClient{
			Client:  httpClient,
			Scheme:  endpoint.Scheme,
			Host:    endpoint.Host,
			APIRoot: "/" + strings.Trim(apiRoot, "/"),
			Token:   apiToken,
		},
	}, nil
}

// NewAuthAPIClientAndCustomer builds the client and resolves the customer UUID
func NewAuthAPIClientAndCustomer(ctx context.Context) (*AuthAPIClient, error) {
	authAPI, err := NewAuthAPIClient()
	if err != nil {
		return nil, err
	}
	if err := authAPI.GetCustomerUUID(ctx); err != nil {
		return nil, err
	}
	return authAPI, nil
}

// ParseURL returns a URL if string is valid, or returns error
func ParseURL(host string) (*url.URL, error) {
	if strings.HasPrefix(strings.ToLower(host), "http://") {
		logrus.Debugf("You are using insecure api endpoint %s\n", host)
	} else if !strings.HasPrefix(strings.ToLower(host), "https://") {
		host = "https://" + host
	}

	endpoint, err := url.ParseRequestURI(host)
	if err != nil {
		return nil, fmt.Errorf("could not parse host url (%s): %w", host, err)
	}
	return endpoint, nil
}

// RootURL is the base every route is resolved against, e.g. http://host:9000/api/v1
func (a *AuthAPIClient) RootURL() string {
	return fmt.Sprintf("%s://%s%s", a.RestClient.Scheme, a.RestClient.Host, a.RestClient.APIRoot)
}
