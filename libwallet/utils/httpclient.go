package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"decred.org/dcrwallet/v2/errors"
)

const (
	// Default http client timeout in secs.
	defaultHTTPClientTimeout = 10 * time.Second
)

type (
	// Client is the base for http/https calls
	Client struct {
		httpClient *http.Client
	}

	// ReqConfig models the configuration options for requests.
	ReqConfig struct {
		Payload []byte
		Method  string
		HTTPURL string
		// IsActive should always be true, signifying that the user has authorised
		// the specific API call to access the internet.
		IsActive bool
	}
)

// NewClient configures and return a new client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   defaultHTTPClientTimeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	}
}

func (c *Client) requestFilter(ctx context.Context, reqConfig *ReqConfig) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, reqConfig.Method, reqConfig.HTTPURL, bytes.NewBuffer(reqConfig.Payload))
	if err != nil {
		return nil, err
	}
	if reqConfig.Method == http.MethodPost || reqConfig.Method == http.MethodPut {
		req.Header.Add("Content-Type", "application/json;charset=utf-8")
	}
	req.Header.Add("Accept", "application/json")
	return req, nil
}

// Do prepares and processes an HTTP request and decodes the JSON body into
// response.
func (c *Client) Do(ctx context.Context, reqConfig *ReqConfig, response interface{}) error {
	const op errors.Op = "utils.Client.Do"
	if !reqConfig.IsActive {
		return errors.E(op, errors.Permission, errors.New(ErrAPICallNotAllowed))
	}

	if _, err := url.ParseRequestURI(reqConfig.HTTPURL); err != nil {
		return errors.E(op, errors.Invalid, fmt.Errorf("url not properly constituted: %v", err))
	}

	req, err := c.requestFilter(ctx, reqConfig)
	if err != nil {
		return errors.E(op, errors.Invalid, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.E(op, errors.IO, fmt.Errorf("status: %v resp: %s", resp.Status, body))
	}

	if err = json.Unmarshal(body, response); err != nil {
		return errors.E(op, errors.Encoding, err)
	}
	return nil
}
