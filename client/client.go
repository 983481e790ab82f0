// Copyright 2025 The dotNetRDF Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package client implements the SPARQL protocol client used to evaluate
// queries against remote endpoints. The client is protocol glue: it selects
// GET or POST, negotiates the response media type, and hands the body to the
// results parser.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Geovanny27/dotnetrdf/logging"
	"github.com/Geovanny27/dotnetrdf/metrics"
	"github.com/Geovanny27/dotnetrdf/resultset"
)

// DefaultAccept is the Accept header sent when the config does not override
// it.
const DefaultAccept = "application/sparql-results+json, application/sparql-results+xml;q=0.9"

// DefaultMaxURLLength is the longest encoded GET URL the client will issue
// before switching to POST.
const DefaultMaxURLLength = 2048

// Config represents configuration for a protocol client.
type Config struct {
	Endpoint      string            `json:"endpoint"`
	DefaultGraphs []string          `json:"default_graphs,omitempty"`
	NamedGraphs   []string          `json:"named_graphs,omitempty"`
	Accept        string            `json:"accept,omitempty"`
	MaxURLLength  int               `json:"max_url_length,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	Timeout       time.Duration     `json:"timeout,omitempty"`
}

func (c *Config) validateAndInjectDefaults() error {
	c.Endpoint = strings.TrimRight(c.Endpoint, "/")
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must be set")
	}
	if _, err := url.Parse(c.Endpoint); err != nil {
		return err
	}
	if c.Accept == "" {
		c.Accept = DefaultAccept
	}
	if c.MaxURLLength == 0 {
		c.MaxURLLength = DefaultMaxURLLength
	}
	return nil
}

// Client issues SPARQL protocol requests against one endpoint.
type Client struct {
	Client  http.Client
	config  Config
	logger  logging.Logger
	metrics metrics.Metrics
}

// New returns a new Client for the config.
func New(config Config) (*Client, error) {
	if err := config.validateAndInjectDefaults(); err != nil {
		return nil, err
	}
	c := &Client{
		config:  config,
		logger:  logging.NewNoOpLogger(),
		metrics: metrics.NoOp(),
	}
	c.Client.Timeout = config.Timeout
	return c, nil
}

// WithLogger sets the logger used for request debugging.
func (c *Client) WithLogger(l logging.Logger) *Client {
	c.logger = l
	return c
}

// WithMetrics sets the metrics collector.
func (c *Client) WithMetrics(m metrics.Metrics) *Client {
	c.metrics = m
	return c
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// Error is returned for non-2xx endpoint responses. It is terminal for the
// query call; the client never retries.
type Error struct {
	StatusCode int
	Status     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote query failure: %v", e.Status)
}

// Do issues the query and returns the raw HTTP response. The caller owns the
// response body. The request is a GET with an encoded query component when
// the resulting URL fits the configured maximum length and a form-encoded
// POST otherwise. Non-2xx responses are returned as *Error.
func (c *Client) Do(ctx context.Context, query string) (*http.Response, error) {
	timer := c.metrics.Timer(metrics.RemoteQuery)
	timer.Start()
	defer timer.Stop()

	params := url.Values{}
	params.Set("query", query)
	for _, g := range c.config.DefaultGraphs {
		params.Add("default-graph-uri", g)
	}
	for _, g := range c.config.NamedGraphs {
		params.Add("named-graph-uri", g)
	}
	encoded := params.Encode()

	var req *http.Request
	var err error
	target := c.config.Endpoint + "?" + encoded
	if len(target) <= c.config.MaxURLLength {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, strings.NewReader(encoded))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", c.config.Accept)
	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}

	c.logger.Debug("Sending %v request to %v (%d byte query).", req.Method, c.config.Endpoint, len(query))

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		c.metrics.Counter(metrics.RemoteQuery + "_error").Incr()
		return nil, &Error{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}

// Query issues the query and decodes the response as SPARQL results JSON.
// Blank nodes in the results are scoped to the endpoint URL.
func (c *Client) Query(ctx context.Context, query string) (*resultset.ResultSet, error) {
	resp, err := c.Do(ctx, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return resultset.DecodeJSON(resp.Body, c.config.Endpoint)
}
