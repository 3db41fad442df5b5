// Package soda provides a read-only client for Socrata Open Data API (SODA)
// endpoints: a paginating row iterator over a dataset's JSON resource and a
// parser for the API's floating timestamp format.
//
// Reference: https://dev.socrata.com/docs/endpoints.html
package soda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// pageSize is the fixed $limit sent with every page request. A page shorter
// than this is the end-of-data sentinel; a page of exactly this size is
// always treated as possibly non-final, so a dataset whose row count is an
// exact multiple of pageSize costs one extra trailing request.
const pageSize = 20000

// Row is one dataset record as decoded from a JSON array element. The field
// set is determined entirely by the remote dataset and the system-fields
// flag; there is no fixed schema.
type Row map[string]any

// Client fetches dataset rows from a SODA host.
type Client struct {
	http *http.Client
	log  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for page requests. The default
// client imposes no timeout; whatever timeout the supplied client carries
// governs each page fetch.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger for per-page debug output. Defaults to a nop
// logger; the client never touches the process-global logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a SODA client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rows returns a single-pass iterator over every row of the given dataset,
// in server order. Pages of pageSize rows are fetched with successive
// $offset requests, one request in flight at a time; each page is fully
// decoded before any of its rows is yielded. Iteration ends after the first
// page shorter than pageSize, or with a non-nil error: *TransportError for a
// network failure or non-2xx status, *FormatError when a page body is not a
// JSON array. Rows yielded before a failing page remain valid. There are no
// retries; a single remote error ends the sequence.
//
// systemFields controls whether Socrata's internal :id/:created_at/... fields
// are included. Each call starts a fresh cursor at offset 0; concurrent
// iterations are independent. Abandoning the iterator early is safe and
// issues no further requests.
func (c *Client) Rows(ctx context.Context, apiHost, datasetID string, systemFields bool) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		offset := 0
		for {
			page, err := c.fetchPage(ctx, apiHost, datasetID, offset, systemFields)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, row := range page {
				if !yield(row, nil) {
					return
				}
			}
			if len(page) < pageSize {
				return
			}
			offset += len(page)
		}
	}
}

// fetchPage requests one page and decodes it completely. The response body
// is read as UTF-8 with invalid byte sequences replaced by U+FFFD rather
// than rejected, and is always closed before returning.
func (c *Client) fetchPage(ctx context.Context, apiHost, datasetID string, offset int, systemFields bool) ([]Row, error) {
	reqURL := fmt.Sprintf("http://%s/resource/%s.json?$offset=%d&$limit=%d&$$exclude_system_fields=%s",
		apiHost, datasetID, offset, pageSize, strconv.FormatBool(!systemFields))

	c.log.Debug("fetching rows",
		zap.String("dataset", datasetID),
		zap.Int("offset", offset),
		zap.Int("limit", pageSize),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(transform.NewReader(resp.Body, runes.ReplaceIllFormed()))
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}

	var page []Row
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &FormatError{
			Reason: fmt.Sprintf("decode page at offset %d of %s", offset, datasetID),
			Err:    err,
		}
	}

	return page, nil
}
