// Package tablestore is a client for a hosted wide-column + time-series
// datastore. It exposes one entry-point method per RPC (package-level
// Client methods returning an immutable, fluent operation builder) backed
// by the PlainBuffer/SimpleRowMatrix row codecs and a signed HTTP request
// pipeline.
package tablestore

import (
	"log"
	"net/http"
	"os"

	"github.com/m-lab/go/rtx"

	"github.com/go-tablestore/tablestore/transport"
)

var info = log.New(os.Stdout, "tablestore: ", log.LstdFlags|log.Lshortfile)

// Config configures a Client, in the style of bigtable.ClientConfig: a
// plain struct of connection parameters rather than a config file.
type Config struct {
	Endpoint        string
	InstanceName    string
	AccessKeyID     string
	AccessKeySecret string
	StsToken        string

	// DefaultTimeoutMs applies to every request unless overridden by the
	// operation builder's TimeoutMs setter. Zero means no deadline beyond
	// the HTTPClient's own.
	DefaultTimeoutMs int64

	// Retry is consulted after every ApiError; nil means transport.NoRetry
	// (never retry).
	Retry transport.RetryPolicy

	// HTTPClient is the transport the Dispatcher sends requests over; nil
	// builds a default client with a 30s timeout.
	HTTPClient *http.Client

	// CompressionThresholdBytes enables zstd compression of BulkImport/
	// BulkExport/PutTimeseriesData request bodies once the encoded body
	// reaches this many bytes. Zero disables compression.
	CompressionThresholdBytes int
}

// Client is the façade described in spec §4.9/C9: it holds credentials,
// endpoint, instance name, HTTP client, and default options, and is cheap
// to share (it carries no mutable state of its own beyond what the
// transport requires).
type Client struct {
	dispatcher *transport.Dispatcher
	cfg        Config
}

// NewClient validates cfg and builds a Client. It returns an error if the
// endpoint cannot be parsed (spec §4.8) rather than panicking, so library
// callers can handle misconfiguration; see MustNewClient for a
// fail-fast convenience wrapper used by examples and tests.
func NewClient(cfg Config) (*Client, error) {
	if _, _, err := transport.ParseEndpoint(cfg.Endpoint); err != nil {
		return nil, err
	}
	d := transport.NewDispatcher(cfg.Endpoint, transport.Credentials{
		AccessKeyID:     cfg.AccessKeyID,
		AccessKeySecret: cfg.AccessKeySecret,
		StsToken:        cfg.StsToken,
	}, cfg.InstanceName, cfg.HTTPClient)
	d.DefaultTimeoutMs = cfg.DefaultTimeoutMs
	if cfg.Retry != nil {
		d.Retry = cfg.Retry
	}
	return &Client{dispatcher: d, cfg: cfg}, nil
}

// compressIfLarge reports whether body should be zstd-compressed before
// dispatch, per Config.CompressionThresholdBytes.
func (c *Client) compressIfLarge(body []byte) bool {
	return c.cfg.CompressionThresholdBytes > 0 && len(body) >= c.cfg.CompressionThresholdBytes
}

// MustNewClient is a fail-fast convenience constructor for examples and
// tests, mirroring active.MustStorageClient's use of rtx.Must: endpoint
// parsing is the only way construction can fail, and a bad endpoint in an
// example or test is a programmer error worth crashing on immediately.
func MustNewClient(cfg Config) *Client {
	c, err := NewClient(cfg)
	rtx.Must(err, "failed to construct tablestore client")
	return c
}

// CredentialsFromEnv reads ALIYUN_OTS_AK_ID, ALIYUN_OTS_AK_SEC, and
// ALIYUN_OTS_ENDPOINT (spec §6.5). It is a thin seam over os.Getenv, not a
// full credential-acquisition system (STS refresh, instance-metadata
// lookup, etc. stay out of core scope per spec.md §1).
func CredentialsFromEnv() (accessKeyID, accessKeySecret, endpoint string) {
	return os.Getenv("ALIYUN_OTS_AK_ID"), os.Getenv("ALIYUN_OTS_AK_SEC"), os.Getenv("ALIYUN_OTS_ENDPOINT")
}
