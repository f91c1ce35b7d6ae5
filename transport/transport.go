// Package transport implements the request pipeline (C8): request framing,
// canonical header construction, HMAC-SHA1 signing, HTTP dispatch, status
// handling, error mapping, and a pluggable retry policy. It is the layer
// the operation builders in the root tablestore package call through, via
// Dispatcher.Call.
package transport

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/gozstd"

	"github.com/go-tablestore/tablestore/metrics"
	"github.com/go-tablestore/tablestore/opcode"
	"github.com/go-tablestore/tablestore/pb"
	"github.com/go-tablestore/tablestore/tserrors"
)

// zstdEncoding is the Content-Encoding value a compressed request body and,
// when echoed back by the server, a compressed response body carries.
const zstdEncoding = "zstd"

var warn = log.New(os.Stdout, "transport: ", log.LstdFlags|log.Lshortfile)

// apiVersion is the fixed x-ots-apiversion header value (spec §4.7.2).
const apiVersion = "2015-12-31"

// userAgent is the fixed library identifier string sent as User-Agent.
const userAgent = "go-tablestore-client/1.0"

// Credentials names the access key pair (and optional STS token) a Client
// signs requests with.
type Credentials struct {
	AccessKeyID     string
	AccessKeySecret string
	StsToken        string
}

// RetryPolicy decides whether a failed RPC should be retried. The default
// policy (see NoRetry) never retries; implementations are free to inspect
// the API error code and apply backoff before the caller re-dispatches.
type RetryPolicy interface {
	ShouldRetry(op opcode.Op, apiErr *tserrors.ApiError) bool
}

// noRetry is the default RetryPolicy: never retry.
type noRetry struct{}

func (noRetry) ShouldRetry(opcode.Op, *tserrors.ApiError) bool { return false }

// NoRetry is the default, no-op RetryPolicy.
var NoRetry RetryPolicy = noRetry{}

// MaxRetries caps how many extra attempts Dispatcher.Send will make when the
// RetryPolicy asks for a retry, guarding against an unbounded loop on a
// policy that always returns true.
const MaxRetries = 3

// Options carries a per-request override; the zero value means "use the
// Client's default".
type Options struct {
	TimeoutMs int64 // 0 means "use the client default"

	// Compressed asks NewRequest to zstd-compress body before framing it,
	// for the large-payload operations (BulkImport, BulkExport,
	// PutTimeseriesData) once they cross Config.CompressionThresholdBytes.
	Compressed bool
}

// Request is the framed RPC described in spec §4.7.1.
type Request struct {
	Method    string // defaults to POST
	Operation opcode.Op
	Headers   map[string]string
	Query     map[string]string
	Body      []byte
	Options   Options
	compressed bool
}

// NewRequest builds a Request with Method defaulted to POST and an empty
// header/query map, ready for PrepareHeaders. When opts.Compressed is set,
// body is zstd-compressed immediately so CanonicalString/Sign/PrepareHeaders
// all see the bytes actually sent over the wire.
func NewRequest(op opcode.Op, body []byte, opts Options) *Request {
	compressed := false
	if opts.Compressed {
		body = gozstd.Compress(nil, body)
		compressed = true
	}
	return &Request{
		Method:     http.MethodPost,
		Operation:  op,
		Headers:    make(map[string]string),
		Query:      make(map[string]string),
		Body:       body,
		Options:    opts,
		compressed: compressed,
	}
}

// PrepareHeaders sets every header spec §4.7.2 requires (all but the
// signature, which SignRequest adds last).
func (r *Request) PrepareHeaders(creds Credentials, instanceName string, now time.Time) {
	r.Headers["User-Agent"] = userAgent
	r.Headers["x-ots-apiversion"] = apiVersion
	r.Headers["x-ots-date"] = now.UTC().Format("2006-01-02T15:04:05.000Z")
	r.Headers["x-ots-accesskeyid"] = creds.AccessKeyID
	r.Headers["x-ots-instancename"] = instanceName
	if creds.StsToken != "" {
		r.Headers["x-ots-ststoken"] = creds.StsToken
	}
	if r.compressed {
		r.Headers["Content-Encoding"] = zstdEncoding
	}
	sum := md5.Sum(r.Body)
	r.Headers["x-ots-contentmd5"] = base64.StdEncoding.EncodeToString(sum[:])
	r.Headers["Content-Length"] = strconv.Itoa(len(r.Body))
}

// CanonicalString builds the string_to_sign spec §4.7.3 describes: every
// x-ots-* header except x-ots-signature, lowercased and sorted, joined
// with the operation name and method.
func (r *Request) CanonicalString() string {
	lines := make([]string, 0, len(r.Headers))
	for k, v := range r.Headers {
		lk := strings.ToLower(k)
		if !strings.HasPrefix(lk, "x-ots-") || lk == "x-ots-signature" {
			continue
		}
		lines = append(lines, lk+":"+v)
	}
	sort.Strings(lines)
	canonical := strings.Join(lines, "\n")
	method := r.Method
	if method == "" {
		method = http.MethodPost
	}
	return "/" + r.Operation.String() + "\n" + method + "\n\n" + canonical + "\n"
}

// Sign computes the HMAC-SHA1 signature over CanonicalString() and sets
// x-ots-signature, per spec §4.7.3 steps 6-7. It must be called after
// PrepareHeaders and after every other x-ots-* header is in place.
func (r *Request) Sign(accessKeySecret string) {
	mac := hmac.New(sha1.New, []byte(accessKeySecret))
	mac.Write([]byte(r.CanonicalString()))
	r.Headers["x-ots-signature"] = base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Dispatcher sends a framed Request over HTTP and returns the raw response
// body of a 2xx reply, or an error: TransportError, IoError, ApiError or
// StatusError.
type Dispatcher struct {
	HTTPClient   *http.Client
	Endpoint     string
	Creds        Credentials
	InstanceName string
	DefaultTimeoutMs int64
	Retry        RetryPolicy
}

// NewDispatcher builds a Dispatcher with NoRetry and a default *http.Client
// if httpClient is nil.
func NewDispatcher(endpoint string, creds Credentials, instanceName string, httpClient *http.Client) *Dispatcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Dispatcher{
		HTTPClient:   httpClient,
		Endpoint:     endpoint,
		Creds:        creds,
		InstanceName: instanceName,
		Retry:        NoRetry,
	}
}

// Send prepares headers, signs, dispatches req, and maps the HTTP result
// per spec §4.7.5, retrying according to d.Retry up to MaxRetries times.
func (d *Dispatcher) Send(ctx context.Context, req *Request) ([]byte, error) {
	timer := metrics.RequestLatency.WithLabelValues(req.Operation.String())
	start := time.Now()
	defer func() { timer.Observe(time.Since(start).Seconds()) }()

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		body, err := d.sendOnce(ctx, req)
		if err == nil {
			metrics.RequestCount.WithLabelValues(req.Operation.String(), "ok").Inc()
			return body, nil
		}
		lastErr = err
		apiErr, ok := err.(*tserrors.ApiError)
		if !ok {
			metrics.RequestCount.WithLabelValues(req.Operation.String(), outcomeOf(err)).Inc()
			return nil, err
		}
		metrics.RequestCount.WithLabelValues(req.Operation.String(), "api_error").Inc()
		if attempt == MaxRetries || !d.Retry.ShouldRetry(req.Operation, apiErr) {
			return nil, err
		}
		metrics.RetryCount.WithLabelValues(req.Operation.String(), apiErr.Code).Inc()
		warn.Printf("retrying %s after %s (attempt %d)", req.Operation, apiErr.Code, attempt+1)
	}
	return nil, lastErr
}

// Call frames body as a Request for op with opts and dispatches it,
// the entry point the operation builders in the root tablestore package use.
func (d *Dispatcher) Call(ctx context.Context, op opcode.Op, body []byte, opts Options) ([]byte, error) {
	return d.Send(ctx, NewRequest(op, body, opts))
}

func outcomeOf(err error) string {
	switch err.(type) {
	case *tserrors.StatusError:
		return "status_error"
	case *tserrors.TransportError:
		return "transport_error"
	default:
		return "error"
	}
}

func (d *Dispatcher) sendOnce(ctx context.Context, req *Request) ([]byte, error) {
	now := time.Now()
	req.PrepareHeaders(d.Creds, d.InstanceName, now)
	req.Sign(d.Creds.AccessKeySecret)

	timeoutMs := req.Options.TimeoutMs
	if timeoutMs == 0 {
		timeoutMs = d.DefaultTimeoutMs
	}
	httpCtx := ctx
	if timeoutMs > 0 {
		var cancel context.CancelFunc
		httpCtx, cancel = context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
	}

	method := req.Method
	if method == "" {
		method = http.MethodPost
	}
	url := d.Endpoint + req.Operation.Path()
	httpReq, err := http.NewRequestWithContext(httpCtx, method, url, bytes.NewReader(req.Body))
	if err != nil {
		return nil, &tserrors.TransportError{Op: req.Operation.String(), Err: err}
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := d.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &tserrors.TransportError{Op: req.Operation.String(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &tserrors.IoError{Err: err}
	}
	if resp.Header.Get("Content-Encoding") == zstdEncoding {
		respBody, err = gozstd.Decompress(nil, respBody)
		if err != nil {
			return nil, &tserrors.TransportError{Op: req.Operation.String(), Err: err}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if apiErr, ok := pb.UnmarshalError(respBody); ok {
			return nil, &tserrors.ApiError{Code: apiErr.Code, Message: apiErr.Message}
		}
		excerpt := string(respBody)
		if len(excerpt) > 256 {
			excerpt = excerpt[:256]
		}
		return nil, &tserrors.StatusError{Status: resp.StatusCode, BodyExcerpt: excerpt}
	}
	return respBody, nil
}

// ParseEndpoint extracts the instance name and region from an endpoint of
// the form scheme://instance.region.rest, per spec §4.8. An endpoint
// without at least two dot-separated segments after the scheme is a
// construction-time fatal error.
func ParseEndpoint(endpoint string) (instance, region string, err error) {
	rest := endpoint
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	parts := strings.Split(rest, ".")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("transport: endpoint %q has fewer than two dot-separated segments after the scheme", endpoint)
	}
	return parts[0], parts[1], nil
}
