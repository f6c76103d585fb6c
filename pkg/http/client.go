package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

const (
	ContentTypeJSON  = "application/json"
	ContentTypeXML   = "application/xml"
	ContentTypeText  = "text/plain"
	ContentTypeForm  = "application/x-www-form-urlencoded"
	ContentTypeOctet = "application/octet-stream"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	defaultHeaders     map[string]string
	defaultContentType string
	backoff            *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff is the default retry policy. Nil disables retries.
	Backoff *BackoffConfig
	// Logger receives request/response events. Nil disables logging.
	Logger HTTPLogger
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = ContentTypeJSON
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}
}

// BaseURL returns the normalized base URL of the client.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequestWithBackoff sends the request, retrying transient failures according to backoff
// (or the client's default policy when backoff is nil).
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if backoff == nil {
		backoff = hc.backoff
	}

	url := hc.buildURL(path)
	if len(queryParams) > 0 {
		url += "?" + buildQueryString(queryParams)
	}

	payload, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}
	reqHeaders := hc.mergeHeaders(headers, contentType)

	maxRetries := 0
	if backoff != nil {
		maxRetries = backoff.MaxRetries
	}

	for attempt := 0; ; attempt++ {
		hc.logger.LogRequest(method, url, reqHeaders, string(payload))

		start := time.Now()
		status, respBody, respContentType, err := hc.send(ctx, method, url, reqHeaders, payload)
		latency := time.Since(start).Milliseconds()

		if err == nil && status >= 200 && status < 300 {
			hc.logger.LogResponseSuccess(method, url, reqHeaders, string(payload), status, string(respBody), latency)
			if successResp != nil {
				if err := hc.unmarshalResponse(respBody, respContentType, successResp); err != nil {
					return nil, nil, status, fmt.Errorf("failed to decode response body: %w", err)
				}
			}
			return successResp, nil, status, nil
		}

		if err == nil {
			err = &StatusError{StatusCode: status}
		}

		if attempt < maxRetries && backoff.shouldRetry(ctx, status, err) {
			hc.logger.LogRequestRetry(method, url, reqHeaders, string(payload), status, string(respBody), latency, err, attempt+1, maxRetries)
			select {
			case <-ctx.Done():
				return nil, nil, status, ctx.Err()
			case <-time.After(backoff.Delay(attempt + 1)):
			}
			continue
		}

		hc.logger.LogResponseError(method, url, reqHeaders, string(payload), status, string(respBody), latency, err)

		if status != 0 && errorResp != nil {
			if uerr := hc.unmarshalResponse(respBody, respContentType, errorResp); uerr == nil {
				return nil, errorResp, status, err
			}
		}
		return nil, nil, status, err
	}
}

// send executes a single HTTP exchange. A zero status means the request never got a response.
func (hc *Client) send(ctx context.Context, method, url string, headers map[string]string, payload []byte) (int, []byte, string, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, nil, "", err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return 0, nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, "", err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}
	return resp.StatusCode, bodyBytes, respContentType, nil
}

// encodeBody serializes body once so it can be replayed on retries.
func (hc *Client) encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return []byte(body), ContentTypeText, nil
	case []byte:
		return body, ContentTypeOctet, nil
	case url.Values:
		return []byte(body.Encode()), ContentTypeForm, nil
	}

	switch hc.defaultContentType {
	case ContentTypeXML:
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return xmlBody, ContentTypeXML, nil
	case ContentTypeText:
		return []byte(fmt.Sprintf("%v", body)), ContentTypeText, nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return jsonBody, ContentTypeJSON, nil
	}
}

func (hc *Client) mergeHeaders(headers map[string]string, contentType string) map[string]string {
	merged := make(map[string]string, len(hc.defaultHeaders)+len(headers)+1)
	if contentType != "" {
		merged["Content-Type"] = contentType
	}
	for k, v := range hc.defaultHeaders {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}
	return merged
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	// Raw targets take the body as-is; text is transcoded to UTF-8 from the declared charset
	switch t := target.(type) {
	case *string:
		text, err := decodeText(bodyBytes, contentType)
		if err != nil {
			return err
		}
		*t = text
		return nil
	case *[]byte:
		*t = bodyBytes
		return nil
	}

	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

func decodeText(bodyBytes []byte, contentType string) (string, error) {
	if len(bodyBytes) == 0 {
		return "", nil
	}
	reader, err := charsetpkg.NewReader(bytes.NewReader(bodyBytes), contentType)
	if err != nil {
		return "", fmt.Errorf("unsupported charset in %q: %w", contentType, err)
	}
	text, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string from parameters
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
