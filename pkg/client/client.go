package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/tracing"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
)

// ConfirmationHeader mirrors the header the server reads the clear log confirmation from.
const ConfirmationHeader string = "X-Confirmation"

var tracer = otel.Tracer("asset-inventory-client")

type InventoryClient interface {
	SignIn(ctx context.Context, email, password string) (types.Session, error)
	Dashboard(ctx context.Context) (types.Dashboard, error)
	ExportInventory(ctx context.Context, encoding string) (Report, error)
	ExportActivity(ctx context.Context, encoding string) (Report, error)
	ClearLog(ctx context.Context, confirmation string) (types.ClearResult, error)
	Close(ctx context.Context)
}

type Report struct {
	Filename    string
	ContentType string
	Body        []byte
}

// NoticeError is returned when the server answers with an error notice.
type NoticeError struct {
	StatusCode int
	Notice     types.Notice
}

func (e *NoticeError) Error() string {
	if e.Notice.Title == "" {
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (%d)", e.Notice.Title, e.Notice.Description, e.StatusCode)
}

type inventoryClient struct {
	url        string
	httpClient *http.Client
}

// New returns a client for the inventory api at url. Requests carry token as a
// bearer token unless it is empty.
func New(ctx context.Context, url, token string) (InventoryClient, error) {
	if url == "" {
		return nil, errors.New("inventory api url must not be empty")
	}

	base := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c := &inventoryClient{
		url:        strings.TrimSuffix(url, "/"),
		httpClient: base,
	}

	if token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
		c.httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		}))
	}

	return c, nil
}

func (c *inventoryClient) SignIn(ctx context.Context, email, password string) (types.Session, error) {
	var err error
	ctx, span := tracer.Start(ctx, "sign-in")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(types.Credentials{Email: email, Password: password})
	if err != nil {
		return types.Session{}, err
	}

	session := types.Session{}
	_, err = c.do(ctx, http.MethodPost, "/api/v0/auth/signin", bytes.NewReader(body), nil, &session)

	return session, err
}

func (c *inventoryClient) Dashboard(ctx context.Context) (types.Dashboard, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-dashboard")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	d := types.Dashboard{}
	_, err = c.do(ctx, http.MethodGet, "/api/v0/dashboard", nil, nil, &d)

	return d, err
}

func (c *inventoryClient) ExportInventory(ctx context.Context, encoding string) (Report, error) {
	var err error
	ctx, span := tracer.Start(ctx, "export-inventory")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	r, err := c.report(ctx, "/api/v0/reports/inventory", encoding)
	return r, err
}

func (c *inventoryClient) ExportActivity(ctx context.Context, encoding string) (Report, error) {
	var err error
	ctx, span := tracer.Start(ctx, "export-activity")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	r, err := c.report(ctx, "/api/v0/reports/activity", encoding)
	return r, err
}

func (c *inventoryClient) ClearLog(ctx context.Context, confirmation string) (types.ClearResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "clear-log")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.ClearResult{}
	_, err = c.do(ctx, http.MethodDelete, "/api/v0/activity", nil, http.Header{ConfirmationHeader: []string{confirmation}}, &result)

	return result, err
}

func (c *inventoryClient) Close(ctx context.Context) {
	c.httpClient.CloseIdleConnections()
}

func (c *inventoryClient) report(ctx context.Context, path, encoding string) (Report, error) {
	if encoding != "" {
		path = path + "?encoding=" + url.QueryEscape(encoding)
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, nil)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		ContentType: resp.header.Get("Content-Type"),
		Body:        resp.body,
	}

	if _, params, err := mime.ParseMediaType(resp.header.Get("Content-Disposition")); err == nil {
		r.Filename = params["filename"]
	}

	return r, nil
}

type response struct {
	header http.Header
	body   []byte
}

func (c *inventoryClient) do(ctx context.Context, method, path string, body io.Reader, header http.Header, result any) (response, error) {
	log := logging.GetLoggerFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return response{}, fmt.Errorf("failed to create http request: %w", err)
	}

	for k, v := range header {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		nerr := &NoticeError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, &nerr.Notice)
		log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("request failed")
		return response{}, nerr
	}

	if result != nil {
		if err = json.Unmarshal(respBody, result); err != nil {
			return response{}, fmt.Errorf("failed to unmarshal response body: %w", err)
		}
	}

	return response{header: resp.Header, body: respBody}, nil
}
