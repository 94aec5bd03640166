package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	neturl "net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client drives the application over HTTP. The cookie jar carries the
// session cookie across requests, so each Client is one user.
type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, fmt.Errorf("create unsafe cookie jar: %w", err)
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return fmt.Errorf("close response body: %w", err)
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) > timeout {
				return fmt.Errorf("timed out waiting for %s", urlPath)
			}
			time.Sleep(10 * time.Millisecond) //nolint:mnd // polling interval.
		}
	}
}

// GetJSON fetches urlPath and decodes the JSON response into dst when dst is
// non-nil. It returns the HTTP status code.
func (c *Client) GetJSON(ctx context.Context, urlPath string, dst any) (int, error) {
	return c.doJSON(ctx, http.MethodGet, urlPath, nil, dst)
}

// PostJSON sends body as JSON to urlPath and decodes the response into dst
// when dst is non-nil. It returns the HTTP status code.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body any, dst any) (int, error) {
	return c.doJSON(ctx, http.MethodPost, urlPath, body, dst)
}

func (c *Client) doJSON(ctx context.Context, method, urlPath string, body any, dst any) (_ int, err error) {
	var reqBody io.Reader
	if body != nil {
		encoded, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return 0, fmt.Errorf("marshal request body: %w", marshalErr)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, reqBody)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close response body: %w", closeErr)
		}
	}()

	if dst != nil {
		raw, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return resp.StatusCode, fmt.Errorf("read response body: %w", readErr)
		}
		if len(raw) > 0 {
			if err = json.Unmarshal(raw, dst); err != nil {
				return resp.StatusCode, fmt.Errorf("unmarshal response %q: %w", string(raw), err)
			}
		}
	}

	return resp.StatusCode, nil
}

// GetDoc fetches urlPath and parses the response as an HTML document.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (_ *goquery.Document, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+urlPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, urlPath)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// unsafeCookieJar stores cookies as if every request went over HTTPS so that
// Secure session cookies work against the plain-HTTP test server.
type unsafeCookieJar struct {
	jar http.CookieJar
}

func newUnsafeCookieJar() (*unsafeCookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("new cookie jar: %w", err)
	}
	return &unsafeCookieJar{jar: jar}, nil
}

func (j *unsafeCookieJar) SetCookies(u *neturl.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(secureURL(u), cookies)
}

func (j *unsafeCookieJar) Cookies(u *neturl.URL) []*http.Cookie {
	return j.jar.Cookies(secureURL(u))
}

func secureURL(u *neturl.URL) *neturl.URL {
	if u.Scheme != "http" {
		return u
	}
	secure := *u
	secure.Scheme = "https"
	return &secure
}
