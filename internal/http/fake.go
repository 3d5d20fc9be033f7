package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/all-dressed/alldressed-go/internal/constants"
)

// ErrUnexpectedRequest is returned by a FakeTransport for requests without a
// canned response.
var ErrUnexpectedRequest = errors.New("no fake response registered for request")

// FakeResponse is a canned answer. Body is sent as is when it is a string or
// a []byte and encoded as JSON otherwise.
type FakeResponse struct {
	StatusCode int
	Body       any
	Header     http.Header
}

// RecordedRequest is a request seen by a FakeTransport.
type RecordedRequest struct {
	Method string
	// Path is relative to the account, e.g. "zones/H0H0H0".
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the recorded body into a map.
func (r RecordedRequest) JSON() map[string]any {
	var out map[string]any
	_ = json.Unmarshal(r.Body, &out)

	return out
}

type fakeRoute struct {
	pattern *regexp.Regexp
	method  string
	resp    FakeResponse
}

// FakeTransport answers requests by logical path without network I/O. Patterns
// are paths relative to the account, optionally prefixed by a method
// ("DELETE customers/1/billing/methods/2") and may contain "*" wildcards.
// Routes are matched in registration order and a key including a query
// string matches only that query.
type FakeTransport struct {
	mu       sync.Mutex
	routes   []fakeRoute
	requests []RecordedRequest
}

// NewFakeTransport returns a transport without routes.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{}
}

// Fake registers response for pattern.
func (f *FakeTransport) Fake(pattern string, response FakeResponse) *FakeTransport {
	method := ""
	if before, after, found := strings.Cut(pattern, " "); found {
		method = strings.ToUpper(before)
		pattern = after
	}

	if response.StatusCode == 0 {
		response.StatusCode = http.StatusOK
	}

	expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(strings.Trim(pattern, "/")), `\*`, ".*") + "$"

	f.mu.Lock()
	defer f.mu.Unlock()

	f.routes = append(f.routes, fakeRoute{
		pattern: regexp.MustCompile(expr),
		method:  method,
		resp:    response,
	})

	return f
}

// FakeJSON registers a 200 response with body encoded as JSON.
func (f *FakeTransport) FakeJSON(pattern string, body any) *FakeTransport {
	return f.Fake(pattern, FakeResponse{StatusCode: http.StatusOK, Body: body})
}

// Requests returns the requests seen so far.
func (f *FakeTransport) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]RecordedRequest(nil), f.requests...)
}

// RoundTrip implements http.RoundTripper.
func (f *FakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte

	if req.Body != nil {
		var err error

		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading fake request body: %w", err)
		}

		_ = req.Body.Close()
	}

	path := logicalPath(req.URL.Path)
	recorded := RecordedRequest{
		Method: req.Method,
		Path:   path,
		Query:  req.URL.Query(),
		Header: req.Header.Clone(),
		Body:   body,
	}

	f.mu.Lock()
	f.requests = append(f.requests, recorded)
	route, ok := f.match(req.Method, path, req.URL.RawQuery)
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrUnexpectedRequest, req.Method, path)
	}

	payload, err := encodeFakeBody(route.resp.Body)
	if err != nil {
		return nil, err
	}

	header := route.resp.Header.Clone()
	if header == nil {
		header = http.Header{}
	}

	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}

	return &http.Response{
		Status:        http.StatusText(route.resp.StatusCode),
		StatusCode:    route.resp.StatusCode,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(payload)),
		ContentLength: int64(len(payload)),
		Request:       req,
	}, nil
}

func (f *FakeTransport) match(method, path, rawQuery string) (fakeRoute, bool) {
	candidates := []string{path}
	if rawQuery != "" {
		candidates = []string{path + "?" + rawQuery, path}
	}

	for _, candidate := range candidates {
		for _, route := range f.routes {
			if route.method != "" && route.method != method {
				continue
			}

			if route.pattern.MatchString(candidate) {
				return route, true
			}
		}
	}

	return fakeRoute{}, false
}

// logicalPath strips everything up to and including /accounts/{id}/.
func logicalPath(path string) string {
	marker := "/" + constants.AccountsSegment + "/"

	index := strings.Index(path, marker)
	if index < 0 {
		return strings.Trim(path, "/")
	}

	rest := path[index+len(marker):]
	if _, after, found := strings.Cut(rest, "/"); found {
		return strings.Trim(after, "/")
	}

	return ""
}

func encodeFakeBody(body any) ([]byte, error) {
	switch value := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(value), nil
	case []byte:
		return value, nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding fake response: %w", err)
		}

		return encoded, nil
	}
}
