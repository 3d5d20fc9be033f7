// Package adtest answers All Dressed API calls with canned responses so that
// code built on alldressed.Client can be tested without network access.
//
//	cli, fake := adtest.New(t, "acc")
//	fake.Data("zones/H0H0H0", map[string]any{"id": "qc", "name": "Quebec"})
//
//	zone, err := cli.Zones().ForPostcode("H0H0H0").First(ctx)
//
// Patterns are paths relative to the account. They may be prefixed by a
// method ("DELETE subscriptions/*/discount") and contain "*" wildcards. A
// pattern with a query string only matches that query.
package adtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/all-dressed/alldressed-go/internal/client"
	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// APIBase is the base URL of clients returned by New.
const APIBase = "https://api.alldressed.test"

// APIKey is the key sent by clients returned by New.
const APIKey = "adtest"

// Request is a request seen by a Fake.
type Request struct {
	Method string
	// Path is relative to the account, e.g. "zones/H0H0H0".
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the body into a map.
func (r Request) JSON() map[string]any {
	var out map[string]any
	_ = json.Unmarshal(r.Body, &out)

	return out
}

// Fake records requests and answers them from registered responses. Requests
// without a response fail with internalhttp.ErrUnexpectedRequest.
type Fake struct {
	transport *internalhttp.FakeTransport
}

// New returns a client of accountID answered by the returned Fake.
func New(tb testing.TB, accountID string) (alldressed.Client, *Fake) {
	tb.Helper()

	fake := &Fake{transport: internalhttp.NewFakeTransport()}

	c, err := client.New(&alldressed.Config{
		AccountID: accountID,
		APIBase:   APIBase,
		APIKey:    APIKey,
	}, internalhttp.WithTransport(fake.transport))
	if err != nil {
		tb.Fatalf("creating fake client: %v", err)
	}

	return c, fake
}

// Respond answers pattern with status and body. A string or []byte body is
// sent as is, anything else is encoded as JSON.
func (f *Fake) Respond(pattern string, status int, body any) *Fake {
	f.transport.Fake(pattern, internalhttp.FakeResponse{StatusCode: status, Body: body})

	return f
}

// JSON answers pattern with a 200 and body encoded as JSON.
func (f *Fake) JSON(pattern string, body any) *Fake {
	return f.Respond(pattern, http.StatusOK, body)
}

// Data answers pattern with a 200 whose envelope holds data.
func (f *Fake) Data(pattern string, data any) *Fake {
	return f.JSON(pattern, map[string]any{"data": data})
}

// Error answers pattern with status and an error message.
func (f *Fake) Error(pattern string, status int, message string) *Fake {
	return f.Respond(pattern, status, map[string]any{"message": message})
}

// YAML answers pattern with a 200 whose body is the YAML document converted
// to JSON. It is convenient for fixtures kept in testdata.
func (f *Fake) YAML(pattern string, document []byte) (*Fake, error) {
	var body any
	if err := yaml.Unmarshal(document, &body); err != nil {
		return f, fmt.Errorf("parsing fixture for %s: %w", pattern, err)
	}

	return f.JSON(pattern, body), nil
}

// Requests returns the requests seen so far.
func (f *Fake) Requests() []Request {
	recorded := f.transport.Requests()
	out := make([]Request, 0, len(recorded))

	for _, r := range recorded {
		out = append(out, Request{
			Method: r.Method,
			Path:   r.Path,
			Query:  r.Query,
			Header: r.Header,
			Body:   r.Body,
		})
	}

	return out
}

// Last returns the most recent request, or false when none was sent.
func (f *Fake) Last() (Request, bool) {
	requests := f.Requests()
	if len(requests) == 0 {
		return Request{}, false
	}

	return requests[len(requests)-1], true
}
