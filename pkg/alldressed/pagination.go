package alldressed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// pageLinkPrefixSegments is the number of "/" separated segments dropped from
// a pagination link: scheme, empty authority separator, host, "accounts" and
// the account id.
const pageLinkPrefixSegments = 5

// Links holds the pagination links of a response envelope.
type Links struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// Meta holds the pagination metadata of a response envelope.
type Meta struct {
	CurrentPage int    `json:"current_page,omitempty"`
	From        int    `json:"from,omitempty"`
	LastPage    int    `json:"last_page,omitempty"`
	Path        string `json:"path,omitempty"`
	PerPage     int    `json:"per_page,omitempty"`
	To          int    `json:"to,omitempty"`
	Total       int    `json:"total,omitempty"`
}

// Pager fetches one page of T given a path relative to the account and its
// query.
type Pager[T any] interface {
	Page(ctx context.Context, path string, query url.Values) (*Paginated[T], error)
}

// Paginated is one page of a listing along with the links to its neighbours.
type Paginated[T any] struct {
	Items []*T  `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`

	pager Pager[T]
}

// NewPaginated returns a page that fetches its neighbours through pager.
func NewPaginated[T any](items []*T, links Links, meta Meta, pager Pager[T]) *Paginated[T] {
	return &Paginated[T]{
		Items: items,
		Links: links,
		Meta:  meta,
		pager: pager,
	}
}

// Len returns the number of items on this page.
func (p *Paginated[T]) Len() int {
	return len(p.Items)
}

// Total returns the number of items across all pages.
func (p *Paginated[T]) Total() int {
	if p.Meta.Total > 0 {
		return p.Meta.Total
	}

	return len(p.Items)
}

// TotalPages returns the number of pages.
func (p *Paginated[T]) TotalPages() int {
	if p.Meta.LastPage > 0 {
		return p.Meta.LastPage
	}

	return 1
}

// HasNext reports whether a next page link is present.
func (p *Paginated[T]) HasNext() bool {
	return p.Links.Next != ""
}

// HasPrevious reports whether a previous page link is present.
func (p *Paginated[T]) HasPrevious() bool {
	return p.Links.Prev != ""
}

// Next fetches the next page. It fails with ErrNoNextPage, without any
// request, when there is none.
func (p *Paginated[T]) Next(ctx context.Context) (*Paginated[T], error) {
	if !p.HasNext() {
		return nil, ErrNoNextPage
	}

	return p.follow(ctx, p.Links.Next)
}

// Previous fetches the previous page. It fails with ErrNoPreviousPage,
// without any request, when there is none.
func (p *Paginated[T]) Previous(ctx context.Context) (*Paginated[T], error) {
	if !p.HasPrevious() {
		return nil, ErrNoPreviousPage
	}

	return p.follow(ctx, p.Links.Prev)
}

func (p *Paginated[T]) follow(ctx context.Context, link string) (*Paginated[T], error) {
	if p.pager == nil {
		return nil, fmt.Errorf("following %s: page was not fetched by a client", link)
	}

	path, query, err := ParsePageLink(link)
	if err != nil {
		return nil, err
	}

	return p.pager.Page(ctx, path, query)
}

// ParsePageLink splits a pagination link returned by the API into the path
// relative to the account and its query.
//
//	https://api.all-dressed.io/accounts/1/customers/2/invoices?page=2
//
// yields "customers/2/invoices" and page=2.
func ParsePageLink(link string) (string, url.Values, error) {
	rest := link
	for range pageLinkPrefixSegments {
		_, after, found := strings.Cut(rest, "/")
		if !found {
			return "", nil, fmt.Errorf("parsing page link %q: unexpected format", link)
		}

		rest = after
	}

	path, rawQuery, _ := strings.Cut(rest, "?")

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", nil, fmt.Errorf("parsing page link %q: %w", link, err)
	}

	return path, query, nil
}
