package auth

import "net/http"

// Transport is an http.RoundTripper that adds basic authentication to every
// outgoing request.
//
// Usage:
//
//	client := &http.Client{Transport: auth.NewTransport(creds, http.DefaultTransport)}
type Transport struct {
	Credentials Credentials
	Base        http.RoundTripper
}

// NewTransport wraps base with basic authentication. A nil base uses
// http.DefaultTransport.
func NewTransport(creds Credentials, base http.RoundTripper) *Transport {
	return &Transport{Credentials: creds, Base: base}
}

// RoundTrip implements http.RoundTripper. The request is cloned; the caller's
// request is never mutated.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Credentials.IsZero() {
		return base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	t.Credentials.Apply(r)
	return base.RoundTrip(r)
}
