package services

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/client/tokenstore"
)

// fakeAPI records requests and answers with a canned payload or error.
type fakeAPI struct {
	store tokenstore.Store

	requests []client.Request
	uploads  []string

	resp any
	err  error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{store: tokenstore.NewMemoryStore()}
}

func (f *fakeAPI) Do(_ context.Context, r client.Request, out any) error {
	f.requests = append(f.requests, r)
	if f.err != nil {
		return f.err
	}
	return f.fill(out)
}

func (f *fakeAPI) Upload(_ context.Context, path, field, filename string, r io.Reader, out any) error {
	_, _ = io.Copy(io.Discard, r)
	f.uploads = append(f.uploads, path+"|"+field+"|"+filename)
	if f.err != nil {
		return f.err
	}
	return f.fill(out)
}

func (f *fakeAPI) Store() tokenstore.Store { return f.store }

func (f *fakeAPI) fill(out any) error {
	if out == nil || f.resp == nil {
		return nil
	}
	b, err := json.Marshal(f.resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (f *fakeAPI) last() client.Request {
	return f.requests[len(f.requests)-1]
}
