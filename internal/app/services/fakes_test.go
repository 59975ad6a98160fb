package services_test

import (
	"context"

	"github.com/ssisdev/sisctl/internal/api"
	"github.com/ssisdev/sisctl/internal/app/navigation"
)

// fakeClient records calls per verb and answers through the optional
// per-verb function hooks. The zero value accepts everything.
type fakeClient struct {
	gets  []string
	posts []string
	puts  []string

	getFn  func(path string, out any) error
	postFn func(path string, body, out any) error
	putFn  func(path string, body, out any) error

	forms  []formCall
	formFn func(call formCall, out any) error
}

type formCall struct {
	verb   string
	path   string
	fields map[string]string
	file   *api.FormFile
}

func (f *fakeClient) Get(_ context.Context, path string, out any) error {
	f.gets = append(f.gets, path)
	if f.getFn != nil {
		return f.getFn(path, out)
	}
	return nil
}

func (f *fakeClient) Post(_ context.Context, path string, body, out any) error {
	f.posts = append(f.posts, path)
	if f.postFn != nil {
		return f.postFn(path, body, out)
	}
	return nil
}

func (f *fakeClient) Put(_ context.Context, path string, body, out any) error {
	f.puts = append(f.puts, path)
	if f.putFn != nil {
		return f.putFn(path, body, out)
	}
	return nil
}

func (f *fakeClient) Delete(_ context.Context, path string, out any) error {
	return nil
}

func (f *fakeClient) PostForm(_ context.Context, path string, fields map[string]string, file *api.FormFile, out any) error {
	call := formCall{verb: "POST", path: path, fields: fields, file: file}
	f.forms = append(f.forms, call)
	if f.formFn != nil {
		return f.formFn(call, out)
	}
	return nil
}

func (f *fakeClient) PutForm(_ context.Context, path string, fields map[string]string, file *api.FormFile, out any) error {
	call := formCall{verb: "PUT", path: path, fields: fields, file: file}
	f.forms = append(f.forms, call)
	if f.formFn != nil {
		return f.formFn(call, out)
	}
	return nil
}

// fakeNotifier records every notification by kind.
type fakeNotifier struct {
	successes []string
	infos     []string
}

func (f *fakeNotifier) Success(message string) { f.successes = append(f.successes, message) }
func (f *fakeNotifier) Info(message string)    { f.infos = append(f.infos, message) }

// recordNav records navigations in order.
type recordNav struct {
	dests []navigation.Destination
}

func (r *recordNav) Navigate(dest navigation.Destination) {
	r.dests = append(r.dests, dest)
}
