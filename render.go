package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
)

var errNoApp = errors.New("no application instance")

// appFactory builds the collaborator application for a workspace.
type appFactory func(workspace string) (http.Handler, error)

type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("could not fetch the front page, status code %d", e.Code)
}

// renderedPage is the response to GET / exactly as the application wrote it.
type renderedPage struct {
	Status int
	Body   []byte
}

func lookupApp(apps map[string]appFactory, name string) (appFactory, error) {
	f, ok := apps[name]
	if !ok || f == nil {
		names := make([]string, 0, len(apps))
		for n := range apps {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("%w named %q (registered: %v)", errNoApp, name, names)
	}
	return f, nil
}

// registeredApp defers the lookup of name until the application is loaded,
// so an unknown name fails the build after the workspace is prepared.
func registeredApp(apps map[string]appFactory, name string) appFactory {
	return func(workspace string) (http.Handler, error) {
		f, err := lookupApp(apps, name)
		if err != nil {
			return nil, err
		}
		return f(workspace)
	}
}

func loadApp(f appFactory, workspace string) (http.Handler, error) {
	h, err := f(workspace)
	if err != nil {
		return nil, fmt.Errorf("loading application: %w", err)
	}
	if h == nil {
		return nil, errNoApp
	}
	return h, nil
}

// renderFrontPage dispatches GET / to h without a listener. Anything but 200
// is an error; the body is never rewritten.
func renderFrontPage(h http.Handler) (page *renderedPage, err error) {
	defer func() {
		if r := recover(); r != nil {
			page = nil
			err = fmt.Errorf("application panicked while rendering /: %v", r)
		}
	}()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return nil, &statusError{Code: rec.Code}
	}
	return &renderedPage{Status: rec.Code, Body: rec.Body.Bytes()}, nil
}
