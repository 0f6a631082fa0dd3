// Package routes declares the request-dispatch table. Routes are declared
// once as path suffixes and expanded over a set of URL prefixes, so every
// action is reachable under each root without duplicated declarations.
package routes

import (
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/openapi"
)

// Ref names the handler behind a route: the capability that owns it and
// the action invoked on it.
type Ref struct {
	Capability string
	Action     string
}

func (r Ref) String() string {
	return r.Capability + "." + r.Action
}

// Route is one declared (method, path suffix, action) triple.
type Route struct {
	Method  string
	Pattern string
	Action  string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group collects the routes of a single capability.
type Group struct {
	Capability  string
	Tags        []string
	Description string
	Routes      []Route
}
