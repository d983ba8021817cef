// Package core contains the client context, the request dispatcher and the
// endpoint functions of the Dwolla REST client. Transport adapters depend on
// this package; core must not depend on a concrete transport.
package core
