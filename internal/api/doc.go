package api

// Package api is a typed client for the notes REST service. Each method is a
// single HTTP round trip; non-2xx responses are returned as *Error.
