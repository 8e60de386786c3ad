// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the account service.
//
// It wires the chi router, the account resource handlers and the middleware
// chain. Request tracing, access logging, Prometheus instrumentation,
// response security headers and optional CORS are applied to every request
// before it reaches a handler; handlers translate between wire JSON and the
// service layer and map service errors to HTTP status codes.
package http
