// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transports of the account service.
//
// It opens the HTTP and gRPC listeners configured in config.Server, serves
// them until a stop signal arrives or one of them fails, and shuts all of
// them down gracefully.
package server
