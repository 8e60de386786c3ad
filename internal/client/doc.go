// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the account service.
//
// [App] maps a sub-command and its operands onto an [adapter.AccountAdapter]
// call and prints the result as indented JSON. Create and update read the
// account payload as JSON from the app's input.
package client
