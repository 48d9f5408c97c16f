// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It runs a single sync with the configured options, or keeps the process
// alive with the auto-sync scheduler and fetches whenever another device of
// the user reports a completed push.
package client
