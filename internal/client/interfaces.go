// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable sync client: a one-shot sync or the daemon.
type Client interface {
	// Run blocks until the sync finishes or the process is signalled.
	Run() error
}

var _ Client = (*App)(nil)
