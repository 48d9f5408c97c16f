// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the payloads devices submit to the sync server
// before they reach storage.
package validators

import "context"

// Validator validates a value. fields optionally narrows the check to the
// named parts of the value; an unknown name is an error.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
