// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks dashboard input before it reaches the service
// layer: credential and alias request shapes, and per-section configuration
// payloads whose keys must stay inside the section being saved.
//
// The handler owns a single [Validator] and runs every decoded request body
// through it, so the services can assume structurally sound input and focus
// on domain rules.
package validators

import "context"

// Validator checks a decoded request value. The optional names restrict the
// check to specific fields; with no names the whole value is validated.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
