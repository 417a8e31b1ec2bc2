// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pageconfig implements the configuration pipeline that turns a
// stored partial page document into the complete configuration used for
// rendering.
//
// The pipeline has two stages. Merge completes a possibly partial, possibly
// legacy-shaped document against the versioned default template, so that
// every known key is populated and unknown keys are passed through.
// Normalize then enforces the cross-field invariants the merge alone cannot:
// at most one special effect enabled, and every premium-gated setting reset
// to its inert default when the owning profile has no effective premium
// entitlement.
//
// All functions in this package are pure with respect to their inputs and
// perform no I/O, so they are safe to call concurrently from request
// handlers without locking.
package pageconfig
