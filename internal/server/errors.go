// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated: the configuration yielded no transport to
	// listen on, so there is nothing to run.
	errNoServersAreCreated = errors.New("no servers are created")
)
