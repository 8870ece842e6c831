// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the interactive vault application runtime.
//
// It wires the terminal UI flows and the service layer into a single
// process lifecycle: unlock the master gate, hydrate the vault, run the
// main loop, flush on exit.
package app
