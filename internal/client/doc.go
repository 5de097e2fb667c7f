// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

// Package client implements the companion application runtime.
//
// It wires session restore, the priority sync, backfill resume scheduling,
// background workers, and the terminal progress UI into a single process
// lifecycle.
package client
