// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the session flag of the form controller and hands control to
// the terminal UI for the rest of the process lifetime.
package client
