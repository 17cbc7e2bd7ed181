// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authform implements the client-side authentication state machine
// behind the login/registration form.
//
// All state lives in an immutable [State] record. Every user interaction and
// every network outcome is expressed as an [Action] and applied through the
// single [Reduce] function, so any recorded sequence of actions can be
// replayed deterministically with [Replay].
//
// [Controller] owns the current state, talks to an [AuthClient] and splits a
// submission into three explicit steps:
//
//	sub, err := ctrl.BeginSubmit()   // snapshot + Loading=true
//	out := ctrl.Execute(ctx, sub)    // remote call, no state access
//	ctrl.Finish(out)                 // Loading=false + outcome
//
// which lets a UI run the remote call asynchronously while the controller
// keeps accepting field edits.
package authform
