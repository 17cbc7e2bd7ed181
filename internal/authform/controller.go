// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
)

// Submission is the form snapshot captured by [Controller.BeginSubmit].
// Edits made after the snapshot do not affect the request.
type Submission struct {
	Mode Mode
	Form FormData
}

// Outcome is the result of [Controller.Execute].
type Outcome struct {
	Response models.AuthResponse
	Err      error
}

// Controller owns the form state and drives the [AuthClient].
//
// All state changes go through [Reduce]; the applied actions are recorded and
// available via [Controller.Actions]. Methods are safe to call from several
// goroutines, although a UI normally calls them from its event loop only.
type Controller struct {
	client AuthClient
	logger *logger.Logger

	mu          sync.Mutex
	state       State
	actions     []Action
	initialized bool
}

// NewController returns a controller in [InitialState]. Call Initialize once
// before the first render.
func NewController(client AuthClient, logger *logger.Logger) *Controller {
	return &Controller{
		client: client,
		logger: logger,
		state:  InitialState(),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Actions returns a copy of every action applied so far, in order.
// Replay(InitialState(), ctrl.Actions()...) equals ctrl.State().
func (c *Controller) Actions() []Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Action, len(c.actions))
	copy(out, c.actions)
	return out
}

// Initialize sets the session flag from the client's persisted-session check.
// Only the first call has an effect.
func (c *Controller) Initialize() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return c.state
	}
	c.initialized = true

	authenticated := c.client.IsAuthenticated()
	c.logger.Debug().Bool("authenticated", authenticated).Msg("session restored")
	return c.dispatch(Initialized{Authenticated: authenticated})
}

// EditField stores value into field and clears the status message.
// Edits are accepted while a submission is in flight.
func (c *Controller) EditField(field Field, value string) (State, error) {
	if _, ok := (FormData{}).Get(field); !ok {
		return c.State(), fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatch(FieldEdited{Field: field, Value: value}), nil
}

// ToggleMode switches between login and registration, empties the form and
// clears the status message.
func (c *Controller) ToggleMode() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatch(ModeToggled{})
}

// BeginSubmit starts a submission and returns the form snapshot to execute.
//
// It fails with [ErrSubmitInFlight] while another submission is pending and
// with [*RequiredFieldError] when a required field is empty; in both cases
// the state is left untouched.
func (c *Controller) BeginSubmit() (Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		return Submission{}, ErrSubmitInFlight
	}

	sub := Submission{Mode: c.state.Mode, Form: c.state.Form}
	if err := Validate(sub); err != nil {
		return Submission{}, err
	}

	c.dispatch(SubmitStarted{})
	c.logger.Debug().Stringer("mode", sub.Mode).Msg("submission started")
	return sub, nil
}

// Execute performs the remote call for sub with the snapshot values exactly
// as typed. It does not read or modify the controller state, so it can run
// outside the UI event loop.
func (c *Controller) Execute(ctx context.Context, sub Submission) Outcome {
	var (
		resp models.AuthResponse
		err  error
	)
	switch sub.Mode {
	case ModeRegister:
		resp, err = c.client.Register(ctx, sub.Form.Name, sub.Form.Email, sub.Form.Password)
	default:
		resp, err = c.client.Login(ctx, sub.Form.Email, sub.Form.Password)
	}

	if err != nil {
		c.logger.Info().Err(err).Stringer("mode", sub.Mode).Msg("submission failed")
	} else {
		c.logger.Info().Stringer("mode", sub.Mode).Msg("submission succeeded")
	}

	return Outcome{Response: resp, Err: err}
}

// Finish applies the outcome of the pending submission and clears the
// loading flag. Without a pending submission it is a no-op.
func (c *Controller) Finish(out Outcome) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Loading {
		c.logger.Warn().Msg("finish called without a pending submission")
		return c.state
	}

	if out.Err != nil {
		return c.dispatch(SubmitFailed{Err: out.Err})
	}
	return c.dispatch(SubmitSucceeded{Message: out.Response.Message})
}

// Submit runs BeginSubmit, Execute and Finish in sequence. The returned error
// is only ever a BeginSubmit rejection; remote failures end up in the
// state's status message.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	sub, err := c.BeginSubmit()
	if err != nil {
		return c.State(), err
	}

	return c.Finish(c.Execute(ctx, sub)), nil
}

// Logout forgets the persisted session and marks the state anonymous.
func (c *Controller) Logout() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.client.Logout()
	c.logger.Info().Msg("logged out")
	return c.dispatch(LoggedOut{})
}

// dispatch must be called with mu held.
func (c *Controller) dispatch(a Action) State {
	c.state = Reduce(c.state, a)
	c.actions = append(c.actions, a)
	return c.state
}
