// Package fakeapi is an in-memory stand-in for the remote auth API.
//
// It serves POST /api/auth/register and POST /api/auth/login with the same
// wire format as the real service, which makes it usable both in tests of
// the HTTP adapter and as a local backend for manual runs of the client
// (see cmd/fakeauth). Accounts live only as long as the process.
package fakeapi
