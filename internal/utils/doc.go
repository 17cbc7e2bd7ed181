// Package utils provides general-purpose helper utilities used across the
// client: the preconfigured resty HTTP client, bearer/JWT token helpers,
// request id generation and JSON response writing.
package utils
