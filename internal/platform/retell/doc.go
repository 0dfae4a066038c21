// Package retell provides the client for Retell AI's voice-call API.
//
// This package is an infrastructure adapter: it translates the relay's
// create-call parameters into Retell's HTTP API and hands the provider's
// response back without reshaping it. Callers receive an explicit
// CallResult (the created call, or the provider failure) instead of having
// to inspect transport details.
//
// Key components:
//
// 1. Client:
//   - Authenticates with the configured API key (Bearer token)
//   - Bounds every request with the configured timeout
//   - Keeps the provider's JSON response verbatim in PhoneCall
//
// 2. Errors:
//   - APIError for non-2xx provider responses
//   - ErrMissingCallID when a 2xx response carries no call identifier
//
// 3. MockClient for handler tests.
//
// Calls are never retried; each CreatePhoneCall is exactly one provider request.
package retell
