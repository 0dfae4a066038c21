// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts browser requests to the voice-call
// provider client and maps every outcome to a structured JSON response.
package api
