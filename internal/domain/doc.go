// Package domain contains the request-scoped entities of the relay and the
// rules that decide whether an inbound call request may be forwarded to the
// voice-call provider. It is independent of HTTP and of the provider client.
package domain
