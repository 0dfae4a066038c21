// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Provider errors and caller-supplied call variables can
// carry credentials, phone numbers and personal data that must not reach the logs.
package redact

import (
	"regexp"
	"unicode"
)

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedPhonePlaceholder      = "[REDACTED_PHONE]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedURLPlaceholder        = "[REDACTED_URL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s().-]{5,}\d`)

// minPhoneDigits keeps short numeric runs such as IP octets and status codes.
const minPhoneDigits = 7

// rules are applied in order; earlier rules win over overlapping later ones.
var rules = []rule{
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]+`), RedactedCredentialPlaceholder},
	// Retell API keys
	{regexp.MustCompile(`\bkey_[A-Za-z0-9]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`https?://[^\s"']+`), RedactedURLPlaceholder},
	// Phone numbers, compact or with spaces, dots, dashes and parentheses.
	{phonePattern, RedactedPhonePlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		if r.pattern == phonePattern {
			result = r.pattern.ReplaceAllStringFunc(result, redactPhone)
			continue
		}
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

func redactPhone(match string) string {
	digits := 0
	for _, c := range match {
		if unicode.IsDigit(c) {
			digits++
		}
	}
	if digits < minPhoneDigits {
		return match
	}
	return RedactedPhonePlaceholder
}
