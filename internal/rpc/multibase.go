package rpc

import (
	"encoding/base64"
	"fmt"
)

// The pubsub commands exchange topics and payloads as multibase strings.
// The daemon emits base64url without padding, prefix 'u'; that is the only
// base this client speaks.

// EncodeMultibase renders b as a 'u'-prefixed base64url string.
func EncodeMultibase(b []byte) string {
	return "u" + base64.RawURLEncoding.EncodeToString(b)
}

// DecodeMultibase parses a 'u'-prefixed base64url string.
func DecodeMultibase(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("rpc: empty multibase string")
	}
	if s[0] != 'u' {
		return nil, fmt.Errorf("rpc: unsupported multibase prefix %q", s[0])
	}
	data, err := base64.RawURLEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, fmt.Errorf("rpc: decode multibase: %w", err)
	}
	return data, nil
}
