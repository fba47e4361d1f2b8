// Package identity extracts a stable account identifier from the bearer
// credential used for the remote catalog.
//
// The credential payload is decoded without verifying its signature. This is
// a convenience extraction, not an authentication mechanism: the credential's
// authenticity is established by the issuing service, and this component has
// no key to verify it with. Do not treat the extracted identifier as proof
// of anything.
package identity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// claimKeys is the ordered list of recognized identifier claims. The first
// populated one wins.
var claimKeys = []string{"sub", "user_id", "uid", "id"}

// Extractor lazily derives the account identifier from a bearer token and
// memoizes the result for its lifetime. A credential that cannot be decoded,
// or that carries no recognized claim, yields a terminal absent result.
type Extractor struct {
	token string

	once   sync.Once
	userID string
	found  bool
}

// NewExtractor creates an extractor for the given bearer token.
func NewExtractor(token string) *Extractor {
	return &Extractor{token: token}
}

// UserID returns the account identifier and whether one could be extracted.
// The result is computed once and cached, including the absent case.
func (e *Extractor) UserID() (string, bool) {
	e.once.Do(func() {
		e.userID, e.found = extractUserID(e.token)
	})
	return e.userID, e.found
}

// extractUserID decodes the token's claims segment and reads the first
// populated recognized claim. Only the middle segment is decoded; the header
// is never inspected, so tokens with opaque or non-JSON headers still yield
// an identifier.
func extractUserID(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}

	parser := jwt.NewParser(jwt.WithPaddingAllowed())
	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return "", false
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}

	for _, key := range claimKeys {
		value, ok := claims[key]
		if !ok {
			continue
		}
		if s := claimString(value); s != "" {
			return s, true
		}
	}

	// Hasura-style tokens nest the user id under a namespaced claims object.
	if nested, ok := claims["https://hasura.io/jwt/claims"].(map[string]any); ok {
		if s := claimString(nested["x-hasura-user-id"]); s != "" {
			return s, true
		}
	}

	return "", false
}

// claimString renders a claim value as a non-empty identifier string.
func claimString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// IsUUID reports whether the identifier has canonical UUID shape. Callers use
// this to decide whether the identifier is safe for user-scoped filtering;
// a non-UUID numeric identifier must not be used that way, since filtering on
// it could surface another account's data.
func IsUUID(id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return parsed.String() == strings.ToLower(id)
}
