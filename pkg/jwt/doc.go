// Package jwt inspects the JSON Web Tokens issued by an ArangoDB server.
//
// The server signs tokens with a secret only it knows, so the client
// never verifies signatures. It decodes the claims without verification
// to learn when a token expires and which user it was issued for:
//
//	claims, err := jwt.Decode(token)
//	if err != nil {
//	    // not a JWT
//	}
//	if claims.Expired() {
//	    // re-authenticate before the next request
//	}
//
// # Claims
//
// ArangoDB tokens carry the registered iss/iat/exp claims plus two
// custom ones:
//
//	type Claims struct {
//	    PreferredUsername string    // user the token was issued for
//	    ServerID          string    // issuing server
//	    ExpiresAt         time.Time // zero when the token never expires
//	}
package jwt
