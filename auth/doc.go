/*
Package auth provides password hashing and bearer token utilities.

# Password Hashing

Passwords are hashed with bcrypt at cost 10:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on mismatch so handlers can map
it to the same 401 as an unknown account without leaking which one failed.

# Bearer Tokens

Tokens are HS256-signed JWTs carrying the admin ID and a 24-hour expiry:

	token, err := auth.GenerateToken(adminID, secret)
	adminID, err := auth.VerifyToken(token, secret)

VerifyToken rejects bad signatures, non-HMAC algorithms, expired tokens, and
tokens without an adminId claim, returning ErrInvalidToken for all of them.

# ID Generation

Admin records use random UUID identifiers:

	id := auth.NewAdminID()
*/
package auth
