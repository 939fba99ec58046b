package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-signing-secret"

func TestNewAdminID(t *testing.T) {
	id1 := NewAdminID()
	id2 := NewAdminID()

	if id1 == "" {
		t.Error("NewAdminID() returned empty string")
	}
	if id1 == id2 {
		t.Error("NewAdminID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter2" {
		t.Error("HashPassword() returned the plaintext password")
	}

	// Hashing is salted - two hashes of the same password differ
	hash2, _ := HashPassword("hunter2")
	if hash == hash2 {
		t.Error("HashPassword() is not salted")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"correct password", "correct-password", false},
		{"wrong password", "wrong-password", true},
		{"empty password", "", true},
		{"case matters", "Correct-Password", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(hash, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidCredentials {
				t.Errorf("CheckPassword() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	adminID := NewAdminID()

	token, err := GenerateToken(adminID, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	// A verified token resolves to the same admin that was authenticated
	got, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if got != adminID {
		t.Errorf("VerifyToken() adminID = %q, want %q", got, adminID)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	adminID := NewAdminID()
	valid, _ := GenerateToken(adminID, testSecret)

	// Token signed with a different secret
	wrongSecret, _ := GenerateToken(adminID, "some-other-secret")

	// Token already expired
	expiredClaims := jwt.MapClaims{
		"adminId": adminID,
		"exp":     jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).
		SignedString([]byte(testSecret))

	// Token with no adminId claim
	noAdmin, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", valid, false},
		{"garbled token", "not-a-jwt-at-all", true},
		{"empty token", "", true},
		{"wrong secret", wrongSecret, true},
		{"expired token", expired, true},
		{"missing adminId claim", noAdmin, true},
		{"tampered payload", valid[:len(valid)-4] + "XXXX", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyToken(tt.token, testSecret)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidToken {
				t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestVerifyToken_RejectsUnsignedAlg(t *testing.T) {
	// alg=none must never verify even with a well-formed payload
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"adminId": "some-admin",
		"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := VerifyToken(unsigned, testSecret); err == nil {
		t.Error("VerifyToken() accepted an unsigned token")
	}
}
