package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-session-secret")

func newTestVerifier() *Verifier {
	return NewVerifier(Config{Secret: testSecret, Issuer: "medcore-test", TTL: time.Hour})
}

func signClaims(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

// TestVerifier_SignAndParse tests a round trip of a session token
func TestVerifier_SignAndParse(t *testing.T) {
	verifier := newTestVerifier()
	user := users.User{ID: "1", Name: "System Administrator", Role: users.RoleAdmin}

	token, exp, err := verifier.Sign(user, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Errorf("Expected expiry about an hour away, got %v", exp)
	}

	principal, err := verifier.ParseAndVerifyToken(token)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if principal.UserID != "1" || principal.Name != "System Administrator" {
		t.Errorf("Unexpected principal %+v", principal)
	}
	if len(principal.Roles) != 1 || principal.Roles[0] != users.RoleAdmin {
		t.Errorf("Expected ADMIN role, got %v", principal.Roles)
	}
}

// TestVerifier_ParseAndVerifyToken_Rejections tests every rejected token shape
func TestVerifier_ParseAndVerifyToken_Rejections(t *testing.T) {
	verifier := newTestVerifier()
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":  "1",
			"role": "ADMIN",
			"iss":  "medcore-test",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
	}

	expired := valid()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()
	wrongIssuer := valid()
	wrongIssuer["iss"] = "someone-else"
	noSub := valid()
	delete(noSub, "sub")

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate RSA key: %v", err)
	}
	rs256, err := jwt.NewWithClaims(jwt.SigningMethodRS256, valid()).SignedString(rsaKey)
	if err != nil {
		t.Fatalf("Failed to sign RS256 token: %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrNoToken},
		{"garbage", "not.a.token", ErrInvalidToken},
		{"wrong secret", signClaims(t, valid(), []byte("other")), ErrInvalidToken},
		{"expired", signClaims(t, expired, testSecret), ErrInvalidToken},
		{"wrong issuer", signClaims(t, wrongIssuer, testSecret), ErrInvalidIssuer},
		{"missing sub", signClaims(t, noSub, testSecret), ErrMissingSub},
		{"rs256", rs256, ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.ParseAndVerifyToken(tt.token)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestVerifier_NoRole tests that a token without a role yields no roles
func TestVerifier_NoRole(t *testing.T) {
	verifier := newTestVerifier()
	token := signClaims(t, jwt.MapClaims{
		"sub": "1",
		"iss": "medcore-test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	principal, err := verifier.ParseAndVerifyToken(token)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(principal.Roles) != 0 {
		t.Errorf("Expected no roles, got %v", principal.Roles)
	}
}
