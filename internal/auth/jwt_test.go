package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid", "Bearer abc.def", "abc.def", nil},
		{"lowercaseScheme", "bearer abc", "abc", nil},
		{"missing", "", "", ErrMissingToken},
		{"wrongScheme", "Basic dXNlcg==", "", ErrMissingToken},
		{"emptyToken", "Bearer   ", "", ErrMissingToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := http.Header{}
			if tc.header != "" {
				headers.Set("Authorization", tc.header)
			}
			got, err := BearerToken(headers)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("expected token %q got %q", tc.want, got)
			}
		})
	}
}

func TestJWTVerifierRoundTrip(t *testing.T) {
	token, err := IssueToken("user-1", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := NewJWTVerifier("secret").Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1 got %q", userID)
	}
}

func TestJWTVerifierRejects(t *testing.T) {
	valid, err := IssueToken("user-1", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	expired, err := IssueToken("user-1", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign foreign: %v", err)
	}

	cases := []struct {
		name    string
		secret  string
		token   string
		wantErr error
	}{
		{"empty", "secret", "", ErrMissingToken},
		{"wrongSecret", "other", valid, ErrInvalidToken},
		{"expired", "secret", expired, ErrInvalidToken},
		{"wrongIssuer", "secret", foreign, ErrInvalidToken},
		{"garbage", "secret", "not.a.jwt", ErrInvalidToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewJWTVerifier(tc.secret).Verify(context.Background(), tc.token); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestIssueTokenValidation(t *testing.T) {
	if _, err := IssueToken("", "secret", time.Minute); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
