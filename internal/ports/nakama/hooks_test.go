package nakama

import (
	"testing"

	"github.com/form3tech-oss/jwt-go"
)

func TestUserIDFromSessionToken(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": "user-42", "usn": "racer"}).SignedString([]byte("server-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	missingUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"usn": "racer"}).SignedString([]byte("server-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{name: "Valid", token: signed, want: "user-42"},
		{name: "MissingUID", token: missingUID, wantErr: true},
		{name: "NotAToken", token: "not-a-token", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := userIDFromSessionToken(test.token)
			if (err != nil) != test.wantErr {
				t.Fatalf("userIDFromSessionToken error = %v, wantErr %t", err, test.wantErr)
			}
			if got != test.want {
				t.Fatalf("userIDFromSessionToken = %q, want %q", got, test.want)
			}
		})
	}
}
