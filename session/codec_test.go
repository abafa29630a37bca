package session

import (
	"testing"
	"time"

	"workmate/models"
)

func TestCodec_RoundTrip(t *testing.T) {
	id := models.Identity{ID: "42", Name: "Dana", Email: "dana@x.com", Role: models.RoleProvider}

	token, err := EncodeIdentity(id, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("EncodeIdentity() error = %v", err)
	}

	got, err := DecodeIdentity(token, testSecret)
	if err != nil {
		t.Fatalf("DecodeIdentity() error = %v", err)
	}
	if *got != id {
		t.Errorf("DecodeIdentity() = %+v, want %+v", got, id)
	}
}

func TestCodec_RejectsBadTokens(t *testing.T) {
	id := models.Identity{ID: "42", Name: "Dana", Email: "dana@x.com", Role: models.RoleProvider}
	good, err := EncodeIdentity(id, testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{name: "wrong secret", token: good, secret: []byte("wrong")},
		{name: "truncated token", token: good[:len(good)-5], secret: testSecret},
		{name: "not a token at all", token: "hello", secret: testSecret},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := DecodeIdentity(test.token, test.secret); err == nil {
				t.Fatal("DecodeIdentity() = nil error, want failure")
			}
		})
	}
}

func TestCodec_RejectsIncompleteIdentity(t *testing.T) {
	// An identity with no role encodes fine but fails the well-formedness
	// check on decode.
	id := models.Identity{ID: "42", Email: "dana@x.com"}
	token, err := EncodeIdentity(id, testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeIdentity(token, testSecret); err == nil {
		t.Fatal("DecodeIdentity() accepted identity without role")
	}
}
