package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// TestBcryptHasher_HashAndVerify ensures that password hashing and verification work correctly.
func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := &BcryptHasher{Cost: bcrypt.MinCost}
	password := "mySecretPassword123"

	hashedPassword, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("hasher.Hash() returned an unexpected error: %v", err)
	}

	if hashedPassword == password {
		t.Errorf("Hashed password should not be the same as the original password.")
	}

	if !hasher.Verify(password, hashedPassword) {
		t.Errorf("hasher.Verify() should have returned true for a matching password, but got false.")
	}

	if hasher.Verify("notMyPassword", hashedPassword) {
		t.Errorf("hasher.Verify() should have returned false for a non-matching password, but got true.")
	}
}
