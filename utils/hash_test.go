package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "p1" {
		t.Fatal("HashPassword() returned the plaintext password")
	}

	if !CheckPassword(hash, "p1") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword("not-a-bcrypt-hash", "p1") {
		t.Error("CheckPassword() accepted a malformed hash")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salting is broken")
	}
}
