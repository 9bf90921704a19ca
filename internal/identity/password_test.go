package identity

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !VerifyPassword("secret", hash) {
		t.Fatalf("expected verification to succeed for matching password")
	}
	if VerifyPassword("not-secret", hash) {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if string(first) == string(second) {
		t.Fatalf("expected distinct hashes for the same plaintext")
	}
	if !VerifyPassword("secret", first) || !VerifyPassword("secret", second) {
		t.Fatalf("both hashes must verify against the original plaintext")
	}
}
