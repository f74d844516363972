package adminkey

import "testing"

func TestDerive_Deterministic(t *testing.T) {
	a := Derive("secret-1")
	b := Derive("secret-1")
	if a != b {
		t.Fatal("same secret should derive the same key")
	}
	if a == "" {
		t.Fatal("derived key is empty")
	}
}

func TestDerive_DifferentSecrets(t *testing.T) {
	if Derive("secret-1") == Derive("secret-2") {
		t.Fatal("different secrets should derive different keys")
	}
}

func TestVerify(t *testing.T) {
	key := Derive("secret-1")
	if err := Verify(key, "secret-1"); err != nil {
		t.Fatalf("valid key rejected: %v", err)
	}
	if err := Verify(key, "secret-2"); err == nil {
		t.Fatal("key for wrong secret accepted")
	}
	if err := Verify("", "secret-1"); err == nil {
		t.Fatal("empty key accepted")
	}
}
