package crypto

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"small", []byte("hello shift tracker")},
		{"large", bytes.Repeat([]byte{0xab}, 100_000)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			encrypted, err := Encrypt(c.data, "correct horse")
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}

			decrypted, err := Decrypt(encrypted, "correct horse")
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if !bytes.Equal(decrypted, c.data) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(decrypted), len(c.data))
			}
		})
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret report"), "right")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, err := Decrypt(encrypted, "wrong"); err == nil {
		t.Error("Decrypt with wrong password succeeded, want error")
	}
}

func TestDecryptTruncatedData(t *testing.T) {
	for _, n := range []int{0, 1, saltLength, saltLength + 5} {
		if _, err := Decrypt(make([]byte, n), "pw"); err == nil {
			t.Errorf("Decrypt of %d bytes succeeded, want error", n)
		}
	}
}

func TestEncryptRandomSalt(t *testing.T) {
	data := []byte("same plaintext")
	a, err := Encrypt(data, "pw")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	b, err := Encrypt(data, "pw")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two encryptions of identical input produced identical output")
	}
}
