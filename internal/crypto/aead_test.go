package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-server-vault/models"
)

func allCiphers() []Cipher {
	return []Cipher{NewAESGCMCipher(), NewChaCha20Poly1305Cipher()}
}

func TestNewCipher(t *testing.T) {
	for _, name := range []string{AESGCM, ChaCha20Poly1305} {
		c, err := NewCipher(name)
		if err != nil {
			t.Fatalf("NewCipher(%q) error: %v", name, err)
		}
		if c.Name() != name {
			t.Fatalf("Name() = %q, want %q", c.Name(), name)
		}
	}

	if _, err := NewCipher("rot13"); !errors.Is(err, ErrUnknownCipher) {
		t.Fatalf("NewCipher(rot13) error = %v, want ErrUnknownCipher", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("fingerprint"))
	plaintexts := []string{
		"p",
		"hunter2",
		"пароль с пробелами",
		strings.Repeat("x", 4096),
	}

	for _, c := range allCiphers() {
		t.Run(c.Name(), func(t *testing.T) {
			for _, p := range plaintexts {
				payload, err := c.Seal(key, p)
				if err != nil {
					t.Fatalf("Seal error: %v", err)
				}
				got, err := c.Open(key, payload)
				if err != nil {
					t.Fatalf("Open error: %v", err)
				}
				if got != p {
					t.Fatalf("round trip = %q, want %q", got, p)
				}
			}
		})
	}
}

func TestSeal_PayloadLayout(t *testing.T) {
	key := DeriveKey([]byte("fingerprint"))

	for _, c := range allCiphers() {
		t.Run(c.Name(), func(t *testing.T) {
			payload, err := c.Seal(key, "hunter2")
			if err != nil {
				t.Fatalf("Seal error: %v", err)
			}
			blob, err := base64.StdEncoding.DecodeString(string(payload))
			if err != nil {
				t.Fatalf("payload is not standard base64: %v", err)
			}
			if want := NonceSize + TagSize + len("hunter2"); len(blob) != want {
				t.Fatalf("payload length = %d, want %d", len(blob), want)
			}
		})
	}
}

func TestSeal_NonceRandomness(t *testing.T) {
	key := DeriveKey([]byte("fingerprint"))

	for _, c := range allCiphers() {
		t.Run(c.Name(), func(t *testing.T) {
			seen := make(map[string]struct{})
			for i := 0; i < 64; i++ {
				payload, err := c.Seal(key, "same plaintext")
				if err != nil {
					t.Fatalf("Seal error: %v", err)
				}
				blob, _ := base64.StdEncoding.DecodeString(string(payload))
				nonce := string(blob[:NonceSize])
				if _, dup := seen[nonce]; dup {
					t.Fatalf("nonce reused after %d seals", i)
				}
				seen[nonce] = struct{}{}
			}
		})
	}
}

func TestOpen_WrongKey(t *testing.T) {
	k1 := DeriveKey([]byte("machine-a"))
	k2 := DeriveKey([]byte("machine-b"))

	for _, c := range allCiphers() {
		t.Run(c.Name(), func(t *testing.T) {
			payload, err := c.Seal(k1, "hunter2")
			if err != nil {
				t.Fatalf("Seal error: %v", err)
			}
			if _, err := c.Open(k2, payload); !errors.Is(err, ErrDecryption) {
				t.Fatalf("Open with wrong key error = %v, want ErrDecryption", err)
			}
		})
	}
}

func TestOpen_AnyBitFlipFails(t *testing.T) {
	key := DeriveKey([]byte("fingerprint"))

	for _, c := range allCiphers() {
		t.Run(c.Name(), func(t *testing.T) {
			payload, err := c.Seal(key, "hunter2")
			if err != nil {
				t.Fatalf("Seal error: %v", err)
			}
			blob, _ := base64.StdEncoding.DecodeString(string(payload))

			for i := 0; i < len(blob)*8; i++ {
				tampered := append([]byte(nil), blob...)
				tampered[i/8] ^= 1 << (i % 8)
				p := models.CipheredSecret(base64.StdEncoding.EncodeToString(tampered))

				if _, err := c.Open(key, p); !errors.Is(err, ErrDecryption) {
					t.Fatalf("bit %d flipped: error = %v, want ErrDecryption", i, err)
				}
			}
		})
	}
}

func TestOpen_CrossAlgorithmFails(t *testing.T) {
	key := DeriveKey([]byte("fingerprint"))

	payload, err := NewAESGCMCipher().Seal(key, "hunter2")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if _, err := NewChaCha20Poly1305Cipher().Open(key, payload); !errors.Is(err, ErrDecryption) {
		t.Fatalf("error = %v, want ErrDecryption", err)
	}
}

func TestSealOpen_InvalidInput(t *testing.T) {
	key := DeriveKey([]byte("fingerprint"))
	short := base64.StdEncoding.EncodeToString(make([]byte, NonceSize+TagSize-1))

	for _, c := range allCiphers() {
		t.Run(c.Name(), func(t *testing.T) {
			if _, err := c.Seal(key, ""); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Seal(\"\") error = %v, want ErrInvalidInput", err)
			}
			if _, err := c.Seal(nil, "x"); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Seal(nil key) error = %v, want ErrInvalidInput", err)
			}
			if _, err := c.Open(nil, "AAAA"); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Open(nil key) error = %v, want ErrInvalidInput", err)
			}

			cases := map[string]models.CipheredSecret{
				"empty":      "",
				"not base64": "%%%not-base64%%%",
				"too short":  models.CipheredSecret(short),
			}
			for name, payload := range cases {
				if _, err := c.Open(key, payload); !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("%s: error = %v, want ErrInvalidInput", name, err)
				}
			}
		})
	}
}

func TestOpen_MinimalPayloadFailsAuthentication(t *testing.T) {
	key := DeriveKey([]byte("fingerprint"))
	minimal := models.CipheredSecret(base64.StdEncoding.EncodeToString(make([]byte, NonceSize+TagSize)))

	for _, c := range allCiphers() {
		if _, err := c.Open(key, minimal); !errors.Is(err, ErrDecryption) {
			t.Fatalf("%s: error = %v, want ErrDecryption", c.Name(), err)
		}
	}
}
