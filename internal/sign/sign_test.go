package sign_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"edbatch/internal/domain"
	"edbatch/internal/primitive"
	"edbatch/internal/sign"
	"edbatch/internal/util/memzero"
)

// newScheme returns a scheme over the standard backend.
func newScheme(t *testing.T) *sign.Scheme {
	t.Helper()
	return sign.New(primitive.NaClSign{})
}

// randomMessage returns n random bytes.
func randomMessage(t *testing.T, n int) []byte {
	t.Helper()
	m := make([]byte, n)
	if _, err := rand.Read(m); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return m
}

func TestSignOpenRoundTrip(t *testing.T) {
	s := newScheme(t)
	for n := 0; n < 256; n++ {
		pub, priv, err := s.GenerateKeypair()
		if err != nil {
			t.Fatalf("GenerateKeypair: %v", err)
		}
		m := randomMessage(t, n)

		sm, err := s.Sign(m, priv)
		priv.Wipe()
		if err != nil {
			t.Fatalf("Sign (len %d): %v", n, err)
		}
		got, err := s.Open(sm, pub)
		if err != nil {
			t.Fatalf("Open (len %d): %v", n, err)
		}
		if !bytes.Equal(got, m) {
			t.Fatalf("round trip (len %d): message mismatch", n)
		}
	}
}

func TestSignedMessageLength(t *testing.T) {
	s := newScheme(t)
	_, priv, err := s.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer priv.Wipe()

	for _, n := range []int{0, 1, 32, 255, 1024} {
		sm, err := s.Sign(randomMessage(t, n), priv)
		if err != nil {
			t.Fatalf("Sign (len %d): %v", n, err)
		}
		if len(sm) != n+domain.SignatureBytes {
			t.Fatalf("signed length: want %d, got %d", n+domain.SignatureBytes, len(sm))
		}
	}
}

func TestOpenTamper(t *testing.T) {
	s := newScheme(t)
	for n := 0; n < 32; n++ {
		pub, priv, err := s.GenerateKeypair()
		if err != nil {
			t.Fatalf("GenerateKeypair: %v", err)
		}
		m := randomMessage(t, n)
		sm, err := s.Sign(m, priv)
		priv.Wipe()
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}

		for j := range sm {
			for bit := uint(0); bit < 8; bit++ {
				sm[j] ^= 1 << bit
				if _, err := s.Open(sm, pub); !errors.Is(err, domain.ErrVerificationFailed) {
					t.Fatalf("tampered byte %d bit %d: want ErrVerificationFailed, got %v", j, bit, err)
				}
				sm[j] ^= 1 << bit
			}
			// Restoring the byte restores verification.
			if _, err := s.Open(sm, pub); err != nil {
				t.Fatalf("restored byte %d: %v", j, err)
			}
		}
	}
}

func TestKeypairIndependence(t *testing.T) {
	s := newScheme(t)
	seen := make(map[domain.SecretKey]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		_, priv, err := s.GenerateKeypair()
		if err != nil {
			t.Fatalf("GenerateKeypair (trial %d): %v", i, err)
		}
		if _, dup := seen[*priv]; dup {
			t.Fatalf("duplicate secret key at trial %d", i)
		}
		seen[*priv] = struct{}{}
		priv.Wipe()
	}
}

func TestCrossKeyRejection(t *testing.T) {
	s := newScheme(t)
	_, priv1, err := s.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer priv1.Wipe()
	pub2, priv2, err := s.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	priv2.Wipe()

	sm, err := s.Sign([]byte("signed under key 1"), priv1)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := s.Open(sm, pub2); !errors.Is(err, domain.ErrVerificationFailed) {
		t.Fatalf("cross-key open: want ErrVerificationFailed, got %v", err)
	}
}

func TestOpenShortInput(t *testing.T) {
	s := newScheme(t)
	pub, priv, err := s.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	priv.Wipe()

	for n := 0; n < domain.SignatureBytes; n++ {
		if _, err := s.Open(randomMessage(t, n), pub); !errors.Is(err, domain.ErrVerificationFailed) {
			t.Fatalf("short input (len %d): want ErrVerificationFailed, got %v", n, err)
		}
	}
	// Exactly signature-sized garbage is long enough to try, and still rejected.
	if _, err := s.Open(randomMessage(t, domain.SignatureBytes), pub); !errors.Is(err, domain.ErrVerificationFailed) {
		t.Fatalf("garbage input: want ErrVerificationFailed, got %v", err)
	}
}

func TestSecretKeyWipe(t *testing.T) {
	s := newScheme(t)
	_, priv, err := s.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	if memzero.Wiped(priv.Slice()) {
		t.Fatal("fresh secret key is all zeros")
	}
	priv.Wipe()
	if !memzero.Wiped(priv.Slice()) {
		t.Fatal("secret key backing storage not zeroed after Wipe")
	}
}

func TestUninitializedDefault(t *testing.T) {
	// sign.Init is never called in this test binary, so the package-level
	// operations must all refuse to run.
	if _, _, err := sign.GenerateKeypair(); !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("GenerateKeypair before Init: want ErrNotInitialized, got %v", err)
	}
	if _, err := sign.Sign([]byte("m"), new(domain.SecretKey)); !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("Sign before Init: want ErrNotInitialized, got %v", err)
	}
	if _, err := sign.Open(make([]byte, 128), domain.PublicKey{}); !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("Open before Init: want ErrNotInitialized, got %v", err)
	}

	var nilScheme *sign.Scheme
	if _, _, err := nilScheme.GenerateKeypair(); !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("nil scheme: want ErrNotInitialized, got %v", err)
	}
}

// fakePrimitive wraps the standard backend, optionally forcing failures.
type fakePrimitive struct {
	keypairErr error
	truncate   bool
}

func (f fakePrimitive) Keypair(rnd io.Reader) (*[domain.PublicKeyBytes]byte, *[domain.SecretKeyBytes]byte, error) {
	if f.keypairErr != nil {
		return nil, nil, f.keypairErr
	}
	return primitive.NaClSign{}.Keypair(rnd)
}

func (f fakePrimitive) Sign(message []byte, priv *[domain.SecretKeyBytes]byte) []byte {
	sm := primitive.NaClSign{}.Sign(message, priv)
	if f.truncate {
		return sm[:len(sm)-1]
	}
	return sm
}

func (f fakePrimitive) Open(signed []byte, pub *[domain.PublicKeyBytes]byte) ([]byte, bool) {
	return primitive.NaClSign{}.Open(signed, pub)
}

func TestKeypairEntropyFailureSurfaced(t *testing.T) {
	cause := errors.New("rng exhausted")
	s := sign.New(fakePrimitive{keypairErr: cause})
	_, _, err := s.GenerateKeypair()
	if !errors.Is(err, domain.ErrEntropy) {
		t.Fatalf("want ErrEntropy, got %v", err)
	}
}

func TestSignFailureSurfaced(t *testing.T) {
	s := sign.New(fakePrimitive{truncate: true})
	_, priv, err := s.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer priv.Wipe()

	if _, err := s.Sign([]byte("m"), priv); !errors.Is(err, domain.ErrSign) {
		t.Fatalf("truncated primitive output: want ErrSign, got %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	s := newScheme(t)
	pub, priv, err := s.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	priv.Wipe()

	fp := sign.Fingerprint(pub.Slice())
	if len(fp) != 20 {
		t.Fatalf("fingerprint length: want 20 hex chars, got %d", len(fp))
	}
	if fp != sign.Fingerprint(pub.Slice()) {
		t.Fatal("fingerprint not deterministic")
	}
}
