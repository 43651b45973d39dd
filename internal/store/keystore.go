package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"edbatch/internal/domain"
	"edbatch/internal/util/memzero"
)

const (
	secretFilename = "key.json.enc"
	publicFilename = "key.pub.json"
)

// publicRecord is the clear JSON file holding the public half.
type publicRecord struct {
	V      int    `json:"v"`
	Public []byte `json:"public"`
}

// FileKeystore persists the local keypair under a directory.
type FileKeystore struct {
	dir string
	mu  sync.Mutex
}

// NewFileKeystore returns a FileKeystore rooted at dir.
func NewFileKeystore(dir string) *FileKeystore {
	return &FileKeystore{dir: dir}
}

// Save writes the encrypted secret key and the clear public key to disk.
// The caller keeps ownership of priv and remains responsible for wiping it.
func (s *FileKeystore) Save(passphrase string, pub domain.PublicKey, priv *domain.SecretKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	N, r, p := scryptParamsDefault()
	ct, err := seal(passphrase, priv.Slice(), N, r, p)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(s.dir, secretFilename), ct, 0o600); err != nil {
		return err
	}

	rec, err := json.MarshalIndent(publicRecord{V: keystoreFormatVersion, Public: pub.Slice()}, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, publicFilename), rec, 0o644)
}

// Load reads and decrypts the keypair. The returned secret key is owned by
// the caller, who must Wipe it when done.
func (s *FileKeystore) Load(passphrase string) (domain.PublicKey, *domain.SecretKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, secretFilename))
	if err != nil {
		return domain.PublicKey{}, nil, err
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return domain.PublicKey{}, nil, err
	}
	if len(raw) != domain.SecretKeyBytes {
		memzero.Zero(raw)
		return domain.PublicKey{}, nil, errWrongPassphrase
	}
	priv := domain.MustSecretKey(raw)
	memzero.Zero(raw)

	pub, err := s.loadPublic()
	if err != nil {
		priv.Wipe()
		return domain.PublicKey{}, nil, err
	}
	return pub, priv, nil
}

// LoadPublic reads the public key only; no passphrase is needed.
func (s *FileKeystore) LoadPublic() (domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPublic()
}

func (s *FileKeystore) loadPublic() (domain.PublicKey, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, publicFilename))
	if err != nil {
		return domain.PublicKey{}, err
	}
	var rec publicRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.PublicKey{}, err
	}
	if len(rec.Public) != domain.PublicKeyBytes {
		return domain.PublicKey{}, fmt.Errorf("malformed public key file: %d bytes", len(rec.Public))
	}
	return domain.MustPublicKey(rec.Public), nil
}

// Compile-time assertion that FileKeystore implements domain.Keystore.
var _ domain.Keystore = (*FileKeystore)(nil)
