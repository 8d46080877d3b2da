// Package credentials stores and resolves the Cohere API key.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

// Storage kinds accepted by New.
const (
	StorageEnv     = "env"
	StorageFile    = "file"
	StorageKeyring = "keyring"
)

// EnvVar is read by the env store.
const EnvVar = "COHERE_API_KEY"

const (
	keyringService = "cohere4go"
	keyringUser    = "api-key"
)

var (
	// ErrNotFound is returned when a store holds no key.
	ErrNotFound = errors.New("no API key found")
	// ErrReadOnly is returned when writing to the env store.
	ErrReadOnly = errors.New("env storage is read-only")
)

// Store reads and writes a single API key. Writing an empty key clears it.
type Store interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, key string) error
	String() string
}

// New returns the store for storage. path is only used by file storage.
func New(storage, path string) (Store, error) {
	switch storage {
	case StorageEnv:
		return EnvStore{Getenv: os.Getenv}, nil
	case StorageFile:
		if path == "" {
			return nil, errors.New("file storage requires a path")
		}
		return FileStore{Path: path}, nil
	case StorageKeyring:
		return KeyringStore{Service: keyringService, User: keyringUser}, nil
	default:
		return nil, fmt.Errorf("unsupported storage %q (expected: env, file, keyring)", storage)
	}
}

// Resolve returns explicit when set, otherwise the first key found in stores.
func Resolve(ctx context.Context, explicit string, stores ...Store) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, s := range stores {
		key, err := s.Read(ctx)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", s, err)
		}
		return key, nil
	}
	return "", ErrNotFound
}

// EnvStore reads the key from COHERE_API_KEY.
type EnvStore struct {
	Getenv func(string) string
}

func (s EnvStore) Read(ctx context.Context) (string, error) {
	if key := strings.TrimSpace(s.Getenv(EnvVar)); key != "" {
		return key, nil
	}
	return "", ErrNotFound
}

func (s EnvStore) Write(ctx context.Context, key string) error {
	return ErrReadOnly
}

func (s EnvStore) String() string {
	return "environment variable " + EnvVar
}

// FileStore keeps the key in a file readable only by the owner.
type FileStore struct {
	Path string
}

func (s FileStore) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", ErrNotFound
	}
	return key, nil
}

func (s FileStore) Write(ctx context.Context, key string) error {
	if key == "" {
		if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(key+"\n"), 0o600)
}

func (s FileStore) String() string {
	return "file " + s.Path
}

// KeyringStore keeps the key in the OS keyring.
type KeyringStore struct {
	Service string
	User    string
}

func (s KeyringStore) Read(ctx context.Context) (string, error) {
	key, err := keyring.Get(s.Service, s.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s KeyringStore) Write(ctx context.Context, key string) error {
	if key == "" {
		err := keyring.Delete(s.Service, s.User)
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return err
	}
	return keyring.Set(s.Service, s.User, key)
}

func (s KeyringStore) String() string {
	return "keyring entry " + s.Service + "/" + s.User
}

// Mask hides all but the last four characters of key.
func Mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
