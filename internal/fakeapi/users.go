package fakeapi

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type account struct {
	name         string
	email        string
	passwordHash []byte
}

// userStore keeps accounts keyed by lower-cased email.
type userStore struct {
	mu       sync.RWMutex
	accounts map[string]account
	cost     int
}

func newUserStore(cost int) *userStore {
	return &userStore{accounts: make(map[string]account), cost: cost}
}

func (s *userStore) create(name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}

	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[key]; ok {
		return ErrUserExists
	}
	s.accounts[key] = account{name: name, email: email, passwordHash: hash}
	return nil
}

func (s *userStore) verify(email, password string) (account, error) {
	s.mu.RLock()
	acc, ok := s.accounts[strings.ToLower(email)]
	s.mu.RUnlock()

	if !ok {
		return account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return account{}, ErrInvalidCredentials
	}
	return acc, nil
}
