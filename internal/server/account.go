package server

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// AccountStore is an in-memory, bcrypt-hashed nickname/password table,
// replacing the teacher's DB-backed account persistence — this server
// has no character data to persist, only a nickname reservation.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string][]byte // nickname -> bcrypt hash
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: map[string][]byte{}}
}

// Authenticate registers nickname on first use (so a fresh nickname is
// always a de-facto signup) and otherwise checks password against the
// stored hash.
func (s *AccountStore) Authenticate(nickname, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hash, ok := s.accounts[nickname]; ok {
		return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false
	}
	s.accounts[nickname] = hash
	return true
}

func (s *AccountStore) Exists(nickname string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[nickname]
	return ok
}
