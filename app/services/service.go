package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"scholarflow/app/logger"
	"scholarflow/app/store"
)

// Service bundles every backend operation over the shared store. All
// mutating operations are whole-state read-modify-writes serialized by the
// store; the clock is injected so time-dependent rules are testable.
type Service struct {
	store  *store.Store
	log    *logger.Logger
	pwHash []byte
	now    func() time.Time
}

func New(st *store.Store, log *logger.Logger, sharedPassword string) *Service {
	hash, err := bcrypt.GenerateFromPassword([]byte(sharedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("hash shared password: %v", err)
	}
	return &Service{
		store:  st,
		log:    log,
		pwHash: hash,
		now:    time.Now,
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
