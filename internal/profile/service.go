package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robgonnella/netscope/internal/exception"
)

// ProfileService implements the profile.Service interface
type ProfileService struct {
	repo Repo
}

// NewProfileService returns a new instance of ProfileService
func NewProfileService(repo Repo) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns a profile by id
func (s *ProfileService) Get(id string) (*Profile, error) {
	return s.repo.Get(id)
}

// GetAll returns all saved profiles
func (s *ProfileService) GetAll() ([]*Profile, error) {
	return s.repo.GetAll()
}

// Find returns a profile by name, falling back to lookup by id
func (s *ProfileService) Find(nameOrID string) (*Profile, error) {
	p, err := s.repo.GetByName(nameOrID)

	if errors.Is(err, exception.ErrRecordNotFound) {
		return s.repo.Get(nameOrID)
	}

	return p, err
}

// Create saves a new profile. Blank targets are dropped and a profile
// must keep a name and at least one target.
func (s *ProfileService) Create(p *Profile) (*Profile, error) {
	p.Name = strings.TrimSpace(p.Name)

	targets := []string{}

	for _, t := range p.Targets {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}

	p.Targets = targets

	if p.Name == "" || len(p.Targets) == 0 {
		return nil, fmt.Errorf("%w: profile requires a name and at least one target", exception.ErrInvalidInput)
	}

	return s.repo.Create(p)
}

// Update updates an existing profile
func (s *ProfileService) Update(p *Profile) (*Profile, error) {
	return s.repo.Update(p)
}

// Delete removes a profile by name or id
func (s *ProfileService) Delete(nameOrID string) error {
	p, err := s.Find(nameOrID)

	if err != nil {
		return err
	}

	return s.repo.Delete(p.ID)
}
