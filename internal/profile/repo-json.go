package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/robgonnella/netscope/internal/exception"
)

// JSONRepo is our repo implementation for a flat json file
type JSONRepo struct {
	path     string
	profiles []*Profile
	mux      sync.Mutex
}

// NewJSONRepo returns a new profile repo for a flat json file. A missing
// file is treated as an empty collection.
func NewJSONRepo(path string) (*JSONRepo, error) {
	repo := &JSONRepo{
		path:     path,
		profiles: []*Profile{},
	}

	if err := repo.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return repo, nil
}

// Get returns a profile from the file
func (r *JSONRepo) Get(id string) (*Profile, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if id == "" {
		return nil, errors.New("profile id cannot be empty")
	}

	return r.find(func(p *Profile) bool { return p.ID == id })
}

// GetByName returns a profile from the file by its unique name
func (r *JSONRepo) GetByName(name string) (*Profile, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if name == "" {
		return nil, errors.New("profile name cannot be empty")
	}

	return r.find(func(p *Profile) bool { return p.Name == name })
}

// GetAll returns all profiles in the file
func (r *JSONRepo) GetAll() ([]*Profile, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	profiles := []*Profile{}

	for _, p := range r.profiles {
		profiles = append(profiles, copyProfile(p))
	}

	return profiles, nil
}

// Create creates a new profile in the file
func (r *JSONRepo) Create(p *Profile) (*Profile, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if p.Name == "" {
		return nil, errors.New("profile name cannot be empty")
	}

	idx := slices.IndexFunc(r.profiles, func(c *Profile) bool {
		return c.Name == p.Name
	})

	if idx != -1 {
		return nil, fmt.Errorf("profile already exists: %s", p.Name)
	}

	created := copyProfile(p)
	created.ID = uuid.New().String()

	r.profiles = append(r.profiles, created)

	if err := r.write(); err != nil {
		return nil, err
	}

	return copyProfile(created), nil
}

// Update updates a profile in the file
func (r *JSONRepo) Update(p *Profile) (*Profile, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if p.ID == "" {
		return nil, errors.New("profile ID cannot be empty")
	}

	idx := slices.IndexFunc(r.profiles, func(c *Profile) bool {
		return c.ID == p.ID
	})

	if idx == -1 {
		return nil, exception.ErrRecordNotFound
	}

	r.profiles[idx] = copyProfile(p)

	if err := r.write(); err != nil {
		return nil, err
	}

	return copyProfile(p), nil
}

// Delete deletes a profile from the file
func (r *JSONRepo) Delete(id string) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	if id == "" {
		return errors.New("profile id cannot be empty")
	}

	r.profiles = slices.DeleteFunc(r.profiles, func(p *Profile) bool {
		return p.ID == id
	})

	return r.write()
}

func (r *JSONRepo) find(fn func(p *Profile) bool) (*Profile, error) {
	idx := slices.IndexFunc(r.profiles, fn)

	if idx == -1 {
		return nil, exception.ErrRecordNotFound
	}

	return copyProfile(r.profiles[idx]), nil
}

func (r *JSONRepo) write() error {
	data, err := json.MarshalIndent(&Profiles{Profiles: r.profiles}, "", "\t")

	if err != nil {
		return err
	}

	return os.WriteFile(r.path, data, 0644)
}

func (r *JSONRepo) load() error {
	data, err := os.ReadFile(r.path)

	if err != nil {
		return err
	}

	profiles := Profiles{}

	if err := json.Unmarshal(data, &profiles); err != nil {
		return err
	}

	r.profiles = profiles.Profiles

	return nil
}

// helpers
func copyProfile(p *Profile) *Profile {
	targets := make([]string, len(p.Targets))
	copy(targets, p.Targets)

	return &Profile{
		ID:        p.ID,
		Name:      p.Name,
		Targets:   targets,
		TimeoutMS: p.TimeoutMS,
		Backend:   p.Backend,
	}
}
