package profile

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/robgonnella/netscope/internal/exception"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new profile repo backed by sqlite
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{
		db: db,
	}
}

// Get returns a profile from the db
func (r *SqliteRepo) Get(id string) (*Profile, error) {
	if id == "" {
		return nil, errors.New("profile id cannot be empty")
	}

	model := ProfileModel{}

	if result := r.db.First(&model, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToProfile(&model)
}

// GetByName returns a profile from the db by its unique name
func (r *SqliteRepo) GetByName(name string) (*Profile, error) {
	if name == "" {
		return nil, errors.New("profile name cannot be empty")
	}

	model := ProfileModel{}

	if result := r.db.First(&model, "name = ?", name); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToProfile(&model)
}

// GetAll returns all profiles in db ordered by name
func (r *SqliteRepo) GetAll() ([]*Profile, error) {
	models := []ProfileModel{}

	if result := r.db.Order("name asc").Find(&models); result.Error != nil {
		return nil, result.Error
	}

	profiles := []*Profile{}

	for _, m := range models {
		p, err := modelToProfile(&m)

		if err != nil {
			return nil, err
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}

// Create creates a new profile in db
func (r *SqliteRepo) Create(p *Profile) (*Profile, error) {
	if p.Name == "" {
		return nil, errors.New("profile name cannot be empty")
	}

	model, err := profileToModel(p)

	if err != nil {
		return nil, err
	}

	model.ID = uuid.New().String()

	if result := r.db.Create(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToProfile(model)
}

// Update updates a profile in db
func (r *SqliteRepo) Update(p *Profile) (*Profile, error) {
	if p.ID == "" {
		return nil, errors.New("profile ID cannot be empty")
	}

	if _, err := r.Get(p.ID); err != nil {
		return nil, err
	}

	model, err := profileToModel(p)

	if err != nil {
		return nil, err
	}

	result := r.db.Model(&ProfileModel{ID: p.ID}).
		Select("name", "targets", "timeout_ms", "backend").
		Updates(model)

	if result.Error != nil {
		return nil, result.Error
	}

	return r.Get(p.ID)
}

// Delete deletes a profile from db
func (r *SqliteRepo) Delete(id string) error {
	if id == "" {
		return errors.New("profile id cannot be empty")
	}

	return r.db.Delete(&ProfileModel{ID: id}).Error
}

// helpers
func modelToProfile(model *ProfileModel) (*Profile, error) {
	targets := []string{}

	if len(model.Targets) > 0 {
		if err := json.Unmarshal([]byte(model.Targets.String()), &targets); err != nil {
			return nil, err
		}
	}

	return &Profile{
		ID:        model.ID,
		Name:      model.Name,
		Targets:   targets,
		TimeoutMS: model.TimeoutMS,
		Backend:   model.Backend,
	}, nil
}

func profileToModel(p *Profile) (*ProfileModel, error) {
	targets := p.Targets

	if targets == nil {
		targets = []string{}
	}

	targetsBytes, err := json.Marshal(targets)

	if err != nil {
		return nil, err
	}

	return &ProfileModel{
		ID:        p.ID,
		Name:      p.Name,
		Targets:   datatypes.JSON(targetsBytes),
		TimeoutMS: p.TimeoutMS,
		Backend:   p.Backend,
	}, nil
}
