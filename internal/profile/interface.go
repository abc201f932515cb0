package profile

//go:generate mockgen -destination=../mock/profile/mock_profile.go -package=mock_profile . Repo,Service

// Profile represents a saved, named list of scan targets
type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Targets   []string `json:"targets"`
	TimeoutMS int      `json:"timeoutMS"`
	Backend   string   `json:"backend"`
}

// Profiles represents our collection of json profiles
type Profiles struct {
	Profiles []*Profile `json:"profiles"`
}

// Repo interface representing access to stored profiles
type Repo interface {
	Get(id string) (*Profile, error)
	GetByName(name string) (*Profile, error)
	GetAll() ([]*Profile, error)
	Create(p *Profile) (*Profile, error)
	Update(p *Profile) (*Profile, error)
	Delete(id string) error
}

// Service interface for manipulating profiles
type Service interface {
	Get(id string) (*Profile, error)
	GetAll() ([]*Profile, error)
	Find(nameOrID string) (*Profile, error)
	Create(p *Profile) (*Profile, error)
	Update(p *Profile) (*Profile, error)
	Delete(nameOrID string) error
}
