package core

import (
	"context"

	"github.com/robgonnella/netscope/internal/config"
	"github.com/robgonnella/netscope/internal/event"
	"github.com/robgonnella/netscope/internal/logger"
	"github.com/robgonnella/netscope/internal/probe"
	"github.com/robgonnella/netscope/internal/profile"
)

// Backend pairs a probe primitive with the parser for its output
type Backend struct {
	// NewProber returns a prober sending count echo requests per probe
	NewProber func(count int) probe.Prober
	Parser    probe.Parser
}

// Core represents our core data structure
type Core struct {
	ctx            context.Context
	cancel         context.CancelFunc
	conf           config.Config
	profileService profile.Service
	backends       map[string]Backend
	events         event.Manager
	parallelism    int
	log            logger.Logger
}

// Option configures Core
type Option func(c *Core)

// WithParallelism overrides the hardware parallelism used to size scans
func WithParallelism(n int) Option {
	return func(c *Core) {
		c.parallelism = n
	}
}

// New returns new core module for given configuration
func New(
	conf config.Config,
	profileService profile.Service,
	backends map[string]Backend,
	events event.Manager,
	opts ...Option,
) *Core {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Core{
		ctx:            ctx,
		cancel:         cancel,
		conf:           conf,
		profileService: profileService,
		backends:       backends,
		events:         events,
		log:            logger.With("core"),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// Stop stops any running watch loop
func (c *Core) Stop() error {
	c.cancel()
	return c.ctx.Err()
}

// Conf returns the loaded configuration
func (c *Core) Conf() config.Config {
	return c.conf
}

// GetProfiles returns all saved profiles
func (c *Core) GetProfiles() ([]*profile.Profile, error) {
	return c.profileService.GetAll()
}

// GetProfile returns a saved profile by name or id
func (c *Core) GetProfile(nameOrID string) (*profile.Profile, error) {
	return c.profileService.Find(nameOrID)
}

// CreateProfile saves a new profile
func (c *Core) CreateProfile(p profile.Profile) (*profile.Profile, error) {
	return c.profileService.Create(&p)
}

// DeleteProfile removes a saved profile by name or id
func (c *Core) DeleteProfile(nameOrID string) error {
	return c.profileService.Delete(nameOrID)
}

// RegisterEventListener registers a channel for events of eventType
func (c *Core) RegisterEventListener(eventType event.EventType, channel chan event.Event) int {
	return c.events.RegisterListener(eventType, channel)
}

// RemoveEventListener removes a registered event listener
func (c *Core) RemoveEventListener(id int) {
	c.events.RemoveListener(id)
}
