package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Probe backends
const (
	BackendPing = "ping"
	BackendNmap = "nmap"
)

// Profile stores
const (
	StoreSqlite = "sqlite"
	StoreJSON   = "json"
)

// ScanConfig represents defaults applied to every scan
type ScanConfig struct {
	TimeoutMS int    `yaml:"timeout_ms"`
	Backend   string `yaml:"backend"`
	Parser    string `yaml:"parser"`
	Count     int    `yaml:"count"`
}

// WatchConfig represents configuration for repeated scans
type WatchConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// ProfilesConfig represents where saved target profiles are stored
type ProfilesConfig struct {
	Store string `yaml:"store"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Scan         ScanConfig     `yaml:"scan"`
	Watch        WatchConfig    `yaml:"watch"`
	Profiles     ProfilesConfig `yaml:"profiles"`
	CheckAddress string         `yaml:"check_address"`
}

// environment overrides, e.g. NETSCOPE_SCAN_BACKEND=nmap
var envKeys = []string{
	"scan.timeout_ms",
	"scan.backend",
	"scan.parser",
	"scan.count",
	"watch.interval_seconds",
	"profiles.store",
	"check_address",
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			TimeoutMS: 1200,
			Backend:   BackendPing,
			Parser:    "auto",
			Count:     1,
		},
		Watch: WatchConfig{
			IntervalSeconds: 30,
		},
		Profiles: ProfilesConfig{
			Store: StoreSqlite,
		},
		CheckAddress: "8.8.8.8:53",
	}
}

// New returns umarshaled data structure of user provided config with
// defaults filled in for anything left unset
func New(confPath string) (*Config, error) {
	var conf Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return nil, err
	}

	applyEnv(&conf)

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Load returns the config at confPath, or the default config if the file
// does not exist yet
func Load(confPath string) (*Config, error) {
	conf, err := New(confPath)

	if errors.Is(err, os.ErrNotExist) {
		conf = Default()
		applyEnv(conf)
		return conf, conf.Validate()
	}

	return conf, err
}

// Validate checks enumerated config values
func (c Config) Validate() error {
	switch c.Scan.Backend {
	case BackendPing, BackendNmap:
	default:
		return fmt.Errorf("unsupported scan backend: %s", c.Scan.Backend)
	}

	switch c.Scan.Parser {
	case "auto", "windows", "unix", "nmap":
	default:
		return fmt.Errorf("unsupported output parser: %s", c.Scan.Parser)
	}

	if c.Scan.Parser == "nmap" && c.Scan.Backend != BackendNmap {
		return fmt.Errorf("output parser nmap requires the nmap backend, got %s", c.Scan.Backend)
	}

	switch c.Profiles.Store {
	case StoreSqlite, StoreJSON:
	default:
		return fmt.Errorf("unsupported profile store: %s", c.Profiles.Store)
	}

	if c.Watch.IntervalSeconds <= 0 {
		return errors.New("watch interval must be positive")
	}

	return nil
}

// Write persists conf to the config file path shared through viper
func Write(conf Config) error {
	configFile, ok := viper.Get("config-file").(string)

	if !ok || configFile == "" {
		return errors.New("failed to find config file path")
	}

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}

func applyEnv(conf *Config) {
	v := viper.New()

	for _, key := range envKeys {
		_ = v.BindEnv(key, "NETSCOPE_"+envName(key))
	}

	if v.IsSet("scan.timeout_ms") {
		conf.Scan.TimeoutMS = v.GetInt("scan.timeout_ms")
	}

	if v.IsSet("scan.backend") {
		conf.Scan.Backend = v.GetString("scan.backend")
	}

	if v.IsSet("scan.parser") {
		conf.Scan.Parser = v.GetString("scan.parser")
	}

	if v.IsSet("scan.count") {
		conf.Scan.Count = v.GetInt("scan.count")
	}

	if v.IsSet("watch.interval_seconds") {
		conf.Watch.IntervalSeconds = v.GetInt("watch.interval_seconds")
	}

	if v.IsSet("profiles.store") {
		conf.Profiles.Store = v.GetString("profiles.store")
	}

	if v.IsSet("check_address") {
		conf.CheckAddress = v.GetString("check_address")
	}
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
