package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/spf13/viper"

	"github.com/fastcat/hellonet/log"
	"github.com/fastcat/hellonet/sim"
	"github.com/fastcat/hellonet/topology"
)

// SimData represents the raw data from the config for a simulation run,
// before it is cleaned up into a `Sim` config object.
type SimData struct {
	ConfDir       string        `mapstructure:"conf-dir"`
	Duration      time.Duration `mapstructure:"duration"`
	HelloInterval time.Duration `mapstructure:"hello-interval"`
	PollInterval  time.Duration `mapstructure:"poll-interval"`

	RouterMatch string `mapstructure:"router-match"`
	RouterGlob  string `mapstructure:"router-glob"`
	AllRouters  bool   `mapstructure:"all-routers"`

	Format   string
	Topology bool
	Once     bool
	Quiet    bool
	LogFile  string `mapstructure:"log-file"`

	Debug   bool
	Dump    bool
	Help    bool
	Version bool

	// this prop is here for compat, but is ignored because it's how we find the
	// config file, so the config file can't use it to point at a different config
	ConfigPath string `mapstructure:"config-path"`
}

// Parse converts the raw configuration data into a ready to use config.
// With --dump it prints the effective settings and returns nil.
func (s *SimData) Parse(vcfg *viper.Viper) (ret *Sim, err error) {
	// apply this right away, but only as an enable
	// once debug is on, leave it on (esp. for tests)
	if s.Debug {
		log.SetDebug(s.Debug)
	}

	ret = new(Sim)
	if s.ConfDir == "" {
		return nil, errors.Errorf("%s must not be empty", ConfDirFlag)
	}
	ret.ConfDir = s.ConfDir

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{DurationFlag, s.Duration},
		{HelloIntervalFlag, s.HelloInterval},
		{PollIntervalFlag, s.PollInterval},
	} {
		if d.value <= 0 {
			return nil, errors.Errorf("%s must be positive, got %v", d.name, d.value)
		}
	}
	if s.PollInterval > s.HelloInterval {
		return nil, errors.Errorf("%s (%v) must not exceed %s (%v)",
			PollIntervalFlag, s.PollInterval, HelloIntervalFlag, s.HelloInterval)
	}
	ret.Duration = s.Duration
	ret.HelloInterval = s.HelloInterval
	ret.PollInterval = s.PollInterval

	if ret.Format, err = topology.ParseFormat(s.Format); err != nil {
		return nil, errors.Wrapf(err, "bad %s in config", FormatFlag)
	}

	switch {
	case s.AllRouters && s.RouterGlob != "":
		return nil, errors.Errorf("%s and %s are mutually exclusive", AllRoutersFlag, RouterGlobFlag)
	case s.AllRouters:
		ret.Selector = sim.All()
		ret.SelectorName = "all devices"
	case s.RouterGlob != "":
		if ret.Selector, err = sim.MatchGlob(s.RouterGlob); err != nil {
			return nil, errors.Wrapf(err, "bad %s in config", RouterGlobFlag)
		}
		ret.SelectorName = "devices matching '" + s.RouterGlob + "'"
	default:
		ret.Selector = sim.MatchSubstring(s.RouterMatch)
		ret.SelectorName = "devices containing '" + s.RouterMatch + "'"
	}

	ret.TopologyOnly = s.Topology
	ret.Once = s.Once
	ret.Quiet = s.Quiet
	ret.LogFile = s.LogFile
	ret.Debug = s.Debug

	if s.Dump {
		all := vcfg.AllSettings()
		// don't dump cli mode args
		delete(all, DumpConfigFlag)
		delete(all, VersionFlag)
		delete(all, HelpFlag)
		humanizeDurations(all)
		// the point here is more to dump the effective config than to
		// regurgitate the input
		dump, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to serialize settings to JSON")
		}
		// marshal output never has the trailing newline
		dump = append(dump, '\n')
		_, err = os.Stdout.Write(dump)
		return nil, err
	}

	return
}
