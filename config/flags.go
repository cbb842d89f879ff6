package config

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fastcat/hellonet/internal"
	"github.com/fastcat/hellonet/log"
	"github.com/fastcat/hellonet/router"
	"github.com/fastcat/hellonet/sim"
	"github.com/fastcat/hellonet/topology"
)

const (
	// ConfDirFlag is the name of the flag for the directory of device configs
	ConfDirFlag = "conf-dir"
	// DurationFlag is the name of the flag for how long a simulation runs
	DurationFlag = "duration"
	// HelloIntervalFlag is the name of the flag for the router hello period
	HelloIntervalFlag = "hello-interval"
	// PollIntervalFlag is the name of the flag for the router loop sleep
	PollIntervalFlag = "poll-interval"
	// RouterMatchFlag is the name of the flag for the id fragment that selects routers
	RouterMatchFlag = "router-match"
	// RouterGlobFlag is the name of the flag for the id pattern that selects routers
	RouterGlobFlag = "router-glob"
	// AllRoutersFlag is the name of the flag to simulate every device
	AllRoutersFlag = "all-routers"
	// FormatFlag is the name of the flag for the topology output format
	FormatFlag = "format"
	// TopologyFlag is the name of the flag to print the topology and exit
	TopologyFlag = "topology"
	// OnceFlag is the name of the flag to run one simulation and exit
	OnceFlag = "once"
	// QuietFlag is the name of the flag to suppress live router output
	QuietFlag = "quiet"
	// LogFileFlag is the name of the flag for an extra log destination
	LogFileFlag = "log-file"
	// DumpConfigFlag is the name of the flag to request config dumping
	DumpConfigFlag = "dump"
	// VersionFlag is the name of the flag to request printing the program version
	VersionFlag = "version"
	// HelpFlag is the name of the flag to request printing program usage
	HelpFlag = "help"
	// ConfigPathFlag is the name of the setting for the config file base path
	ConfigPathFlag = "config-path"
	// DebugFlag enables debug logging
	DebugFlag = "debug"
)

// DefaultConfDir is where device configs are read from by default
const DefaultConfDir = "Conf"

func programName(args []string) string {
	base := path.Base(args[0])
	ext := path.Ext(base)
	if len(ext) > 0 {
		base = base[:len(base)-len(ext)]
	}
	return base
}

func programInfo(args []string) string {
	return fmt.Sprintf("%s (%s)", programName(args), internal.Version)
}

// Init sets up the config flags and other parsing setup
func Init(args []string) (flags *pflag.FlagSet, vcfg *viper.Viper) {
	flags = pflag.NewFlagSet(programInfo(args), pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage of %s:\n", programInfo(args))
		flags.PrintDefaults()
	}
	vcfg = viper.New()

	// need this for `AllSettings` to type things that come from the environment correctly
	// this also requires explicitly specifying defaults for everything, not just relying on the flag default
	vcfg.SetTypeByDefaultValue(true)

	vcfg.SetDefault(ConfDirFlag, DefaultConfDir)
	flags.StringP(ConfDirFlag, "c", DefaultConfDir, "Directory holding one folder per device, each with a config.dump")

	vcfg.SetDefault(DurationFlag, sim.DefaultDuration)
	flags.DurationP(DurationFlag, "t", sim.DefaultDuration, "How long each simulation runs")

	vcfg.SetDefault(HelloIntervalFlag, router.DefaultHelloInterval)
	flags.Duration(HelloIntervalFlag, router.DefaultHelloInterval, "How often routers send hellos to their neighbors")

	vcfg.SetDefault(PollIntervalFlag, router.DefaultPollInterval)
	flags.Duration(PollIntervalFlag, router.DefaultPollInterval, "How long routers sleep between polls of their mailbox")

	vcfg.SetDefault(RouterMatchFlag, sim.DefaultRouterMatch)
	flags.String(RouterMatchFlag, sim.DefaultRouterMatch, "Simulate devices whose id contains this text")

	vcfg.SetDefault(RouterGlobFlag, "")
	flags.String(RouterGlobFlag, "", "Simulate devices whose id matches this pattern (overrides --"+RouterMatchFlag+")")

	vcfg.SetDefault(AllRoutersFlag, false)
	flags.Bool(AllRoutersFlag, false, "Simulate every device")

	vcfg.SetDefault(FormatFlag, string(topology.FormatText))
	flags.StringP(FormatFlag, "f", string(topology.FormatText), "Topology output format (text, yaml, json)")

	vcfg.SetDefault(TopologyFlag, false)
	flags.Bool(TopologyFlag, false, "Print the topology and exit")

	vcfg.SetDefault(OnceFlag, false)
	flags.Bool(OnceFlag, false, "Run one simulation, print the logs, and exit")

	vcfg.SetDefault(QuietFlag, false)
	flags.BoolP(QuietFlag, "q", false, "Don't echo router log lines while a simulation runs")

	vcfg.SetDefault(LogFileFlag, "")
	flags.String(LogFileFlag, "", "Also write logs to this file")

	vcfg.SetDefault(DumpConfigFlag, false)
	flags.Bool(DumpConfigFlag, false, "Dump configuration instead of running")

	vcfg.SetDefault(VersionFlag, false)
	flags.Bool(VersionFlag, false, "Print program version")

	vcfg.SetDefault(HelpFlag, false)
	flags.BoolP(HelpFlag, "h", false, "Print program usage")

	vcfg.SetDefault(ConfigPathFlag, "/etc/hellonet")
	// no flag for config-path for now, only env

	vcfg.SetDefault(DebugFlag, false)
	flags.BoolP(DebugFlag, "d", false, "Enable debug logging output")

	err := vcfg.BindPFlags(flags)
	// this should never happen, flags are constant
	if err != nil {
		panic(err)
	}
	vcfg.SetEnvPrefix(programName(args))
	vcfg.AutomaticEnv()
	// hard to set env vars with hyphens, bash doesn't like it
	vcfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return flags, vcfg
}

// Parse reads flags and configs
func Parse(flags *pflag.FlagSet, vcfg *viper.Viper, args []string) (ret *SimData, err error) {
	err = flags.Parse(args[1:])
	if err != nil {
		flags.Usage()
		return ret, err
	}
	// activate debug logging immediately
	if debug, _ := flags.GetBool(DebugFlag); debug {
		log.SetDebug(true)
	}

	// handle --version and --help specially
	if help, _ := flags.GetBool(HelpFlag); help {
		// if help is requested explicitly, don't send it to stderr
		flags.SetOutput(os.Stdout)
		flags.Usage()
		return nil, nil
	}
	if version, _ := flags.GetBool(VersionFlag); version {
		_, err = fmt.Printf("%s\n", programInfo(args))
		return nil, err
	}

	vcfg.SetConfigName(programName(args))
	// this is perversely recursive
	vcfg.AddConfigPath(vcfg.GetString(ConfigPathFlag))

	err = vcfg.ReadInConfig()
	if err != nil {
		// config file not found is harmless
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	ret = new(SimData)
	if err = vcfg.UnmarshalExact(ret); err != nil {
		flags.Usage()
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	return ret, nil
}

// durations come out of viper as time.Duration, which JSON would otherwise
// print as nanoseconds
func humanizeDurations(all map[string]interface{}) {
	for k, v := range all {
		if d, ok := v.(time.Duration); ok {
			all[k] = d.String()
		}
	}
}
