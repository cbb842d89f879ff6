package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastcat/hellonet/internal/testutils"
	"github.com/fastcat/hellonet/topology"
)

// don't use the real hellonet program name, to avoid possible collisions with
// "real" environment settings
const programName = "hellonetx"

func confDir() string {
	return filepath.Join(testutils.SrcDirectory(), "..", "device", "testdata", "Conf")
}

func withEnv(t *testing.T, env map[string]string) {
	env["_CONFIG_PATH"] = testutils.SrcDirectory()
	for k, v := range env {
		if k[0] == '_' {
			k = strings.ToUpper(programName) + k
		}
		cur, has := os.LookupEnv(k)
		if has {
			t.Cleanup(func() { os.Setenv(k, cur) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		os.Setenv(k, v)
	}
}

func initCmd(t *testing.T, args ...string) *HellonetCmd {
	withEnv(t, map[string]string{})
	h := New(append([]string{programName}, args...))
	require.NoError(t, h.Init())
	t.Cleanup(func() { assert.NoError(t, h.Close()) })
	return h
}

func TestHellonetCmd_Init(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		osEnv     map[string]string
		assertion require.ErrorAssertionFunc
		postCheck func(*testing.T, *HellonetCmd)
	}{
		{
			"fail config parse: bad arg",
			[]string{"--garbagearg"},
			nil,
			func(t require.TestingT, err error, msgAndArgs ...interface{}) {
				require.Error(t, err, msgAndArgs...)
				require.Contains(t, err.Error(), "parse config")
			},
			func(t *testing.T, h *HellonetCmd) {
				assert.Nil(t, h.Config)
				assert.Nil(t, h.Controller)
			},
		},
		{
			"fail config data parse: bad env val",
			nil,
			map[string]string{
				"_DURATION": "soon",
			},
			func(t require.TestingT, err error, msgAndArgs ...interface{}) {
				require.Error(t, err, msgAndArgs...)
				assert.ErrorContains(t, err, "load config")
			},
			func(t *testing.T, h *HellonetCmd) {
				assert.Nil(t, h.Config)
				assert.Nil(t, h.Controller)
			},
		},
		{
			"config dump mode",
			[]string{"--dump"},
			nil,
			require.NoError,
			func(t *testing.T, h *HellonetCmd) {
				assert.Nil(t, h.Config)
				assert.Nil(t, h.Controller)
			},
		},
		{
			"missing conf dir",
			[]string{"--conf-dir", filepath.Join(os.TempDir(), "hellonet-does-not-exist")},
			nil,
			require.NoError,
			func(t *testing.T, h *HellonetCmd) {
				require.NotNil(t, h.Config)
				assert.Equal(t, 0, h.Devices.Len())
				assert.Empty(t, h.Topology.Links)
				assert.NotNil(t, h.Controller)
			},
		},
		{
			"lab configs",
			[]string{"--conf-dir", confDir(), "--quiet"},
			nil,
			require.NoError,
			func(t *testing.T, h *HellonetCmd) {
				require.NotNil(t, h.Config)
				assert.Equal(t, []string{"R1", "R2", "R3", "SW1"}, h.Devices.IDs())
				assert.Len(t, h.Topology.Links, 3)
				assert.Equal(t, [][]string{{"R1", "R2", "R3", "SW1"}}, h.Topology.Segments)
				assert.Nil(t, h.live, "quiet has no live echo")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			for k, v := range tt.osEnv {
				env[k] = v
			}
			withEnv(t, env)
			h := New(append([]string{programName}, tt.args...))
			defer h.Close()
			var err error
			testutils.CaptureOutput(t, func() { err = h.Init() })
			tt.assertion(t, err)
			if tt.postCheck != nil {
				tt.postCheck(t, h)
			}
		})
	}
}

func TestHellonetCmd_Run_nothingToDo(t *testing.T) {
	withEnv(t, map[string]string{})
	h := New([]string{programName, "--version"})
	testutils.CaptureOutput(t, func() { require.NoError(t, h.Init()) })
	var out bytes.Buffer
	assert.NoError(t, h.Run(strings.NewReader("1\n"), &out))
	assert.Empty(t, out.String())
}

func TestHellonetCmd_Run_menu(t *testing.T) {
	h := initCmd(t, "--conf-dir", confDir())
	var out bytes.Buffer
	require.NoError(t, h.Run(strings.NewReader("1\n3\n9\n\n4\n1\n"), &out))

	text := out.String()
	assert.Contains(t, text, "1. Display Network Topology")
	assert.Contains(t, text, "--- Discovered Network Links ---")
	assert.Contains(t, text, "R1(GigabitEthernet0/1) <--> R2(GigabitEthernet0/1)\n")
	assert.Contains(t, text, "R2(GigabitEthernet0/2) <--> SW1(Vlan10)\n")
	assert.Contains(t, text, "4 devices in 1 segments:")
	assert.Contains(t, text, "No simulation has been run yet.")
	assert.Equal(t, 2, strings.Count(text, "Invalid choice."))
	assert.Contains(t, text, "Exiting tool.")
	// input after exit is not read
	assert.Equal(t, 1, strings.Count(text, "--- Discovered Network Links ---"))
}

func TestHellonetCmd_Run_menuEOF(t *testing.T) {
	h := initCmd(t, "--conf-dir", confDir())
	var out bytes.Buffer
	assert.NoError(t, h.Run(strings.NewReader("3"), &out))
	assert.Contains(t, out.String(), "No simulation has been run yet.")
	assert.NotContains(t, out.String(), "Exiting tool.")
}

func TestHellonetCmd_Run_menuNoLinks(t *testing.T) {
	h := initCmd(t, "--conf-dir", t.TempDir())
	var out bytes.Buffer
	require.NoError(t, h.Run(strings.NewReader("1\n4\n"), &out))
	assert.Contains(t, out.String(), "No links found.")
	assert.Contains(t, out.String(), "0 devices in 0 segments:")
}

func TestHellonetCmd_Run_simulation(t *testing.T) {
	h := initCmd(t,
		"--conf-dir", confDir(),
		"--duration", "300ms",
		"--hello-interval", "100ms",
		"--poll-interval", "10ms",
	)
	var out bytes.Buffer
	require.NoError(t, h.Run(strings.NewReader("2\n3\n4\n"), &out))

	text := out.String()
	assert.Contains(t, text, "--- Starting Simulation (runs for 300ms, devices containing 'R') ---")
	assert.Contains(t, text, "--- Simulation Complete ---")
	assert.Contains(t, text, "--- Last Simulation Logs ---")
	for _, host := range []string{"Router1", "Router2", "R3"} {
		assert.Contains(t, text, "--- Log for Device: "+host+" ---")
		// once echoed live, once in the log listing
		assert.Equal(t, 2, strings.Count(text, "["+host+"] Thread finished."), host)
	}
	assert.NotContains(t, text, "Log for Device: Switch1")
	assert.Contains(t, text, "[Router1] Sent 'OSPF_HELLO' to R2")
	assert.Contains(t, text, "Switch1 (SW1): ")
}

func TestHellonetCmd_Run_once(t *testing.T) {
	h := initCmd(t,
		"--conf-dir", confDir(),
		"--once",
		"--quiet",
		"--all-routers",
		"--duration", "50ms",
		"--hello-interval", "20ms",
		"--poll-interval", "5ms",
	)
	var out bytes.Buffer
	require.NoError(t, h.Run(strings.NewReader(""), &out))

	text := out.String()
	assert.NotContains(t, text, "Main Menu")
	assert.Contains(t, text, "--- Log for Device: Switch1 ---")
	// quiet: only the log listing has it
	assert.Equal(t, 1, strings.Count(text, "[Router1] Thread finished."))
}

func TestHellonetCmd_Run_topology(t *testing.T) {
	h := initCmd(t, "--conf-dir", confDir(), "--topology", "--format", "json")
	var out bytes.Buffer
	require.NoError(t, h.Run(strings.NewReader(""), &out))

	var got topology.Topology
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, h.Topology, &got)
	assert.Len(t, got.Links, 3)
}

func TestHellonetCmd_Run_signal(t *testing.T) {
	h := initCmd(t, "--conf-dir", confDir(), "--once", "--quiet", "--duration", "1h")
	var out bytes.Buffer
	done := make(chan error)
	go func() { done <- h.Run(strings.NewReader(""), &out) }()

	require.Eventually(t, h.Controller.Active, testutils.Scaled(time.Second), time.Millisecond)
	h.sendPrintRequestSignal()
	h.signals <- syscall.SIGINT

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(testutils.Scaled(5 * time.Second)):
		require.FailNow(t, "simulation did not stop on signal")
	}
	assert.False(t, h.Controller.Active())
	assert.Contains(t, out.String(), "--- Log for Device: Router1 ---")
}

func TestHellonetCmd_Run_staleSignal(t *testing.T) {
	const duration = 200 * time.Millisecond
	h := initCmd(t, "--conf-dir", confDir(), "--once", "--quiet", "--duration", duration.String())
	// left behind by an earlier run
	h.signals <- syscall.SIGINT

	var out bytes.Buffer
	start := time.Now()
	require.NoError(t, h.Run(strings.NewReader(""), &out))
	assert.GreaterOrEqual(t, time.Since(start), duration, "run must not be cut short")
	assert.Contains(t, out.String(), "--- Simulation Complete ---")
	assert.Empty(t, h.signals)
}

func TestHellonetCmd_logFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "hellonet.log")
	h := initCmd(t, "--conf-dir", confDir(), "--log-file", logPath)
	require.NoError(t, h.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Loaded 4 devices")
}
