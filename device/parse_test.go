package device

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		config string
		want   *Device
	}{
		{
			"empty",
			"R9",
			"",
			&Device{ID: "R9", Hostname: "R9"},
		},
		{
			"hostname",
			"R1",
			"hostname Router1\n",
			&Device{ID: "R1", Hostname: "Router1"},
		},
		{
			"hostname without value",
			"R1",
			"hostname\n",
			&Device{ID: "R1", Hostname: "R1"},
		},
		{
			"interface with address",
			"R1",
			"interface Gi0/1\n description to R2\n ip address 10.0.0.1 255.255.255.252\n",
			&Device{ID: "R1", Hostname: "R1", Interfaces: []*Interface{
				{Name: "Gi0/1", Description: "to R2", IPAddress: "10.0.0.1", SubnetMask: "255.255.255.252"},
			}},
		},
		{
			"description spacing is normalized",
			"R1",
			"interface Gi0/1\ndescription   link    to   core  \n",
			&Device{ID: "R1", Hostname: "R1", Interfaces: []*Interface{
				{Name: "Gi0/1", Description: "link to core"},
			}},
		},
		{
			"directives before any interface are ignored",
			"R1",
			"description orphan\nip address 10.0.0.1 255.0.0.0\ninterface Gi0/1\n",
			&Device{ID: "R1", Hostname: "R1", Interfaces: []*Interface{{Name: "Gi0/1"}}},
		},
		{
			"dhcp and negated addresses carry nothing",
			"R1",
			"interface Gi0/1\n ip address dhcp\ninterface Gi0/2\n no ip address\n",
			&Device{ID: "R1", Hostname: "R1", Interfaces: []*Interface{{Name: "Gi0/1"}, {Name: "Gi0/2"}}},
		},
		{
			"ospf",
			"R1",
			"router ospf 10\n network 0.0.0.0 255.255.255.255 area 0\n",
			&Device{ID: "R1", Hostname: "R1", OSPFEnabled: true},
		},
		{
			"other routing protocols are not ospf",
			"R1",
			"router bgp 65000\nrouter\n",
			&Device{ID: "R1", Hostname: "R1"},
		},
		{
			"redeclared interface resets but keeps position",
			"R1",
			"interface A\n ip address 10.0.0.1 255.0.0.0\ninterface B\ninterface A\n description again\n",
			&Device{ID: "R1", Hostname: "R1", Interfaces: []*Interface{
				{Name: "A", Description: "again"},
				{Name: "B"},
			}},
		},
		{
			"later address wins",
			"R1",
			"interface A\n ip address 10.0.0.1 255.0.0.0\n ip address 10.0.0.2 255.255.0.0 secondary\n",
			&Device{ID: "R1", Hostname: "R1", Interfaces: []*Interface{
				{Name: "A", IPAddress: "10.0.0.2", SubnetMask: "255.255.0.0"},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.id, strings.NewReader(tt.config))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_longLine(t *testing.T) {
	config := "hostname Big\ninterface Gi0/1\n description " + strings.Repeat("x", 200*1024) + "\n"
	got, err := Parse("R1", strings.NewReader(config))
	require.NoError(t, err)
	assert.Equal(t, "Big", got.Hostname)
	assert.Len(t, got.Interface("Gi0/1").Description, 200*1024)
}

func TestParse_tooLongLine(t *testing.T) {
	config := "description " + strings.Repeat("x", maxLineLength+1)
	_, err := Parse("R1", strings.NewReader(config))
	assert.Error(t, err)
}

func TestInterface_HasAddress(t *testing.T) {
	var missing *Interface
	assert.False(t, missing.HasAddress())
	assert.False(t, (&Interface{Name: "a", IPAddress: "10.0.0.1"}).HasAddress())
	assert.False(t, (&Interface{Name: "a", SubnetMask: "255.0.0.0"}).HasAddress())
	assert.True(t, (&Interface{Name: "a", IPAddress: "10.0.0.1", SubnetMask: "255.0.0.0"}).HasAddress())
}
