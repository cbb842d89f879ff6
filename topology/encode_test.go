package topology

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fastcat/hellonet/device"
)

func sampleTopology() *Topology {
	return Describe(device.NewSet(
		dev("R1", iface("Gi0/1", "10.0.0.1", "255.255.255.252")),
		dev("R2", iface("Gi0/1", "10.0.0.2", "255.255.255.252")),
		dev("R3"),
	))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in        string
		want      Format
		assertion require.ErrorAssertionFunc
	}{
		{"text", FormatText, require.NoError},
		{"YAML", FormatYAML, require.NoError},
		{"yml", FormatYAML, require.NoError},
		{"json", FormatJSON, require.NoError},
		{"xml", "", require.Error},
		{"", "", require.Error},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			tt.assertion(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleTopology(), FormatText))
	assert.Equal(t, "R1(Gi0/1) <--> R2(Gi0/1)\n", buf.String())
}

func TestEncode_textEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Describe(device.NewSet()), FormatText))
	assert.Empty(t, buf.String())
}

func TestEncode_structured(t *testing.T) {
	want := sampleTopology()
	tests := []struct {
		format Format
		decode func([]byte, interface{}) error
	}{
		{FormatJSON, json.Unmarshal},
		{FormatYAML, yaml.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, want, tt.format))
			assert.Contains(t, buf.String(), "from_interface")

			var got Topology
			require.NoError(t, tt.decode(buf.Bytes(), &got))
			assert.Equal(t, want, &got)
		})
	}
}

func TestEncode_badFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, sampleTopology(), "xml"))
}
