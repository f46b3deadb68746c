package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/argdb/schema"
)

func TestOptions_YAMLRoundTripKeepsOrder(t *testing.T) {
	opts := schema.Options{
		{Key: "30", Label: "half a minute"},
		{Key: "10", Label: "ten seconds"},
		{Key: "auto", Label: "auto"},
	}

	data, err := yaml.Marshal(opts)
	require.NoError(t, err)

	var decoded schema.Options
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, opts, decoded)
	assert.Equal(t, []string{"30", "10", "auto"}, decoded.Keys())
}

func TestOptions_SequenceShorthand(t *testing.T) {
	var opts schema.Options
	require.NoError(t, yaml.Unmarshal([]byte("[auto, manual, 2]"), &opts))

	assert.Equal(t, schema.Options{
		{Key: "auto", Label: "auto"},
		{Key: "manual", Label: "manual"},
		{Key: "2", Label: "2"},
	}, opts)
}

func TestOptions_Lookup(t *testing.T) {
	opts := schema.Options{{Key: "a", Label: "Alpha"}}

	label, ok := opts.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", label)

	_, ok = opts.Lookup("b")
	assert.False(t, ok)
}

func TestOptions_RejectsScalar(t *testing.T) {
	var opts schema.Options
	err := yaml.Unmarshal([]byte(`"oops"`), &opts)
	assert.Error(t, err)
}

func TestRowYAMLOmitsEmptyOptions(t *testing.T) {
	row := schema.Row{Func: "Main", Group: "Scheduler", Arg: "Interval", Lang: "en-US", Value: 10}
	data, err := yaml.Marshal(row)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "option")

	var decoded schema.Row
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Empty(t, decoded.Option)
}
