package magidict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/magidict/magidict"
)

func TestFromYAML(t *testing.T) {
	d, err := magidict.FromYAML([]byte("user:\n  name: Alice\n  id: 1\ntags:\n  - read\n"))
	require.NoError(t, err)

	user, ok := d.MGet("user").(*magidict.Dict)
	require.True(t, ok)
	assert.Equal(t, "Alice", user.MGet("name"))
	assert.Equal(t, 1, user.MGet("id"))
	assert.Equal(t, "read", d.MGetPath("tags", 0))
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := magidict.FromYAML([]byte(":\n\t- broken"))
	assert.True(t, magidict.IsCode(err, magidict.ErrDecode))
}

func TestFromYAMLNonMappingRoot(t *testing.T) {
	for _, raw := range []string{"- a\n- b\n", "42\n", "just a scalar\n"} {
		_, err := magidict.FromYAML([]byte(raw))
		assert.True(t, magidict.IsCode(err, magidict.ErrType), "root %q", raw)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	d := magidict.New(map[string]any{"a": 1, "b": map[string]any{"c": "x"}})

	out, err := yaml.Marshal(d)
	require.NoError(t, err)

	back, err := magidict.FromYAML(out)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestUnmarshalYAMLField(t *testing.T) {
	var cfg struct {
		Name string         `yaml:"name"`
		Opts *magidict.Dict `yaml:"opts"`
	}
	raw := "name: svc\nopts:\n  retries: 3\n  nested:\n    deep: true\n"
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, "svc", cfg.Name)
	assert.Equal(t, 3, cfg.Opts.MGet("retries"))
	assert.Equal(t, true, cfg.Opts.MGetPath("nested", "deep"))
}
