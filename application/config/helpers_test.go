package config

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasmun/factmod/domain/errors"
)

func TestGetInt(t *testing.T) {
	cfg := Config{
		"int":     42,
		"int64":   int64(43),
		"float64": float64(44),
		"string":  "45",
	}

	v, ok := GetInt(cfg, "int")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = GetInt(cfg, "int64")
	assert.True(t, ok)
	assert.Equal(t, 43, v)

	v, ok = GetInt(cfg, "float64")
	assert.True(t, ok)
	assert.Equal(t, 44, v)

	_, ok = GetInt(cfg, "string")
	assert.False(t, ok)

	_, ok = GetInt(cfg, "missing")
	assert.False(t, ok)
}

func TestGetInt64_JSONNumbers(t *testing.T) {
	// JSON decoding yields float64; the helper must still produce int64.
	cfg := Config{"n": float64(20)}
	v, ok := GetInt64(cfg, "n")
	assert.True(t, ok)
	assert.Equal(t, int64(20), v)
}

func TestGetStringDefault(t *testing.T) {
	cfg := Config{"mode": "big"}
	assert.Equal(t, "big", GetStringDefault(cfg, "mode", "checked"))
	assert.Equal(t, "checked", GetStringDefault(cfg, "missing", "checked"))
	assert.Equal(t, "checked", GetStringDefault(nil, "mode", "checked"))
}

func TestMustGetInt(t *testing.T) {
	cfg := Config{"n": 10}

	v, err := MustGetInt(cfg, "n")
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = MustGetInt(cfg, "missing")
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	require.True(t, stdErrors.As(err, &cfgErr))
	assert.Equal(t, "missing", cfgErr.Field)
}

func TestValidateConfig(t *testing.T) {
	type target struct {
		Mode string `json:"mode" validate:"omitempty,oneof=checked wrap big"`
	}

	t.Run("valid", func(t *testing.T) {
		var tgt target
		err := ValidateConfig(Config{"mode": "wrap"}, &tgt)
		require.NoError(t, err)
		assert.Equal(t, "wrap", tgt.Mode)
	})

	t.Run("invalid value", func(t *testing.T) {
		var tgt target
		err := ValidateConfig(Config{"mode": "octal"}, &tgt)
		require.Error(t, err)

		var cfgErr *errors.ConfigError
		assert.True(t, stdErrors.As(err, &cfgErr))
	})

	t.Run("wrong type", func(t *testing.T) {
		var tgt target
		err := ValidateConfig(Config{"mode": 12}, &tgt)
		require.Error(t, err)
	})
}
