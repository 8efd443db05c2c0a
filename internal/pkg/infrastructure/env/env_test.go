package env

import (
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatDefaultIsReturnedWhenVariableIsUnset(t *testing.T) {
	is := is.New(t)
	t.Setenv("KEEPINV_TEST_VARIABLE", "")

	v := GetVariableOrDefault(zerolog.Nop(), "KEEPINV_TEST_VARIABLE", "fallback")
	is.Equal(v, "fallback")
}

func TestThatVariableOverridesDefault(t *testing.T) {
	is := is.New(t)
	t.Setenv("KEEPINV_TEST_VARIABLE", "8081")

	v := GetVariableOrDefault(zerolog.Nop(), "KEEPINV_TEST_VARIABLE", "8080")
	is.Equal(v, "8081")
}
