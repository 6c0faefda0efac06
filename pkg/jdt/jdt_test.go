package jdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBasic(t *testing.T) {
	out, err := Apply([]byte(`{"a":1,"b":2}`), []byte(`{"@jdt.remove":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, string(out))
}

func TestApplyPreservesSourceKeyOrder(t *testing.T) {
	out, err := Apply([]byte(`{"z":1,"a":2}`), []byte(`{"m":3}`))
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":2,"m":3}`, string(out))
}

func TestApplyPretty(t *testing.T) {
	out, err := ApplyPretty([]byte(`{"a":1}`), []byte(`{"b":2}`), "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", string(out))
}

func TestApplyInvalidSourceJSON(t *testing.T) {
	_, err := Apply([]byte(`{not json`), []byte(`{}`))
	assert.Error(t, err)
}

func TestApplyInvalidTransformJSON(t *testing.T) {
	_, err := Apply([]byte(`{}`), []byte(`{not json`))
	assert.Error(t, err)
}

func TestIsValidJSON(t *testing.T) {
	assert.True(t, IsValidJSON([]byte(`{"a":1}`)))
	assert.False(t, IsValidJSON([]byte(`{not json`)))
	assert.False(t, IsValidJSON([]byte(`{"a":1} trailing`)))
}

func TestValidateAcceptsObjectTransform(t *testing.T) {
	assert.NoError(t, Validate([]byte(`{"@jdt.remove":"a"}`)))
}

func TestValidateRejectsNonObjectTransform(t *testing.T) {
	assert.Error(t, Validate([]byte(`[1,2,3]`)))
}

func TestValidateRejectsBadJSON(t *testing.T) {
	assert.Error(t, Validate([]byte(`{not json`)))
}

func TestStripBOM(t *testing.T) {
	assert.Equal(t, "hello", StripBOM("\xef\xbb\xbfhello"))
	assert.Equal(t, "hello", StripBOM("hello"))
}
