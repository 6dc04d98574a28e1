package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSealer(t *testing.T) *Sealer {
	enc, err := NewRandomKey()
	require.NoError(t, err)
	sig, err := NewRandomKey()
	require.NoError(t, err)

	s, err := NewSealer(enc, sig)
	require.NoError(t, err)
	return s
}

func TestSealOpen(t *testing.T) {
	s := testSealer(t)

	sealed, err := s.Seal([]byte(`{"amount":"100.00"}`))
	require.NoError(t, err)

	plain, err := s.Open(sealed)
	assert.Nil(t, err)
	assert.Equal(t, `{"amount":"100.00"}`, string(plain))
}

func TestOpenRejectsOtherKeys(t *testing.T) {
	sealed, err := testSealer(t).Seal([]byte("hi"))
	require.NoError(t, err)

	_, err = testSealer(t).Open(sealed)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestOpenRejectsTampering(t *testing.T) {
	s := NewRandomSealer()

	sealed, err := s.Seal([]byte("hi"))
	require.NoError(t, err)

	_, err = s.Open("nodot")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = s.Open("!!!." + sealed)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = s.Open("AAAA" + sealed)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestNewSealerShortKey(t *testing.T) {
	_, err := NewSealer("short", "also-short")
	assert.ErrorIs(t, err, ErrKeyTooShort)
}
