package secretbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	s, err := New("passphrase")
	require.NoError(t, err)

	sealed, err := s.Seal("pos-password")
	require.NoError(t, err)
	assert.NotEqual(t, "pos-password", sealed)

	again, err := s.Seal("pos-password")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again)

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "pos-password", plain)
}

func TestOpenWithWrongKey(t *testing.T) {
	a, _ := New("a")
	b, _ := New("b")

	sealed, err := a.Seal("secret")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	assert.ErrorIs(t, err, ErrCannotDecrypt)
}

func TestEmptyValues(t *testing.T) {
	s, _ := New("k")

	sealed, err := s.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	plain, err := s.Open("")
	require.NoError(t, err)
	assert.Empty(t, plain)

	_, err = New("")
	assert.ErrorIs(t, err, ErrEmptyKey)
}
