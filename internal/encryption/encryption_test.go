package encryption

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	enc := NewEncryptorWithSalt("hunter2", bytes.Repeat([]byte{7}, SaltSize))

	sealed, err := enc.Seal([]byte(`[{"id":"1"}]`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), `"id"`)

	plain, err := enc.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(plain))
}

func TestOpenWrongKey(t *testing.T) {
	salt := bytes.Repeat([]byte{1}, SaltSize)
	sealed, err := NewEncryptorWithSalt("a", salt).Seal([]byte("x"))
	require.NoError(t, err)

	_, err = NewEncryptorWithSalt("b", salt).Open(sealed)
	assert.Error(t, err)
}

func TestOpenGarbage(t *testing.T) {
	enc := NewEncryptorWithSalt("a", nil)

	_, err := enc.Open([]byte("not base64!"))
	assert.Error(t, err)

	_, err = enc.Open([]byte("AAAA"))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewEncryptorPersistsSalt(t *testing.T) {
	saltPath := filepath.Join(t.TempDir(), "nested", "salt")

	first, err := NewEncryptor("pw", saltPath)
	require.NoError(t, err)
	salt, err := os.ReadFile(saltPath)
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	sealed, err := first.Seal([]byte("kept"))
	require.NoError(t, err)

	second, err := NewEncryptor("pw", saltPath)
	require.NoError(t, err)
	plain, err := second.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "kept", string(plain))

	_, err = NewEncryptor("", saltPath)
	assert.Error(t, err)
}
