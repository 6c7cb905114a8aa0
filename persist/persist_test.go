package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/loq/quant"
)

func TestSaveLoad_Raw(t *testing.T) {
	payload, err := quant.Compress([]float64{1.5, -2.25, 3.75}, 1e-4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "values.loq")
	require.NoError(t, Save(path, payload))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, payload, loaded)

	restored, err := quant.Decompress[float64](loaded)
	require.NoError(t, err)
	require.Len(t, restored, 3)
}

func TestSaveLoad_Base64(t *testing.T) {
	payload, err := quant.Compress([]float64{0.25, -100.5}, 1e-3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "values.loq.b64")
	require.NoError(t, Save(path, payload, WithBase64()))

	// The on-disk form is text, not the raw payload.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEqual(t, payload, raw)
	require.Equal(t, EncodeBase64(payload), string(raw))

	loaded, err := Load(path, WithBase64())
	require.NoError(t, err)
	require.Equal(t, payload, loaded)
}

func TestSave_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.loq")
	require.NoError(t, Save(path, []byte{1, 2, 3}, WithFileMode(0o600)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_InvalidFileMode(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "values.loq"), []byte{1}, WithFileMode(0))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.loq"))
	require.Error(t, err)
}

func TestBase64RoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x00, 0x06, 0x02, 0xFF}

	encoded := EncodeBase64(payload)
	decoded, err := DecodeBase64(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)

	_, err = DecodeBase64("not!base64")
	require.Error(t, err)
}
