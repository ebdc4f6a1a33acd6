package plot

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*Storage, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewStorage(fs, filepath.Join(".revplot", "plot")), fs
}

func TestStorage_EnsureDefaults(t *testing.T) {
	t.Run("Should write the default template on first use", func(t *testing.T) {
		storage, fs := newTestStorage(t)
		require.NoError(t, storage.EnsureDefaults())
		content, err := afero.ReadFile(fs, storage.DefaultPath())
		require.NoError(t, err)
		assert.Equal(t, defaultTemplateContent, content)
	})
	t.Run("Should be idempotent", func(t *testing.T) {
		storage, fs := newTestStorage(t)
		require.NoError(t, storage.EnsureDefaults())
		require.NoError(t, afero.WriteFile(fs, storage.DefaultPath(), []byte(`{"custom":true}`), 0o644))
		require.NoError(t, storage.EnsureDefaults())
		content, err := afero.ReadFile(fs, storage.DefaultPath())
		require.NoError(t, err)
		assert.Equal(t, `{"custom":true}`, string(content))
	})
}

func TestStorage_Resolve(t *testing.T) {
	t.Run("Should resolve an empty name to the default template", func(t *testing.T) {
		storage, _ := newTestStorage(t)
		path, err := storage.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, storage.DefaultPath(), path)
	})
	t.Run("Should prefer an existing filesystem path", func(t *testing.T) {
		storage, fs := newTestStorage(t)
		require.NoError(t, afero.WriteFile(fs, "custom.json", []byte(`{}`), 0o644))
		path, err := storage.Resolve("custom.json")
		require.NoError(t, err)
		assert.Equal(t, "custom.json", path)
	})
	t.Run("Should resolve stored names with and without the json suffix", func(t *testing.T) {
		storage, fs := newTestStorage(t)
		stored := filepath.Join(".revplot", "plot", "scatter.json")
		require.NoError(t, afero.WriteFile(fs, stored, []byte(`{}`), 0o644))
		for _, name := range []string{"scatter", "scatter.json"} {
			path, err := storage.Resolve(name)
			require.NoError(t, err)
			assert.Equal(t, stored, path)
		}
	})
	t.Run("Should fail for unknown templates", func(t *testing.T) {
		storage, _ := newTestStorage(t)
		_, err := storage.Resolve("missing")
		var notFound *TemplateNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Name)
	})
}

func TestStorage_Load(t *testing.T) {
	t.Run("Should load a stored template by resolved path", func(t *testing.T) {
		storage, _ := newTestStorage(t)
		require.NoError(t, storage.EnsureDefaults())
		template, err := storage.Load(storage.DefaultPath())
		require.NoError(t, err)
		assert.Equal(t, DefaultTemplateName, template.Name())
		assert.Equal(t, []string{"data"}, template.Sources())
	})
}
