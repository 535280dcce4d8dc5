package tests

import (
	"errors"
	"io"
	"testing"

	"github.com/aretw0/headr/pkg/domain"
	"github.com/aretw0/headr/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SourceOpenerContractTest is a reusable test suite that verifies if an adapter complies with ports.SourceOpener.
// setupData maps names the opener can serve to their expected content; stdin is what "-" must yield.
func SourceOpenerContractTest(t *testing.T, opener ports.SourceOpener, setupData map[string][]byte, stdin []byte) {
	t.Helper()

	t.Run("Open_Success", func(t *testing.T) {
		for name, expected := range setupData {
			src, err := opener.Open(name)
			require.NoError(t, err, "opening %s", name)
			assert.Equal(t, name, src.Name)
			assert.Equal(t, domain.NamedFile, src.Kind)

			content, err := io.ReadAll(src)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(content), "content mismatch for %s", name)
			assert.NoError(t, src.Close())
		}
	})

	t.Run("Open_NotFound", func(t *testing.T) {
		_, err := opener.Open("non-existent-source")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))

		var unavailable *domain.SourceUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "non-existent-source", unavailable.Name)
	})

	t.Run("Open_Stdin", func(t *testing.T) {
		src, err := opener.Open(domain.StdinName)
		require.NoError(t, err)
		assert.Equal(t, domain.StandardInput, src.Kind)

		content, err := io.ReadAll(src)
		require.NoError(t, err)
		assert.Equal(t, string(stdin), string(content))
		assert.NoError(t, src.Close())
	})
}
