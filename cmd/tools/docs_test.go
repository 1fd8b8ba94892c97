package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedModules(t *testing.T) {
	for name, docs := range supportedModules {
		t.Run(name, func(t *testing.T) {
			text, err := docs()
			require.NoError(t, err)
			assert.NotEmpty(t, text)
		})
	}
}

func TestInstructionsDocsListMnemonics(t *testing.T) {
	text, err := supportedModules["instructions"]()
	require.NoError(t, err)

	assert.Contains(t, text, "addo.")
	assert.Contains(t, text, "maddld")
}
