package root_test

import (
	"context"
	"path/filepath"
	"testing"

	"fjacquet/voice-ledger/cmd/root"
	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/container"
	"fjacquet/voice-ledger/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "voice-ledger", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "spoken expense notes")
	assert.Contains(t, root.Cmd.Long, "voice-ledger parses voice transcripts")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	configFlag := root.Cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("log-level"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("log-format"))
}

func TestSetContainer(t *testing.T) {
	cfg := &config.Config{
		Parser:    config.ParserConfig{DefaultCurrency: "INR", Timezone: "UTC"},
		Keywords:  config.KeywordsConfig{File: filepath.Join(t.TempDir(), "keywords.yaml")},
		Translate: config.TranslateConfig{Provider: config.ProviderNone},
	}
	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(context.Background(), cfg, logger)
	require.NoError(t, err)

	root.SetContainer(c)
	defer root.SetContainer(nil)

	assert.Same(t, c, root.GetContainer())
	assert.Equal(t, logging.Logger(logger), root.Log)
}
