package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichyo/icfpc2019-public/internal/codec"
)

func TestRunBatch_SolvesEachTaskAndWritesSolution(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeFile(t, inputDir, "prob-001.desc", "(0,0),(3,0),(3,2),(0,2)#(0,0)##")

	err := RunBatch(context.Background(), BatchOptions{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Duration:  100 * time.Millisecond,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(outputDir, "prob-001.sol"))
	require.NoError(t, err)

	commands, err := codec.ParseCommands(string(raw))
	require.NoError(t, err)
	assert.Greater(t, commands.Len(), 0)

	_, err = os.Stat(filepath.Join(outputDir, "prob-001.buy"))
	assert.True(t, os.IsNotExist(err), "buy file only written when WithBuy is set")
}

func TestRunBatch_WritesBuyFileWhenRequested(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeFile(t, inputDir, "prob-002.desc", "(0,0),(2,0),(2,2),(0,2)#(0,0)##")

	err := RunBatch(context.Background(), BatchOptions{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Duration:  100 * time.Millisecond,
		WithBuy:   true,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outputDir, "prob-002.buy"))
	assert.NoError(t, err)
}

func TestRunBatch_NoMatchingFilesIsNotAnError(t *testing.T) {
	err := RunBatch(context.Background(), BatchOptions{
		InputDir:  t.TempDir(),
		OutputDir: t.TempDir(),
		Duration:  10 * time.Millisecond,
	})
	assert.NoError(t, err)
}
