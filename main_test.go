package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	require.NoError(t, setupLogger("debug"))
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.Error(t, setupLogger("loud"))
}

func TestRunSetupFailure(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	require.Equal(t, 1, run(config{seed: 1, territories: 5, logLevel: "disabled"}))
	require.Equal(t, 1, run(config{seed: 1, territories: 1000, logLevel: "disabled"}))
	require.Equal(t, 1, run(config{logLevel: "loud"}))
}

func TestReplayHint(t *testing.T) {
	require.Equal(t, "Seed 42 (replay with -seed 42)", replayHint(42))
}
