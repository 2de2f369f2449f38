// Package constants defines application-wide constants and configuration values.
package constants

import (
	"time"
)

// Identity of the distributed package and its platform endpoints.
const (
	// PackageName is the name of the package published to the package index.
	PackageName = "swarms"

	// APIKeysURL is the platform page where users manage their API keys.
	APIKeysURL = "https://swarms.world/platform/api-keys"

	// BookCallURL is the scheduling page for strategy sessions.
	BookCallURL = "https://cal.com/swarms/swarms-strategy-session"

	// DocsURL points at the hosted documentation.
	DocsURL = "https://docs.swarms.world"
)

// Login cache related constants.
const (
	// MarkerFileName is the login cache file created in the working directory.
	MarkerFileName = "cache.txt"

	// MarkerLoggedIn is the literal content recording a successful login.
	MarkerLoggedIn = "logged_in"
)

// Agent execution defaults.
const (
	// DefaultModel is the model used when none is given on the command line.
	DefaultModel = "gpt-4"

	// DefaultYAMLFile is the agent configuration loaded by run-agents.
	DefaultYAMLFile = "agents.yaml"

	// DefaultLLMBaseURL is the OpenAI-compatible endpoint agents talk to.
	DefaultLLMBaseURL = "https://api.openai.com/v1"
)

// Timing related constants.
const (
	// DefaultHTTPClientTimeout bounds a single chat completion round trip.
	DefaultHTTPClientTimeout = 120 * time.Second

	// DefaultUXPause is the pacing delay shown around spinners.
	DefaultUXPause = time.Second
)

// Onboarding related constants.
const (
	// ConfigDirName is the per-user directory under the home directory.
	ConfigDirName = ".swarms"

	// ProfileFileName is the onboarding profile stored in the config dir.
	ProfileFileName = "profile.json"

	// MaxPromptAttempts bounds re-prompting on invalid wizard input.
	MaxPromptAttempts = 3
)
