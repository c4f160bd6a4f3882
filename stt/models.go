package stt

// Transcription models currently exposed by the API.
const (
	ModelScribeV1             = "scribe_v1"
	ModelScribeV1Experimental = "scribe_v1_experimental"
)

// DefaultModel is used when no model is configured on the builder.
const DefaultModel = ModelScribeV1

// Timestamp granularity values for TimestampsGranularity.
const (
	GranularityNone      = "none"
	GranularityWord      = "word"
	GranularityCharacter = "character"
)

// Word types appearing in transcription results.
const (
	WordTypeWord       = "word"
	WordTypeSpacing    = "spacing"
	WordTypeAudioEvent = "audio_event"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.elevenlabs.io/v1"

	speechToTextPath = "speech-to-text"
	apiKeyHeader     = "xi-api-key"

	// maxAudioSize is the documented upload ceiling (3.0 GB).
	maxAudioSize = 3 << 30
)
