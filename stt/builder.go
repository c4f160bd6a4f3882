package stt

import "context"

// SpeechToTextBuilder accumulates transcription options. Every setter is
// a pure transformation returning an updated copy, so a builder value can
// be forked, shared, and executed concurrently; repeated calls to the
// same setter are last-write-wins.
type SpeechToTextBuilder struct {
	client *Client
	audio  []byte
	params speechToTextParams
}

// Model sets the transcription model (ModelScribeV1 or
// ModelScribeV1Experimental). Defaults to ModelScribeV1.
func (b SpeechToTextBuilder) Model(modelID string) SpeechToTextBuilder {
	b.params.ModelID = ptr(modelID)
	return b
}

// LanguageCode enforces an ISO 639-1 language for the model.
func (b SpeechToTextBuilder) LanguageCode(code string) SpeechToTextBuilder {
	b.params.LanguageCode = ptr(code)
	return b
}

// TagAudioEvents annotates events like (laughter) in the transcript.
func (b SpeechToTextBuilder) TagAudioEvents(tag bool) SpeechToTextBuilder {
	b.params.TagAudioEvents = ptr(tag)
	return b
}

// NumSpeakers caps the number of speakers the model predicts (1-32).
func (b SpeechToTextBuilder) NumSpeakers(n int) SpeechToTextBuilder {
	b.params.NumSpeakers = ptr(n)
	return b
}

// TimestampsGranularity selects timestamp detail: GranularityNone,
// GranularityWord, or GranularityCharacter.
func (b SpeechToTextBuilder) TimestampsGranularity(granularity string) SpeechToTextBuilder {
	b.params.TimestampsGranularity = ptr(granularity)
	return b
}

// Diarize annotates which speaker is talking.
func (b SpeechToTextBuilder) Diarize(diarize bool) SpeechToTextBuilder {
	b.params.Diarize = ptr(diarize)
	return b
}

// DiarizationThreshold tunes speaker separation (0.0-1.0). Only legal
// with Diarize(true) and NumSpeakers unset.
func (b SpeechToTextBuilder) DiarizationThreshold(threshold float64) SpeechToTextBuilder {
	b.params.DiarizationThreshold = ptr(threshold)
	return b
}

// CloudStorageURL references an HTTPS-hosted audio file instead of an
// upload. Exactly one of the audio bytes or this URL must be set.
func (b SpeechToTextBuilder) CloudStorageURL(url string) SpeechToTextBuilder {
	b.params.CloudStorageURL = ptr(url)
	return b
}

// Webhook delivers the result to configured webhooks; the request
// returns early without the transcript.
func (b SpeechToTextBuilder) Webhook(webhook bool) SpeechToTextBuilder {
	b.params.Webhook = ptr(webhook)
	return b
}

// WebhookID targets one specific webhook. Requires Webhook(true).
func (b SpeechToTextBuilder) WebhookID(id string) SpeechToTextBuilder {
	b.params.WebhookID = ptr(id)
	return b
}

// WebhookMetadata attaches a JSON string echoed back in the webhook
// payload. Requires Webhook(true).
func (b SpeechToTextBuilder) WebhookMetadata(metadata string) SpeechToTextBuilder {
	b.params.WebhookMetadata = ptr(metadata)
	return b
}

// Temperature controls output randomness (0.0-2.0).
func (b SpeechToTextBuilder) Temperature(temperature float64) SpeechToTextBuilder {
	b.params.Temperature = ptr(temperature)
	return b
}

// Seed requests best-effort deterministic sampling (0-2147483647).
func (b SpeechToTextBuilder) Seed(seed int64) SpeechToTextBuilder {
	b.params.Seed = ptr(seed)
	return b
}

// UseMultiChannel transcribes each audio channel independently; words
// then carry a ChannelIndex.
func (b SpeechToTextBuilder) UseMultiChannel(multiChannel bool) SpeechToTextBuilder {
	b.params.UseMultiChannel = ptr(multiChannel)
	return b
}

// Execute validates the configured options, sends the request, and
// returns the transcription. Validation failures surface before any
// network call; cancelling ctx aborts the in-flight request.
func (b SpeechToTextBuilder) Execute(ctx context.Context) (*Transcription, error) {
	return b.client.executeSpeechToText(ctx, b.params, b.audio)
}

func ptr[T any](v T) *T {
	return &v
}
