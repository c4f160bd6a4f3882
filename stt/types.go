package stt

import (
	"strconv"
	"strings"
)

// speechToTextParams holds the optional request parameters. Field names
// match the API's form/JSON parameter names; nil fields are never sent.
type speechToTextParams struct {
	ModelID               *string  `json:"model_id,omitempty" validate:"omitnil,oneof=scribe_v1 scribe_v1_experimental"`
	LanguageCode          *string  `json:"language_code,omitempty"`
	TagAudioEvents        *bool    `json:"tag_audio_events,omitempty"`
	NumSpeakers           *int     `json:"num_speakers,omitempty" validate:"omitnil,gte=1,lte=32"`
	TimestampsGranularity *string  `json:"timestamps_granularity,omitempty" validate:"omitnil,oneof=none word character"`
	Diarize               *bool    `json:"diarize,omitempty"`
	DiarizationThreshold  *float64 `json:"diarization_threshold,omitempty" validate:"omitnil,gte=0,lte=1"`
	CloudStorageURL       *string  `json:"cloud_storage_url,omitempty" validate:"omitnil,url"`
	Webhook               *bool    `json:"webhook,omitempty"`
	WebhookID             *string  `json:"webhook_id,omitempty"`
	WebhookMetadata       *string  `json:"webhook_metadata,omitempty"`
	Temperature           *float64 `json:"temperature,omitempty" validate:"omitnil,gte=0,lte=2"`
	Seed                  *int64   `json:"seed,omitempty" validate:"omitnil,gte=0,lte=2147483647"`
	UseMultiChannel       *bool    `json:"use_multi_channel,omitempty"`
}

// formFields renders the set parameters as multipart form fields.
func (p speechToTextParams) formFields() map[string]string {
	fields := make(map[string]string)
	if p.ModelID != nil {
		fields["model_id"] = *p.ModelID
	}
	if p.LanguageCode != nil {
		fields["language_code"] = *p.LanguageCode
	}
	if p.TagAudioEvents != nil {
		fields["tag_audio_events"] = strconv.FormatBool(*p.TagAudioEvents)
	}
	if p.NumSpeakers != nil {
		fields["num_speakers"] = strconv.Itoa(*p.NumSpeakers)
	}
	if p.TimestampsGranularity != nil {
		fields["timestamps_granularity"] = *p.TimestampsGranularity
	}
	if p.Diarize != nil {
		fields["diarize"] = strconv.FormatBool(*p.Diarize)
	}
	if p.DiarizationThreshold != nil {
		fields["diarization_threshold"] = strconv.FormatFloat(*p.DiarizationThreshold, 'g', -1, 64)
	}
	if p.CloudStorageURL != nil {
		fields["cloud_storage_url"] = *p.CloudStorageURL
	}
	if p.Webhook != nil {
		fields["webhook"] = strconv.FormatBool(*p.Webhook)
	}
	if p.WebhookID != nil {
		fields["webhook_id"] = *p.WebhookID
	}
	if p.WebhookMetadata != nil {
		fields["webhook_metadata"] = *p.WebhookMetadata
	}
	if p.Temperature != nil {
		fields["temperature"] = strconv.FormatFloat(*p.Temperature, 'g', -1, 64)
	}
	if p.Seed != nil {
		fields["seed"] = strconv.FormatInt(*p.Seed, 10)
	}
	if p.UseMultiChannel != nil {
		fields["use_multi_channel"] = strconv.FormatBool(*p.UseMultiChannel)
	}
	return fields
}

// Transcription is the result of a speech-to-text request. Unknown
// response fields are ignored during decoding.
type Transcription struct {
	// Text is the full transcript.
	Text string `json:"text"`
	// LanguageCode is the detected or enforced language.
	LanguageCode string `json:"language_code,omitempty"`
	// LanguageProbability is the confidence of the language detection.
	LanguageProbability float64 `json:"language_probability,omitempty"`
	// RequestID identifies the job when webhook delivery was requested
	// and the API returned early without a transcript.
	RequestID string `json:"request_id,omitempty"`
	// Words are the time-aligned transcript entries. Present when
	// timestamps_granularity is word or character.
	Words []Word `json:"words,omitempty"`
}

// Word is a time-aligned transcript entry.
type Word struct {
	Text string `json:"text"`
	// Type is one of word, spacing, or audio_event.
	Type  string  `json:"type,omitempty"`
	Start float64 `json:"start,omitempty"`
	End   float64 `json:"end,omitempty"`
	// Logprob is the log-probability of the prediction.
	Logprob float64 `json:"logprob,omitempty"`
	// SpeakerID labels the speaker when diarization was requested.
	SpeakerID string `json:"speaker_id,omitempty"`
	// ChannelIndex is the source channel for multi-channel audio.
	ChannelIndex int `json:"channel_index,omitempty"`
	// Characters carry character-level timestamps when requested.
	Characters []Character `json:"characters,omitempty"`
}

// Character is a character-level timestamp within a word.
type Character struct {
	Text  string  `json:"text"`
	Start float64 `json:"start,omitempty"`
	End   float64 `json:"end,omitempty"`
}

// Segment is a contiguous run of words attributed to one speaker.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// SpeakerSegments groups consecutive same-speaker words into time-aligned
// segments. Returns nil when the response carries no word entries.
// Spacing entries stay attached to the current segment.
func (t *Transcription) SpeakerSegments() []Segment {
	if len(t.Words) == 0 {
		return nil
	}

	var segments []Segment
	var cur *Segment
	var text strings.Builder

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(text.String())
		segments = append(segments, *cur)
		cur = nil
		text.Reset()
	}

	for _, w := range t.Words {
		if cur != nil && w.Type != WordTypeSpacing && w.SpeakerID != cur.Speaker {
			if cur.Speaker == "" {
				// Leading spacing carries no speaker; adopt the first real one.
				cur.Speaker = w.SpeakerID
			} else {
				flush()
			}
		}
		if cur == nil {
			cur = &Segment{Start: w.Start, Speaker: w.SpeakerID}
		}
		text.WriteString(w.Text)
		if w.End > cur.End {
			cur.End = w.End
		}
	}
	flush()

	return segments
}
