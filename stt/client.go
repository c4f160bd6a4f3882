package stt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/elevenlabs-stt/httpclient"
)

// Client is the handle for the speech-to-text API. It holds the API key
// and endpoint configuration, is immutable after construction, and is
// safe for concurrent use.
type Client struct {
	http   *httpclient.Client
	logger zerolog.Logger
}

// Option customizes client construction.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	logger     zerolog.Logger
	httpClient *httpclient.Client
}

// WithBaseURL overrides the API endpoint (testing/enterprise).
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

// WithTimeout overrides the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.timeout = timeout }
}

// WithLogger sets the logger for request lifecycle events. The client
// logs nothing by default and never logs the API key.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) { o.logger = logger }
}

// WithHTTPClient injects a pre-configured transport, replacing the one
// the client would build. BaseURL/Timeout options are ignored when set.
func WithHTTPClient(hc *httpclient.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// NewClient creates a speech-to-text client. It fails only when apiKey is
// empty or whitespace.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, newArgumentError("api key must not be empty")
	}

	o := clientOptions{
		baseURL: DefaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		var err error
		hc, err = httpclient.New(httpclient.Config{
			BaseURL: o.baseURL,
			Timeout: o.timeout,
			Auth:    httpclient.APIKeyAuthHeader(apiKey, apiKeyHeader),
			Logger:  o.logger,
		})
		if err != nil {
			return nil, newArgumentError(err.Error())
		}
	}

	return &Client{http: hc, logger: o.logger}, nil
}

// SpeechToText starts building a transcription request. Pass the audio
// bytes to upload, or nil to reference a file via CloudStorageURL.
func (c *Client) SpeechToText(audio []byte) SpeechToTextBuilder {
	return SpeechToTextBuilder{client: c, audio: audio}
}

// executeSpeechToText runs the validate, serialize, send, decode pipeline.
func (c *Client) executeSpeechToText(ctx context.Context, params speechToTextParams, audio []byte) (*Transcription, error) {
	audioSize := int64(-1)
	if audio != nil {
		audioSize = int64(len(audio))
	}
	if err := validateSpeechToText(params, audioSize); err != nil {
		return nil, err
	}

	if params.ModelID == nil {
		model := DefaultModel
		params.ModelID = &model
	}

	req := httpclient.Request{
		Method: http.MethodPost,
		Path:   speechToTextPath,
	}
	if audio != nil {
		req.Body = &httpclient.MultipartBody{
			Fields: params.formFields(),
			Files: []httpclient.FileField{{
				FieldName: "file",
				FileName:  "file",
				Data:      audio,
			}},
		}
	} else {
		req.Body = params
	}

	logger := c.logger.With().Str("request_id", uuid.NewString()).Logger()
	logger.Debug().
		Str("model", *params.ModelID).
		Bool("upload", audio != nil).
		Int64("audio_bytes", audioSize).
		Msg("speech-to-text request")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, mapTransportError(err)
	}

	var result Transcription
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		logger.Debug().Err(err).Msg("speech-to-text decode failed")
		return nil, newDecodeError(err)
	}

	logger.Debug().
		Int("words", len(result.Words)).
		Str("language", result.LanguageCode).
		Msg("speech-to-text response")

	return &result, nil
}

// mapTransportError converts transport-layer errors into the package's
// taxonomy: responses with a status become API errors, everything else
// (connect, timeout, cancellation) is a transport error.
func mapTransportError(err error) *Error {
	var he *httpclient.Error
	if errors.As(err, &he) && he.StatusCode > 0 {
		return newAPIError(he.StatusCode, string(he.Body), he)
	}
	return newTransportError(err)
}
