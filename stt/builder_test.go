package stt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func okHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"hello world","language_code":"en"}`))
	}
}

func TestBuilder_SettersReturnIndependentCopies(t *testing.T) {
	client, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := client.SpeechToText(nil).Model(ModelScribeV1)
	withLang := base.LanguageCode("en")
	withOther := base.LanguageCode("de").Diarize(true)

	if base.params.LanguageCode != nil {
		t.Error("setter on a copy mutated the original builder")
	}
	if *withLang.params.LanguageCode != "en" {
		t.Errorf("fork 1 language = %v, want en", *withLang.params.LanguageCode)
	}
	if *withOther.params.LanguageCode != "de" || !*withOther.params.Diarize {
		t.Error("fork 2 lost its own values")
	}
}

func TestBuilder_RepeatedSetterLastWriteWins(t *testing.T) {
	client, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := client.SpeechToText(nil).Webhook(true).Webhook(false)
	if *b.params.Webhook != false {
		t.Error("expected last write to win")
	}

	b = client.SpeechToText(nil).Model(ModelScribeV1Experimental).Model(ModelScribeV1)
	if *b.params.ModelID != ModelScribeV1 {
		t.Errorf("model = %v, want %v", *b.params.ModelID, ModelScribeV1)
	}
}

func TestBuilder_Execute_MultipartContainsExactlySetFields(t *testing.T) {
	audio := []byte("fake mp3 bytes")

	var form map[string][]string
	var fileData []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		form = r.MultipartForm.Value

		files := r.MultipartForm.File["file"]
		if len(files) != 1 {
			t.Fatalf("expected 1 file part, got %d", len(files))
		}
		f, err := files[0].Open()
		if err != nil {
			t.Fatalf("open file part: %v", err)
		}
		defer f.Close()
		fileData, _ = io.ReadAll(f)

		w.Write([]byte(`{"text":"ok"}`))
	})

	_, err := client.SpeechToText(audio).
		Model(ModelScribeV1).
		LanguageCode("en").
		TagAudioEvents(true).
		Diarize(true).
		DiarizationThreshold(0.22).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"model_id":              "scribe_v1",
		"language_code":         "en",
		"tag_audio_events":      "true",
		"diarize":               "true",
		"diarization_threshold": "0.22",
	}
	if len(form) != len(want) {
		t.Errorf("form has %d fields, want exactly %d: %v", len(form), len(want), form)
	}
	for k, v := range want {
		if got := form[k]; len(got) != 1 || got[0] != v {
			t.Errorf("field %s = %v, want %q", k, got, v)
		}
	}
	if string(fileData) != string(audio) {
		t.Errorf("file part = %q, want audio bytes", fileData)
	}
}

func TestBuilder_Execute_DefaultsModelWhenUnset(t *testing.T) {
	var gotModel string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(32 << 20)
		gotModel = r.FormValue("model_id")
		w.Write([]byte(`{"text":"ok"}`))
	})

	_, err := client.SpeechToText([]byte("audio")).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotModel != DefaultModel {
		t.Errorf("model_id = %q, want %q", gotModel, DefaultModel)
	}
}

func TestBuilder_Execute_CloudStorageURLSendsJSON(t *testing.T) {
	var contentType string
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"text":"ok"}`))
	})

	_, err := client.SpeechToText(nil).
		CloudStorageURL("https://bucket.example.com/speech.mp3").
		TagAudioEvents(false).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("content type = %q, want application/json", contentType)
	}
	want := map[string]any{
		"model_id":          "scribe_v1",
		"cloud_storage_url": "https://bucket.example.com/speech.mp3",
		"tag_audio_events":  false,
	}
	if len(body) != len(want) {
		t.Errorf("body has %d keys, want exactly %d: %v", len(body), len(want), body)
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%s] = %v, want %v", k, body[k], v)
		}
	}
}

func TestBuilder_Execute_ValidationFailsBeforeNetwork(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"text":"ok"}`))
	})

	_, err := client.SpeechToText(nil).Execute(context.Background())
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = client.SpeechToText([]byte("audio")).
		CloudStorageURL("https://bucket.example.com/a.mp3").
		Execute(context.Background())
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if called {
		t.Error("validation errors must not reach the network")
	}
}

func TestBuilder_Execute_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail":"rate limited"}`))
	})

	_, err := client.SpeechToText([]byte("audio")).Execute(context.Background())
	status, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected API error, got %v", err)
	}
	if status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", status)
	}
}

func TestBuilder_Execute_DecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := client.SpeechToText([]byte("audio")).Execute(context.Background())
	if !IsDecodeError(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestBuilder_Execute_Canceled(t *testing.T) {
	client := newTestClient(t, okHandler(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SpeechToText([]byte("audio")).Execute(ctx)
	if !IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestBuilder_Execute_WebhookEarlyReturn(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"request_id":"req_123"}`))
	})

	result, err := client.SpeechToText([]byte("audio")).
		Webhook(true).
		WebhookID("wh-1").
		Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RequestID != "req_123" {
		t.Errorf("request id = %q, want req_123", result.RequestID)
	}
	if result.Text != "" {
		t.Errorf("expected empty transcript, got %q", result.Text)
	}
}
