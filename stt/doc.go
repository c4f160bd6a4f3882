// Package stt is a Go client for the ElevenLabs speech-to-text API.
//
// A Client holds the API key and endpoint. Requests are assembled with a
// fluent builder whose setters return updated copies, so builders can be
// shared and executed concurrently without synchronization. Execute
// validates the configured options locally, sends one HTTP POST, and maps
// the response to a Transcription or a typed *Error.
//
// # Quick Start
//
//	client, err := stt.NewClient(os.Getenv("ELEVENLABS_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	audio, err := os.ReadFile("speech.mp3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.SpeechToText(audio).
//	    Model(stt.ModelScribeV1).
//	    LanguageCode("en").
//	    Diarize(true).
//	    Execute(ctx)
//
// Audio can also be referenced remotely instead of uploaded:
//
//	result, err := client.SpeechToText(nil).
//	    CloudStorageURL("https://bucket.example.com/speech.mp3").
//	    Execute(ctx)
package stt
