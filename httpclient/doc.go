// Package httpclient provides the outbound HTTP transport used by the
// speech-to-text SDK.
//
// The Client executes one request per call: it resolves the URL against a
// base, encodes the body (JSON, raw bytes, or multipart/form-data), applies
// authentication, sends it, and classifies non-2xx status codes into typed
// errors. There is no retry, circuit breaking, or connection management
// beyond what net/http provides.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.elevenlabs.io/v1",
//	    Auth:    httpclient.APIKeyAuthHeader("my-key", "xi-api-key"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/speech-to-text",
//	    Body:   &httpclient.MultipartBody{Files: []httpclient.FileField{...}},
//	})
package httpclient
