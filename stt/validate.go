package stt

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages, so
		// failures read like the wire parameters they refer to.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// validateSpeechToText checks the full option set before any I/O.
// audioSize is the upload size in bytes; negative means no audio was set.
func validateSpeechToText(params speechToTextParams, audioSize int64) *Error {
	var problems []string

	hasAudio := audioSize >= 0
	hasURL := params.CloudStorageURL != nil
	switch {
	case !hasAudio && !hasURL:
		problems = append(problems, "exactly one of audio or cloud_storage_url must be provided")
	case hasAudio && hasURL:
		problems = append(problems, "audio and cloud_storage_url are mutually exclusive")
	}

	if audioSize > maxAudioSize {
		problems = append(problems, "audio exceeds the 3.0 GB size limit")
	}

	if params.DiarizationThreshold != nil {
		if params.Diarize == nil || !*params.Diarize {
			problems = append(problems, "diarization_threshold requires diarize=true")
		}
		if params.NumSpeakers != nil {
			problems = append(problems, "diarization_threshold cannot be combined with num_speakers")
		}
	}

	webhook := params.Webhook != nil && *params.Webhook
	if params.WebhookID != nil && !webhook {
		problems = append(problems, "webhook_id requires webhook=true")
	}
	if params.WebhookMetadata != nil && !webhook {
		problems = append(problems, "webhook_metadata requires webhook=true")
	}

	if err := getValidator().Struct(params); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				problems = append(problems, fe.Field()+" "+formatFieldError(fe))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return newValidationError(strings.Join(problems, "; "))
}

// formatFieldError creates a human-readable message for a tag failure.
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
