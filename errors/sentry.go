package errors

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/cloudposse/ekscli/pkg/schema"
)

// CloseSentryTimeout is the timeout for flushing Sentry events before shutdown.
const CloseSentryTimeout = 2 * time.Second

// InitializeSentry initializes the Sentry SDK with the provided configuration.
func InitializeSentry(config *schema.SentryConfig) error {
	if config == nil || !config.Enabled {
		return nil
	}

	sampleRate := config.SampleRate
	if sampleRate == 0 {
		sampleRate = 1.0
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.DSN,
		Environment:      config.Environment,
		Release:          config.Release,
		Debug:            config.Debug,
		SampleRate:       sampleRate,
		AttachStacktrace: config.CaptureStackContext,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		for key, value := range config.Tags {
			scope.SetTag(key, value)
		}
	})

	return nil
}

// CloseSentry flushes any pending Sentry events.
func CloseSentry() {
	sentry.Flush(CloseSentryTimeout)
}

// CaptureError sends err to Sentry. It is safe to call when Sentry is not initialized.
// Configuration errors are not reported: they describe the caller's input, not a fault.
func CaptureError(err error) {
	if err == nil || IsConfigError(err) {
		return
	}

	event, extraDetails := errors.BuildSentryReport(err)

	hub := sentry.CurrentHub()
	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range extraDetails {
			if contextMap, ok := value.(map[string]any); ok {
				scope.SetContext(key, contextMap)
			}
		}

		for _, hint := range errors.GetAllHints(err) {
			scope.AddBreadcrumb(&sentry.Breadcrumb{
				Type:     "info",
				Category: "hint",
				Message:  hint,
				Level:    sentry.LevelInfo,
			}, 100)
		}

		if event.Tags == nil {
			event.Tags = map[string]string{}
		}
		event.Tags["ekscli.exit_code"] = fmt.Sprintf("%d", GetExitCode(err))

		hub.CaptureEvent(event)
	})
}
