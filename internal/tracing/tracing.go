// Package tracing is a thin façade over the schuko tracing framework.
//
// All packages of this module trace to the core tracer. Clients configure
// tracing globally through schuko; tests redirect it to the testing.T log
// with SetTestingLog.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Tracer returns the core tracer all module packages trace to.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Debugf traces a debug message to the core tracer.
func Debugf(format string, args ...interface{}) {
	gtrace.CoreTracer.Debugf(format, args...)
}

// Infof traces an info message to the core tracer.
func Infof(format string, args ...interface{}) {
	gtrace.CoreTracer.Infof(format, args...)
}

// Errorf traces an error message to the core tracer.
func Errorf(format string, args ...interface{}) {
	gtrace.CoreTracer.Errorf(format, args...)
}

// P attaches a key/value parameter to the next trace message.
func P(key string, val interface{}) tracing.Trace {
	return gtrace.CoreTracer.P(key, val)
}

// SetTestingLog redirects the core tracer to the log of t for the duration
// of a test case.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}
