package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_RecordBackendRequest__should_count_by_operation_and_outcome(t *testing.T) {
	before := testutil.ToFloat64(backendRequests.WithLabelValues("signup", OutcomeRejected))

	RecordBackendRequest("signup", OutcomeRejected, 20*time.Millisecond)

	after := testutil.ToFloat64(backendRequests.WithLabelValues("signup", OutcomeRejected))
	assert.Equal(t, before+1, after)
}

func Test_RecordDispatchedEvent__should_count_by_source_and_kind(t *testing.T) {
	before := testutil.ToFloat64(dispatchedEvents.WithLabelValues("signup-form", "submit"))

	RecordDispatchedEvent("signup-form", "submit")

	assert.Equal(t, before+1, testutil.ToFloat64(dispatchedEvents.WithLabelValues("signup-form", "submit")))
}

func Test_SetLiveSessions__should_set_gauge(t *testing.T) {
	SetLiveSessions(3)

	assert.Equal(t, float64(3), testutil.ToFloat64(liveSessions))
}
