package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

func TestSendEmptyTextIsNoOp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	for _, text := range []string{"", "   ", "\n\t"} {
		require.NoError(t, session.Send(context.Background(), text))
	}

	assert.Zero(t, calls.Load())
	assert.Empty(t, session.Transcript())
	assert.Equal(t, ChatIdle, session.State())
}

func TestSendSuccessAppendsUserThenAssistant(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat/bot-1", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"answer":"hello back"}`))
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	require.NoError(t, session.Send(context.Background(), "hi"))

	transcript := session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, domain.Message{Role: domain.MessageRoleUser, Content: "hi"}, transcript[0])
	assert.Equal(t, domain.Message{Role: domain.MessageRoleAssistant, Content: "hello back"}, transcript[1])
	assert.Equal(t, ChatIdle, session.State())
	assert.Empty(t, session.Err())
}

func TestSendRateLimitKeepsUserMessageAndSetsFixedError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"upstream quota exhausted"}`))
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	err := session.Send(context.Background(), "hi")
	require.Error(t, err)

	transcript := session.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, domain.Message{Role: domain.MessageRoleUser, Content: "hi"}, transcript[0])

	assert.Equal(t, domain.RateLimitMessage, session.Err())
	assert.NotContains(t, session.Err(), "upstream quota exhausted")
	// Ready for the next attempt.
	assert.Equal(t, ChatIdle, session.State())
}

func TestSendFailureUsesClassifiedDisplayMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"bot is still processing"}`))
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	require.Error(t, session.Send(context.Background(), "hi"))
	assert.Equal(t, "bot is still processing", session.Err())
	assert.Len(t, session.Transcript(), 1)
}

func TestSecondSendWhileInFlightIsNoOp(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"answer":"done"}`))
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- session.Send(context.Background(), "first")
	}()

	require.Eventually(t, func() bool {
		return session.State() == ChatSending
	}, time.Second, 5*time.Millisecond)

	err := session.Send(context.Background(), "second")
	require.ErrorIs(t, err, domain.ErrSendInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	// Only the first exchange ever went out or landed in the transcript.
	assert.Equal(t, int32(1), calls.Load())
	transcript := session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, "first", transcript[0].Content)
	assert.Equal(t, "done", transcript[1].Content)
}

func TestNewSendClearsPreviousError(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	fail.Store(true)
	require.Error(t, session.Send(context.Background(), "hi"))
	require.Equal(t, domain.RateLimitMessage, session.Err())

	fail.Store(false)
	require.NoError(t, session.Send(context.Background(), "again"))
	assert.Empty(t, session.Err())
}

func TestClosedSessionDropsLateResponse(t *testing.T) {
	t.Parallel()

	inFlight := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(inFlight)
		<-release
		_, _ = w.Write([]byte(`{"answer":"too late"}`))
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	done := make(chan error, 1)
	go func() {
		done <- session.Send(context.Background(), "hi")
	}()

	<-inFlight
	session.Close()
	close(release)

	err := <-done
	require.ErrorIs(t, err, domain.ErrSessionClosed)

	// The late assistant reply never landed.
	transcript := session.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, domain.MessageRoleUser, transcript[0].Role)
}

func TestPreloadSeedsTranscriptOnceOnly(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer server.Close()

	session := NewChatSession(newTestClient(t, server, &memStore{}), "bot-1", quietLogger())

	seed := []domain.Message{
		{Role: domain.MessageRoleUser, Content: "old question"},
		{Role: domain.MessageRoleAssistant, Content: "old answer"},
	}
	require.NoError(t, session.Preload(seed))
	require.Error(t, session.Preload(seed))

	require.NoError(t, session.Send(context.Background(), "new question"))
	transcript := session.Transcript()
	require.Len(t, transcript, 4)
	assert.Equal(t, "old question", transcript[0].Content)
	assert.Equal(t, "new question", transcript[2].Content)
}
