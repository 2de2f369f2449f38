package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoer struct {
	req    *http.Request
	body   []byte
	status int
	reply  string
	err    error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.req = req
	if req.Body != nil {
		f.body, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(f.reply))),
	}, nil
}

func chatReplyJSON(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestChat(t *testing.T) {
	t.Run("successful call", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusOK, reply: chatReplyJSON("hello there")}
		client := &Client{BaseURL: "https://example.test/v1", APIKey: "sk-test", HTTP: doer}

		got, err := client.Chat(context.Background(), ChatRequest{
			Model: "gpt-4",
			Messages: []Message{
				{Role: RoleSystem, Content: "be brief"},
				{Role: RoleUser, Content: "say hi"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "hello there", got)
		assert.Equal(t, "https://example.test/v1/chat/completions", doer.req.URL.String())
		assert.Equal(t, "Bearer sk-test", doer.req.Header.Get("Authorization"))
		assert.Equal(t, "application/json", doer.req.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(doer.body, &payload))
		assert.Equal(t, "gpt-4", payload["model"])
		assert.NotContains(t, payload, "temperature", "omitted when unset")
	})

	t.Run("missing api key", func(t *testing.T) {
		client := &Client{HTTP: &fakeDoer{status: http.StatusOK}}

		_, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4"})

		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusUnauthorized, reply: `{"error":{"message":"bad key"}}`}
		client := &Client{APIKey: "sk-test", HTTP: doer}

		_, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "chat http 401")
		assert.Contains(t, err.Error(), "bad key")
	})

	t.Run("empty choices", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusOK, reply: `{"choices":[]}`}
		client := &Client{APIKey: "sk-test", HTTP: doer}

		_, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4"})

		assert.ErrorIs(t, err, ErrEmptyReply)
	})

	t.Run("trailing slash in base url", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusOK, reply: chatReplyJSON("ok")}
		client := &Client{BaseURL: "https://example.test/v1/", APIKey: "sk-test", HTTP: doer}

		_, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4"})

		require.NoError(t, err)
		assert.Equal(t, "https://example.test/v1/chat/completions", doer.req.URL.String())
	})
}
