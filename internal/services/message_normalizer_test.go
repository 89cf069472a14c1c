package services

import "testing"

func TestNormalizeInboundShapes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{
			name:    "flat object",
			payload: `{"from": "+15551234567", "text": "Book N12345 Saturday 2-4pm"}`,
		},
		{
			name:    "nested envelope",
			payload: `{"message": {"from": "+15551234567", "text": "Book N12345 Saturday 2-4pm"}}`,
		},
		{
			name:    "event array",
			payload: `[{"message": {"from": "+15551234567", "text": "Book N12345 Saturday 2-4pm"}}]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := NormalizeInbound([]byte(tc.payload))
			if msg.SenderAddress != "+15551234567" {
				t.Errorf("sender = %q, want +15551234567", msg.SenderAddress)
			}
			if msg.MessageText != "Book N12345 Saturday 2-4pm" {
				t.Errorf("text = %q, want booking message", msg.MessageText)
			}
		})
	}
}

func TestNormalizeInboundMessageTextFallback(t *testing.T) {
	msg := NormalizeInbound([]byte(`{"from": "+15550001111", "messageText": "Need the 172 tomorrow"}`))
	if msg.MessageText != "Need the 172 tomorrow" {
		t.Errorf("text = %q, want messageText fallback", msg.MessageText)
	}
}

func TestNormalizeInboundNestedOverridesFlat(t *testing.T) {
	payload := `{"from": "outer", "text": "outer text", "message": {"from": "inner", "text": "inner text"}}`
	msg := NormalizeInbound([]byte(payload))
	if msg.SenderAddress != "inner" || msg.MessageText != "inner text" {
		t.Errorf("got %+v, want nested envelope to win", msg)
	}
}

func TestNormalizeInboundGarbage(t *testing.T) {
	for _, payload := range []string{"", "not json at all", "[]", `[{"other": true}]`, `{"unrelated": 1}`} {
		msg := NormalizeInbound([]byte(payload))
		if msg.SenderAddress != "" || msg.MessageText != "" {
			t.Errorf("payload %q: got %+v, want empty message", payload, msg)
		}
	}
}
