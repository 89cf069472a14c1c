package services

import (
	"bytes"
	"encoding/json"

	"aero-club/tower/internal/models/dtos"
)

// Messaging providers deliver the same event in three shapes: a bare
// {from, text} object, a nested {message: {from, text}} envelope, or an
// array whose first element carries the envelope. NormalizeInbound reduces
// all of them to one canonical pair. It never fails; missing fields come
// back as empty strings and the caller treats empty text as a no-op.

type inboundMessageBody struct {
	From string `json:"from"`
	Text string `json:"text"`
}

type inboundEnvelope struct {
	Message *inboundMessageBody `json:"message"`
}

type inboundObject struct {
	Message     *inboundMessageBody `json:"message"`
	From        string              `json:"from"`
	Text        string              `json:"text"`
	MessageText string              `json:"messageText"`
}

// NormalizeInbound extracts {senderAddress, messageText} from a raw webhook body.
func NormalizeInbound(raw []byte) dtos.InboundMessage {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var events []inboundEnvelope
		if err := json.Unmarshal(trimmed, &events); err != nil || len(events) == 0 {
			return dtos.InboundMessage{}
		}
		first := events[0]
		if first.Message == nil {
			return dtos.InboundMessage{}
		}
		return dtos.InboundMessage{
			SenderAddress: first.Message.From,
			MessageText:   first.Message.Text,
		}
	}

	var obj inboundObject
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return dtos.InboundMessage{}
	}

	msg := dtos.InboundMessage{
		SenderAddress: obj.From,
		MessageText:   obj.Text,
	}
	if obj.Message != nil {
		if obj.Message.From != "" {
			msg.SenderAddress = obj.Message.From
		}
		if obj.Message.Text != "" {
			msg.MessageText = obj.Message.Text
		}
	}
	if msg.MessageText == "" {
		msg.MessageText = obj.MessageText
	}
	return msg
}
