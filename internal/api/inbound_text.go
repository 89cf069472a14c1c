package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	"aero-club/tower/internal/constants"
	"aero-club/tower/internal/logging"
	"aero-club/tower/internal/middleware"
	"aero-club/tower/internal/services"
)

const dedupTTL = 10 * time.Minute

// InboundText handles POST /api/v1/inbound-text, the SMS provider webhook.
//
// The ack contract matters more than the outcome: the provider retries any
// non-2xx indefinitely, so every internal failure is logged and answered
// with 200 "Received". The one exception is an unknown tail number, which
// means the message was readable but wrong, and gets a 400.
func (h *Handlers) InboundText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logging.Warn("Failed to read inbound webhook body", "error", err.Error())
			respondReceived(w)
			return
		}

		msg := services.NormalizeInbound(body)
		log := logging.WithInbound(middleware.RequestID(r.Context()), msg.SenderAddress)

		if msg.MessageText == "" {
			log.Infow("Inbound payload carried no message text",
				"code", constants.ErrCodeMalformedPayload,
			)
			respondReceived(w)
			return
		}

		log.Infow("Inbound SMS received", "message", msg.MessageText)

		if h.isDuplicate(r, msg.SenderAddress, msg.MessageText) {
			log.Infow("Duplicate inbound delivery suppressed")
			respondReceived(w)
			return
		}

		_, err = h.deps.Services.InboundSMS.ProcessMessage(r.Context(), msg)
		if err != nil {
			if errors.Is(err, services.ErrAirplaneNotFound) {
				log.Warnw("Inbound SMS referenced unknown tail number", "error", err.Error())
				http.Error(w, "Unknown tail number", http.StatusBadRequest)
				return
			}
			log.Errorw("Inbound SMS pipeline failed",
				"code", services.ErrorCode(err),
				"error", err.Error(),
				"message", msg.MessageText,
			)
			respondReceived(w)
			return
		}

		respondReceived(w)
	}
}

// isDuplicate marks the (sender, text) pair in Redis and reports whether it
// was already seen within the TTL. Providers redeliver on slow acks; the
// pipeline itself never retries, so this is the only dedup there is.
// Best-effort: with Redis down every delivery is treated as fresh.
func (h *Handlers) isDuplicate(r *http.Request, sender, text string) bool {
	if h.deps.Redis == nil {
		return false
	}

	sum := sha256.Sum256([]byte(sender + "|" + text))
	key := string(constants.CachePrefixInboundDedup) + hex.EncodeToString(sum[:])

	ok, err := h.deps.Redis.SetNX(r.Context(), key, "1", dedupTTL).Result()
	if err != nil {
		logging.Warn("Inbound dedup check failed", "error", err.Error())
		return false
	}
	return !ok
}

func respondReceived(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Received"))
}
