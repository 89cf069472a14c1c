package constants

// Extraction Pipeline Error Codes
// These constants identify the stage at which an inbound SMS failed to become
// a reservation. All of them except AIRPLANE_NOT_FOUND are absorbed locally:
// the webhook still acknowledges the provider with 200.

const (
	ErrCodeMalformedPayload      = "MALFORMED_PAYLOAD"
	ErrCodeExtractionUnavailable = "EXTRACTION_UNAVAILABLE"
	ErrCodeNoStructuredResult    = "NO_STRUCTURED_RESULT"
	ErrCodeUnusableWindow        = "UNUSABLE_WINDOW"
	ErrCodeAirplaneNotFound      = "AIRPLANE_NOT_FOUND"
	ErrCodePersistenceFailure    = "PERSISTENCE_FAILURE"
)

var ExtractionErrorMessages = map[string]string{
	ErrCodeMalformedPayload:      "The inbound payload carried no usable message text",
	ErrCodeExtractionUnavailable: "The completion model could not be reached",
	ErrCodeNoStructuredResult:    "The model response contained no parseable JSON object",
	ErrCodeUnusableWindow:        "The extracted time window is invalid",
	ErrCodeAirplaneNotFound:      "No airplane matches the extracted tail number",
	ErrCodePersistenceFailure:    "The reservation could not be written to the store",
}

// GetExtractionErrorMessage returns the human-readable message for an error code
func GetExtractionErrorMessage(code string) string {
	if msg, exists := ExtractionErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
