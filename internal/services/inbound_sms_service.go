package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"aero-club/tower/internal/common"
	"aero-club/tower/internal/constants"
	"aero-club/tower/internal/db/repositories"
	"aero-club/tower/internal/logging"
	"aero-club/tower/internal/metrics"
	"aero-club/tower/internal/models/dtos"
	gormModels "aero-club/tower/internal/models/gorm"
	"aero-club/tower/internal/providers"

	"encoding/json"
)

// Stage errors of the extraction pipeline. Only ErrAirplaneNotFound is ever
// surfaced to the webhook caller; everything else is logged and absorbed so
// the messaging provider still gets its 200.
var (
	ErrExtractionUnavailable = errors.New("completion model call failed")
	ErrNoStructuredResult    = errors.New("no parseable JSON object in model response")
	ErrUnusableWindow        = errors.New("extracted time window is unusable")
	ErrAirplaneNotFound      = errors.New("no airplane matches the extracted tail number")
	ErrPersistenceFailure    = errors.New("failed to persist reservation")
)

// ErrorCode maps a pipeline error to its stage code for logs and metrics.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrExtractionUnavailable):
		return constants.ErrCodeExtractionUnavailable
	case errors.Is(err, ErrNoStructuredResult):
		return constants.ErrCodeNoStructuredResult
	case errors.Is(err, ErrUnusableWindow):
		return constants.ErrCodeUnusableWindow
	case errors.Is(err, ErrAirplaneNotFound):
		return constants.ErrCodeAirplaneNotFound
	case errors.Is(err, ErrPersistenceFailure):
		return constants.ErrCodePersistenceFailure
	}
	return "UNKNOWN"
}

// InboundSMSService turns a free-text booking message into one reservation
// row. Each request runs the five stages strictly in sequence with no
// retries: prompt build, model call, JSON isolation, field normalization,
// lookup + upsert.
type InboundSMSService struct {
	completions  providers.CompletionProvider
	airplanes    *repositories.AirplaneRepositoryGORM
	reservations *repositories.ReservationRepositoryGORM
	clock        common.Clock
	loc          *time.Location
	metrics      *metrics.MetricsRegistry
}

func NewInboundSMSService(
	completions providers.CompletionProvider,
	airplanes *repositories.AirplaneRepositoryGORM,
	reservations *repositories.ReservationRepositoryGORM,
	clock common.Clock,
	loc *time.Location,
	metricsReg *metrics.MetricsRegistry,
) *InboundSMSService {
	return &InboundSMSService{
		completions:  completions,
		airplanes:    airplanes,
		reservations: reservations,
		clock:        clock,
		loc:          loc,
		metrics:      metricsReg,
	}
}

// ClubLocation resolves the wall-clock zone extracted times are read in.
func ClubLocation() *time.Location {
	name := os.Getenv("TOWER_TIMEZONE")
	if name == "" {
		name = constants.DefaultClubTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logging.Warn("Unknown timezone, falling back to UTC", "timezone", name)
		return time.UTC
	}
	return loc
}

// ProcessMessage runs the full pipeline for one normalized message and
// returns the id of the reservation that was written.
func (s *InboundSMSService) ProcessMessage(ctx context.Context, msg dtos.InboundMessage) (int64, error) {
	if s.metrics != nil {
		s.metrics.InboundMessagesTotal.Inc()
	}

	anchor := s.clock.Now().In(s.loc)
	prompt := s.buildPrompt(msg.MessageText, anchor)

	modelStart := time.Now()
	raw, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		return 0, s.fail(fmt.Errorf("%w: %v", ErrExtractionUnavailable, err))
	}
	if s.metrics != nil {
		s.metrics.ModelCallDuration.Observe(time.Since(modelStart).Seconds())
	}

	booking, err := isolateBooking(raw)
	if err != nil {
		return 0, s.fail(err)
	}

	start, end, err := resolveWindow(booking, anchor, s.loc)
	if err != nil {
		return 0, s.fail(err)
	}

	airplane, err := s.airplanes.GetByTailNumber(ctx, booking.TailNumber)
	if err != nil {
		return 0, s.fail(fmt.Errorf("%w: %v", ErrPersistenceFailure, err))
	}
	if airplane == nil {
		return 0, s.fail(fmt.Errorf("%w: %q", ErrAirplaneNotFound, booking.TailNumber))
	}

	s.warnOnOverlap(ctx, airplane.ID, booking.TailNumber, start, end)

	notes := common.Truncate(fmt.Sprintf("Booked via SMS from %s", msg.SenderAddress), constants.NotesMaxLen)
	reservation := &gormModels.Reservation{
		AirplaneID:     airplane.ID,
		UserID:         constants.SMSUserID,
		StartTime:      start,
		EndTime:        end,
		RequiresReview: false,
		Notes:          notes,
	}

	id, err := s.reservations.Upsert(ctx, reservation)
	if err != nil {
		return 0, s.fail(fmt.Errorf("%w: %v", ErrPersistenceFailure, err))
	}

	if s.metrics != nil {
		s.metrics.SMSReservationsTotal.Inc()
	}
	logging.Info("Reservation created from SMS",
		"reservation_id", id,
		"tail_number", booking.TailNumber,
		"start", start.Format(time.RFC3339),
		"end", end.Format(time.RFC3339),
		"sender", msg.SenderAddress,
	)
	return id, nil
}

// warnOnOverlap flags double bookings without blocking them: conflict policy
// is the scheduler's call, not the pipeline's. The row this upsert replaces
// (same SMS user and start instant) is not a conflict.
func (s *InboundSMSService) warnOnOverlap(ctx context.Context, airplaneID int64, tailNumber string, start, end time.Time) {
	overlaps, err := s.reservations.FindInWindow(ctx, airplaneID, start, end)
	if err != nil {
		logging.Warn("Overlap check failed", "error", err.Error())
		return
	}
	for _, other := range overlaps {
		if other.UserID == constants.SMSUserID && other.StartTime.UTC().Equal(start) {
			continue
		}
		logging.Warn("SMS booking overlaps an existing reservation",
			"tail_number", tailNumber,
			"existing_id", other.ID,
			"existing_start", other.StartTime.UTC().Format(time.RFC3339),
			"existing_end", other.EndTime.UTC().Format(time.RFC3339),
		)
		return
	}
}

func (s *InboundSMSService) fail(err error) error {
	if s.metrics != nil {
		s.metrics.ExtractionFailuresTotal.WithLabelValues(ErrorCode(err)).Inc()
	}
	return err
}

// buildPrompt assembles the extraction instruction. The anchor date and the
// weekday table make relative references resolvable without giving the model
// room to pick a day more than a week out.
func (s *InboundSMSService) buildPrompt(message string, anchor time.Time) string {
	var weekdays strings.Builder
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		d := resolveWeekday(anchor, wd)
		weekdays.WriteString(fmt.Sprintf("  - %s: %s\n", wd, d.Format("2006-01-02")))
	}

	return fmt.Sprintf(`You are an assistant for a flying club. Extract the reservation details from this text message.

Today is %s, %s.

Rules:
- An explicit full date in the message always overrides weekday inference.
- If the message names a weekday without a date, resolve it with this table:
%s- If no end date is mentioned, use the start date.
- If no end time is mentioned, use 23:59.

Return a single JSON object with exactly these string fields: tail_number, start_date (YYYY-MM-DD), start_time (24-hour HH:MM), end_date, end_time.

IMPORTANT: Your response MUST be a valid JSON object and nothing else. Do not include any explanations or markdown.

Message: "%s"`,
		anchor.Weekday(), anchor.Format("2006-01-02"), weekdays.String(), message)
}

// resolveWeekday returns the closest occurrence of day on or after anchor.
func resolveWeekday(anchor time.Time, day time.Weekday) time.Time {
	delta := (int(day) - int(anchor.Weekday()) + 7) % 7
	return anchor.AddDate(0, 0, delta)
}

// isolateBooking locates the first '{' ... last '}' span in the model
// response and parses it. Models wrap JSON in prose often enough that
// trusting the whole response is not an option.
func isolateBooking(raw string) (*dtos.ExtractedBooking, error) {
	jsonStart := strings.Index(raw, "{")
	jsonEnd := strings.LastIndex(raw, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return nil, fmt.Errorf("%w: no JSON span", ErrNoStructuredResult)
	}

	var booking dtos.ExtractedBooking
	if err := json.Unmarshal([]byte(raw[jsonStart:jsonEnd+1]), &booking); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStructuredResult, err)
	}
	return &booking, nil
}

// resolveWindow normalizes the extracted date fields and combines them into
// UTC instants. Wall-clock values are interpreted in the club timezone.
func resolveWindow(b *dtos.ExtractedBooking, anchor time.Time, loc *time.Location) (time.Time, time.Time, error) {
	startDate, err := backfillYear(b.StartDate, anchor.Year())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date %q", ErrUnusableWindow, b.StartDate)
	}
	if b.StartTime == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: missing start time", ErrUnusableWindow)
	}

	endDate := startDate
	if b.EndDate != "" {
		endDate, err = backfillYear(b.EndDate, anchor.Year())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end date %q", ErrUnusableWindow, b.EndDate)
		}
	}

	endTime := b.EndTime
	if endTime == "" {
		endTime = constants.DefaultEndTime
	}

	start, err := combineLocal(startDate, b.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %v", ErrUnusableWindow, err)
	}
	end, err := combineLocal(endDate, endTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %v", ErrUnusableWindow, err)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %s not after start %s",
			ErrUnusableWindow, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return start, end, nil
}

// backfillYear guards against the model defaulting to a stale training-time
// year: anything earlier than the anchor year is rewritten to it, keeping
// month and day.
func backfillYear(date string, anchorYear int) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	if t.Year() < anchorYear {
		t = time.Date(anchorYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return t.Format("2006-01-02"), nil
}

// combineLocal parses a date+time pair as club wall-clock and returns UTC.
func combineLocal(date, clock string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, date+" "+clock, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q %q", date, clock)
}
