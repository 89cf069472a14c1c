package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixFleet        CachePrefix = "FLEET_"
	CachePrefixInboundDedup CachePrefix = "INBOUND_"
)

const (
	// SMSUserID is the fixed user every SMS-created reservation is attributed to.
	// Seeded into the users table at startup.
	SMSUserID   = "sms-inbound"
	SMSUserName = "SMS Booking"

	// DefaultEndTime is applied when a message gives no end time.
	DefaultEndTime = "23:59"

	// DefaultClubTimezone is the wall-clock zone extracted times are read in.
	DefaultClubTimezone = "America/Denver"

	// NotesMaxLen bounds the free-text notes column.
	NotesMaxLen = 500
)
