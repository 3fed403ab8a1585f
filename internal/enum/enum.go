package enum

// ── Group A: State machines (enum types in DB) ──

const (
	RequestStatusDraft     = "draft"
	RequestStatusSent      = "sent"
	RequestStatusViewed    = "viewed"
	RequestStatusConfirmed = "confirmed"
	RequestStatusCancelled = "cancelled"
)

// ── Group B: Item classification (enum type in DB) ──

const (
	ItemSectionRepair      = "repair"
	ItemSectionReplacement = "replacement"
)

// ── Group C: Configurable labels (no DB constraint) ──

const (
	NoteAuthorAdmin = "admin"
)

const (
	LaCarteSettingsID = "lacarte"
)

const (
	EventRequestStatusChanged = "request.status_changed"
	EventNotificationsCleared = "notifications.cleared"
	EventNotificationsAck     = "notifications.ack"
)
