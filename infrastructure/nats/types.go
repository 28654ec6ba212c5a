package nats

// ═══════════════════════════════════════════════════════════════════════════════
// Stream & Subject Names
// ═══════════════════════════════════════════════════════════════════════════════

const (
	// StreamName JetStream stream ที่เก็บ domain events
	StreamName = "TIMEGUARD_EVENTS"

	// SubjectPrefix subject ของ event คือ timeguard.events.<type>
	SubjectPrefix = "timeguard.events."

	// SubjectAll wildcard ที่ stream subscribe ไว้
	SubjectAll = SubjectPrefix + ">"
)

// SubjectFor คืน subject ของ event type เช่น "timer.started" -> "timeguard.events.timer.started"
func SubjectFor(eventType string) string {
	return SubjectPrefix + eventType
}

// StreamInfo ข้อมูลสรุปของ stream (สำหรับ health endpoint)
type StreamInfo struct {
	Name     string `json:"name"`
	Messages uint64 `json:"messages"`
	Bytes    uint64 `json:"bytes"`
	LastSeq  uint64 `json:"last_seq"`
}
