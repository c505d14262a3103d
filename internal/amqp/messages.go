package amqp

import (
	"encoding/json"
	"time"

	"foodspend/internal/core"
)

// OrderRecordedMessage announces a newly accepted order to downstream
// consumers.
type OrderRecordedMessage struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderRecordedMessage builds the event for an accepted order.
func NewOrderRecordedMessage(o core.Order) *OrderRecordedMessage {
	return &OrderRecordedMessage{
		ID:          o.ID,
		Category:    string(o.Category),
		AmountCents: o.Amount.Cents,
		Quantity:    o.Quantity,
		Date:        o.Date,
		Timestamp:   time.Now(),
	}
}

func (m *OrderRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SummaryMessage carries one periodic spending summary.
type SummaryMessage struct {
	Period      string    `json:"period"`
	TotalCents  int64     `json:"total_cents"`
	Count       int       `json:"count"`
	Boundary    time.Time `json:"boundary"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewSummaryMessage builds the event for an emitted period summary.
func NewSummaryMessage(s core.PeriodSummary, boundary, generatedAt time.Time) *SummaryMessage {
	return &SummaryMessage{
		Period:      string(s.Period),
		TotalCents:  s.Total.Cents,
		Count:       s.Count,
		Boundary:    boundary,
		GeneratedAt: generatedAt,
	}
}

func (m *SummaryMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
