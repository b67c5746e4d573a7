package fees

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/shared"
)

// FieldChange records a single field edit inside an amendment
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// FieldChanges is a jsonb-persisted list of field edits
type FieldChanges []FieldChange

// Value implements driver.Valuer for jsonb storage
func (fc FieldChanges) Value() (driver.Value, error) {
	if fc == nil {
		return "[]", nil
	}
	b, err := json.Marshal(fc)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb retrieval
func (fc *FieldChanges) Scan(value any) error {
	if value == nil {
		*fc = FieldChanges{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into FieldChanges", value)
	}
	return json.Unmarshal(data, fc)
}

// PaymentAmendment is one append-only audit record per payment edit. Rows are
// only ever inserted; the prior state of every amended field stays retrievable
// through them.
type PaymentAmendment struct {
	shared.BaseEntity
	SchoolID  uuid.UUID    `json:"school_id"`
	PaymentID uuid.UUID    `json:"payment_id"`
	Changes   FieldChanges `json:"changes"`
	EditedBy  uuid.UUID    `json:"edited_by"`
	EditedAt  time.Time    `json:"edited_at"`
}

// NewPaymentAmendment creates an amendment record for a payment edit
func NewPaymentAmendment(schoolID, paymentID, editedBy uuid.UUID, changes []FieldChange) *PaymentAmendment {
	return &PaymentAmendment{
		BaseEntity: shared.NewBaseEntity(),
		SchoolID:   schoolID,
		PaymentID:  paymentID,
		Changes:    changes,
		EditedBy:   editedBy,
		EditedAt:   time.Now(),
	}
}
