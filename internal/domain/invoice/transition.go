package invoice

import (
	"strings"
	"time"
)

var transitions = map[Status][]Status{
	StatusSent:                {StatusPendingVerification, StatusVerified, StatusDiscrepancy},
	StatusPendingVerification: {StatusVerified, StatusDiscrepancy},
	StatusVerified:            {StatusPaid, StatusDiscrepancy},
	// a disputed invoice only collects further discrepancies
	StatusDiscrepancy: {StatusDiscrepancy},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Verify moves the invoice to Verified and stamps the verifier.
func (i *Invoice) Verify(verifierID string, now time.Time, notes string) error {
	if !CanTransition(i.Status, StatusVerified) {
		return ErrInvalidTransition
	}
	i.Status = StatusVerified
	i.stampVerified(verifierID, now)
	if notes = strings.TrimSpace(notes); notes != "" {
		i.VerificationNotes = notes
	}
	return nil
}

// AddDiscrepancy appends text and forces status Discrepancy. An earlier
// verifier stamp is kept as audit trail.
func (i *Invoice) AddDiscrepancy(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyDiscrepancy
	}
	if !CanTransition(i.Status, StatusDiscrepancy) {
		return ErrInvalidTransition
	}
	i.Discrepancies = append(i.Discrepancies, text)
	i.Status = StatusDiscrepancy
	return nil
}

// SetStatus is the generic setter. Verified requires a verifier; the
// verifier stamp is only written on that target so it always implies the
// invoice went through Verified.
func (i *Invoice) SetStatus(to Status, verifierID string, now time.Time, notes string) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if !CanTransition(i.Status, to) {
		return ErrInvalidTransition
	}
	if to == StatusDiscrepancy && len(i.Discrepancies) == 0 {
		// Discrepancy is entered through AddDiscrepancy so a reason is always recorded
		return ErrEmptyDiscrepancy
	}
	i.Status = to
	if to == StatusVerified {
		i.stampVerified(verifierID, now)
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		i.VerificationNotes = notes
	}
	return nil
}

func (i *Invoice) stampVerified(verifierID string, now time.Time) {
	by := verifierID
	at := now.UTC()
	i.VerifiedByID = &by
	i.VerifiedDate = &at
	i.VerifiedBy = nil
}
