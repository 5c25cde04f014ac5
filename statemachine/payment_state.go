package statemachine

import (
	"errors"
	"school-catering-api/models"
)

// Transition defines a valid payment state change and who can perform it
type Transition struct {
	From  models.PaymentStatus
	To    models.PaymentStatus
	Actor string // "cashier", "admin", "system"
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Cashier (or admin acting as cashier) records a cash payment
	{From: models.PaymentPending, To: models.PaymentPaid, Actor: "cashier"},
	{From: models.PaymentPending, To: models.PaymentPaid, Actor: "admin"},
	// System marks a payment failed
	{From: models.PaymentPending, To: models.PaymentFailed, Actor: "system"},
	// Admin can reopen a failed payment
	{From: models.PaymentFailed, To: models.PaymentPending, Actor: "admin"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.PaymentStatus
	To    models.PaymentStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.PaymentStatus) []models.PaymentStatus {
	var nexts []models.PaymentStatus
	seen := map[models.PaymentStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.PaymentStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.PaymentStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
