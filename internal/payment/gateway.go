package payment

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Outcome is the result label reported by the payment capability
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// ChargeRequest describes a single payment attempt for an order total
type ChargeRequest struct {
	OrderID uint
	Amount  float64

	// SimulateFailure forces a declined charge. Only the simulated gateway
	// honors it; a real gateway integration would ignore the field.
	SimulateFailure bool
}

// Result is what the order engine consumes from the gateway: an outcome
// and an external reference for the attempt.
type Result struct {
	Outcome   Outcome
	Reference string
}

// Succeeded reports whether the charge went through
func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}

// Gateway is the external payment capability. The order engine only
// consumes the outcome; capture mechanics live behind this boundary.
type Gateway interface {
	Charge(req ChargeRequest) Result
}

// simulatedGateway approves every charge unless asked to decline.
// Stands in for a real processor integration.
type simulatedGateway struct{}

// NewSimulatedGateway creates a gateway that simulates payment capture
func NewSimulatedGateway() Gateway {
	return &simulatedGateway{}
}

func (g *simulatedGateway) Charge(req ChargeRequest) Result {
	ref := fmt.Sprintf("sim_%s", uuid.NewString())

	if req.SimulateFailure {
		log.WithFields(log.Fields{
			"order_id": req.OrderID,
			"amount":   req.Amount,
			"ref":      ref,
		}).Warn("Simulated charge declined")
		return Result{Outcome: OutcomeFailed, Reference: ref}
	}

	log.WithFields(log.Fields{
		"order_id": req.OrderID,
		"amount":   req.Amount,
		"ref":      ref,
	}).Info("Simulated charge approved")
	return Result{Outcome: OutcomeSucceeded, Reference: ref}
}
