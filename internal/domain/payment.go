package domain

// PaymentBreakdown is the derived payment state for an appointment.
// It carries no persistence of its own and is recomputed from the
// current total and payments on every use.
type PaymentBreakdown struct {
	PaidSoFar    float64 // accumulated payments, floored at 0
	RemainingDue float64 // amount still owed, floored at 0
	RefundDue    float64 // over-payment to be returned, 0 unless paid > total
	Percentage   float64 // paid share of the total, capped at 100
}

// ComputePaymentBreakdown derives the payment state from the total amount,
// the previously recorded payments and a newly entered payment.
func ComputePaymentBreakdown(total, previousPaid, newPayment float64) PaymentBreakdown {
	paidSoFar := previousPaid + newPayment
	if paidSoFar < 0 {
		paidSoFar = 0
	}

	remaining := total - paidSoFar
	if remaining < 0 {
		remaining = 0
	}

	refund := paidSoFar - total
	if refund < 0 {
		refund = 0
	}

	percentage := 0.0
	if total > 0 {
		percentage = paidSoFar / total * 100
		if percentage > 100 {
			percentage = 100
		}
	}

	return PaymentBreakdown{
		PaidSoFar:    paidSoFar,
		RemainingDue: remaining,
		RefundDue:    refund,
		Percentage:   percentage,
	}
}

// IsSettled returns true if the paid amount covers the total
func (p PaymentBreakdown) IsSettled() bool {
	return p.RemainingDue == 0
}
