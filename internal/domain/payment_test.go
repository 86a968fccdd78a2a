package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePaymentBreakdown(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		previousPaid float64
		newPayment   float64
		want         PaymentBreakdown
	}{
		{
			name:       "partial payment",
			total:      100000,
			newPayment: 60000,
			want: PaymentBreakdown{
				PaidSoFar:    60000,
				RemainingDue: 40000,
				RefundDue:    0,
				Percentage:   60,
			},
		},
		{
			name:         "settled across two payments",
			total:        100000,
			previousPaid: 60000,
			newPayment:   40000,
			want: PaymentBreakdown{
				PaidSoFar:    100000,
				RemainingDue: 0,
				RefundDue:    0,
				Percentage:   100,
			},
		},
		{
			name:         "overpayment produces refund",
			total:        80000,
			previousPaid: 50000,
			newPayment:   50000,
			want: PaymentBreakdown{
				PaidSoFar:    100000,
				RemainingDue: 0,
				RefundDue:    20000,
				Percentage:   100,
			},
		},
		{
			name:  "zero total has zero percentage",
			total: 0,
			want: PaymentBreakdown{
				PaidSoFar:    0,
				RemainingDue: 0,
				RefundDue:    0,
				Percentage:   0,
			},
		},
		{
			name:       "payment against zero total is all refund",
			total:      0,
			newPayment: 30000,
			want: PaymentBreakdown{
				PaidSoFar:    30000,
				RemainingDue: 0,
				RefundDue:    30000,
				Percentage:   0,
			},
		},
		{
			name:         "negative correction floors at zero",
			total:        50000,
			previousPaid: 10000,
			newPayment:   -20000,
			want: PaymentBreakdown{
				PaidSoFar:    0,
				RemainingDue: 50000,
				RefundDue:    0,
				Percentage:   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePaymentBreakdown(tt.total, tt.previousPaid, tt.newPayment)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaymentBreakdown_IsSettled(t *testing.T) {
	assert.True(t, ComputePaymentBreakdown(100, 100, 0).IsSettled())
	assert.True(t, ComputePaymentBreakdown(100, 0, 150).IsSettled())
	assert.False(t, ComputePaymentBreakdown(100, 0, 50).IsSettled())
}
