package models

import "testing"

func TestNeedsApproval(t *testing.T) {
	b := Booking{
		ID:           "b1",
		FromUserID:   "alice",
		TargetUserID: "bob",
		Status:       BookingStatusPendingPayment,
	}

	if !b.NeedsApproval("bob") {
		t.Errorf("expected counterpart of a pending booking to need approval")
	}
	if b.NeedsApproval("alice") {
		t.Errorf("initiator must never be asked to approve")
	}

	b.Status = BookingStatusConfirmed
	if b.NeedsApproval("bob") {
		t.Errorf("confirmed booking must not need approval")
	}
	b.Status = BookingStatusRejected
	if b.NeedsApproval("bob") {
		t.Errorf("rejected booking must not need approval")
	}
}

func TestTerminal(t *testing.T) {
	cases := map[string]bool{
		BookingStatusPendingPayment: false,
		BookingStatusConfirmed:      true,
		BookingStatusRejected:       true,
	}
	for status, want := range cases {
		b := Booking{Status: status}
		if got := b.Terminal(); got != want {
			t.Errorf("Terminal() for %q = %v, want %v", status, got, want)
		}
	}
}

func TestOppositeRole(t *testing.T) {
	if got := OppositeRole(RoleBoyfriend); got != RoleGirlfriend {
		t.Errorf("OppositeRole(bf) = %q, want gf", got)
	}
	if got := OppositeRole(RoleGirlfriend); got != RoleBoyfriend {
		t.Errorf("OppositeRole(gf) = %q, want bf", got)
	}
	if got := OppositeRole("admin"); got != "" {
		t.Errorf("OppositeRole(admin) = %q, want empty", got)
	}
}

func TestAllowedPaymentTypes(t *testing.T) {
	for _, pt := range []string{PaymentTypeKisses, PaymentTypeHugs, PaymentTypeFood} {
		if !AllowedPaymentTypes[pt] {
			t.Errorf("expected %q to be an allowed payment type", pt)
		}
	}
	if AllowedPaymentTypes["money"] {
		t.Errorf("money must not be a recognized payment type")
	}
}
