package booking

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"dateplanner/models"
)

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	users := newFakeUserRepo(
		models.User{ID: "alice", DisplayName: "Alice", Role: models.RoleGirlfriend},
		models.User{ID: "bob", DisplayName: "Bob", Role: models.RoleBoyfriend},
	)
	return &DefaultBookingService{Repo: repo, UserRepo: users}, repo
}

func TestCreateBookingStartsPending(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking("alice", models.BookingInput{
		TargetUserID: "bob",
		DateTime:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Location:     "the park",
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if created.Status != models.BookingStatusPendingPayment {
		t.Errorf("new booking status = %q, want %q", created.Status, models.BookingStatusPendingPayment)
	}
	if created.PaymentType != "" {
		t.Errorf("new booking paymentType = %q, want empty", created.PaymentType)
	}
	if created.ID == "" {
		t.Error("new booking must carry an ID")
	}
	if created.FromUserName != "Alice" || created.TargetUserName != "Bob" {
		t.Errorf("display names not resolved: got %q / %q", created.FromUserName, created.TargetUserName)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService()
	when := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		actor string
		input models.BookingInput
	}{
		{"missing target", "alice", models.BookingInput{DateTime: when}},
		{"missing dateTime", "alice", models.BookingInput{TargetUserID: "bob"}},
		{"self booking", "alice", models.BookingInput{TargetUserID: "alice", DateTime: when}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(tc.actor, tc.input)
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	_, err := svc.CreateBooking("", models.BookingInput{TargetUserID: "bob", DateTime: when})
	var ae AuthorizationError
	if !errors.As(err, &ae) {
		t.Errorf("expected AuthorizationError for anonymous caller, got %v", err)
	}

	_, err = svc.CreateBooking("alice", models.BookingInput{TargetUserID: "ghost", DateTime: when})
	var nfe NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("expected NotFoundError for unknown target, got %v", err)
	}
}

func TestApproveBooking(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.CreateBooking("alice", models.BookingInput{
		TargetUserID: "bob",
		DateTime:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if err := svc.ApproveBooking("bob", created.ID, models.PaymentTypeHugs); err != nil {
		t.Fatalf("ApproveBooking failed: %v", err)
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", stored.Status)
	}
	if stored.PaymentType != models.PaymentTypeHugs {
		t.Errorf("paymentType = %q, want hugs", stored.PaymentType)
	}
}

func TestApproveRequiresCounterpart(t *testing.T) {
	svc, repo := newTestService()
	created, _ := svc.CreateBooking("alice", models.BookingInput{
		TargetUserID: "bob",
		DateTime:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})

	var ae AuthorizationError
	if err := svc.ApproveBooking("alice", created.ID, models.PaymentTypeFood); !errors.As(err, &ae) {
		t.Errorf("initiator approve: expected AuthorizationError, got %v", err)
	}
	if err := svc.RejectBooking("alice", created.ID); !errors.As(err, &ae) {
		t.Errorf("initiator reject: expected AuthorizationError, got %v", err)
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.Status != models.BookingStatusPendingPayment {
		t.Errorf("stored status changed to %q after unauthorized calls", stored.Status)
	}
}

func TestApprovePaymentTypeValidation(t *testing.T) {
	svc, repo := newTestService()
	created, _ := svc.CreateBooking("alice", models.BookingInput{
		TargetUserID: "bob",
		DateTime:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})

	var ve ValidationError
	if err := svc.ApproveBooking("bob", created.ID, ""); !errors.As(err, &ve) {
		t.Errorf("empty paymentType: expected ValidationError, got %v", err)
	}
	if err := svc.ApproveBooking("bob", created.ID, "money"); !errors.As(err, &ve) {
		t.Errorf("unknown paymentType: expected ValidationError, got %v", err)
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.Status != models.BookingStatusPendingPayment {
		t.Errorf("stored status changed to %q after invalid approvals", stored.Status)
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	svc, repo := newTestService()
	when := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	confirmed, _ := svc.CreateBooking("alice", models.BookingInput{TargetUserID: "bob", DateTime: when})
	if err := svc.ApproveBooking("bob", confirmed.ID, models.PaymentTypeKisses); err != nil {
		t.Fatalf("ApproveBooking failed: %v", err)
	}

	var ce ConflictError
	if err := svc.RejectBooking("bob", confirmed.ID); !errors.As(err, &ce) {
		t.Errorf("reject after confirm: expected ConflictError, got %v", err)
	}
	if err := svc.ApproveBooking("bob", confirmed.ID, models.PaymentTypeFood); !errors.As(err, &ce) {
		t.Errorf("re-approve after confirm: expected ConflictError, got %v", err)
	}

	stored, _ := repo.GetByID(confirmed.ID)
	if stored.Status != models.BookingStatusConfirmed || stored.PaymentType != models.PaymentTypeKisses {
		t.Errorf("terminal booking mutated: status=%q paymentType=%q", stored.Status, stored.PaymentType)
	}

	rejected, _ := svc.CreateBooking("alice", models.BookingInput{TargetUserID: "bob", DateTime: when})
	if err := svc.RejectBooking("bob", rejected.ID); err != nil {
		t.Fatalf("RejectBooking failed: %v", err)
	}
	if err := svc.ApproveBooking("bob", rejected.ID, models.PaymentTypeHugs); !errors.As(err, &ce) {
		t.Errorf("approve after reject: expected ConflictError, got %v", err)
	}
	stored, _ = repo.GetByID(rejected.ID)
	if stored.PaymentType != "" {
		t.Errorf("reject must leave paymentType untouched, got %q", stored.PaymentType)
	}
}

func TestDecisionOnUnknownBooking(t *testing.T) {
	svc, _ := newTestService()

	var nfe NotFoundError
	if err := svc.ApproveBooking("bob", "nope", models.PaymentTypeHugs); !errors.As(err, &nfe) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if err := svc.RejectBooking("bob", "nope"); !errors.As(err, &nfe) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestWriteFailureSurfaced(t *testing.T) {
	svc, repo := newTestService()
	when := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	created, _ := svc.CreateBooking("alice", models.BookingInput{TargetUserID: "bob", DateTime: when})

	repo.updateErr = errors.New("connection reset")
	var wfe WriteFailedError
	if err := svc.ApproveBooking("bob", created.ID, models.PaymentTypeHugs); !errors.As(err, &wfe) {
		t.Errorf("expected WriteFailedError, got %v", err)
	}
	repo.updateErr = nil

	stored, _ := repo.GetByID(created.ID)
	if stored.Status != models.BookingStatusPendingPayment {
		t.Errorf("failed write must leave status unchanged, got %q", stored.Status)
	}

	repo.createErr = errors.New("connection reset")
	if _, err := svc.CreateBooking("alice", models.BookingInput{TargetUserID: "bob", DateTime: when}); !errors.As(err, &wfe) {
		t.Errorf("expected WriteFailedError from create, got %v", err)
	}
}

func TestConcurrentDecisionLosesGuard(t *testing.T) {
	svc, repo := newTestService()
	created, _ := svc.CreateBooking("alice", models.BookingInput{
		TargetUserID: "bob",
		DateTime:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})

	// Another decision lands between this caller's read and guarded write.
	if _, err := repo.UpdateIfStatus(created.ID, models.BookingStatusPendingPayment, bson.M{
		"status": models.BookingStatusRejected,
	}); err != nil {
		t.Fatalf("direct update failed: %v", err)
	}

	err := svc.ApproveBooking("bob", created.ID, models.PaymentTypeHugs)
	var ce ConflictError
	if !errors.As(err, &ce) {
		t.Errorf("expected ConflictError when guard no longer matches, got %v", err)
	}
}
