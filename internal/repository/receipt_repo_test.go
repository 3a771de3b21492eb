package repository

import (
	"strconv"
	"testing"

	"visaportal/internal/models"
)

func TestReceiptRepoNewestFirst(t *testing.T) {
	repo := NewReceiptRepo(10)
	for i := 0; i < 3; i++ {
		repo.Add(&models.Receipt{ApplicationID: "APP" + strconv.Itoa(i)})
	}

	recent := repo.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 receipts, got %d", len(recent))
	}
	if recent[0].ApplicationID != "APP2" || recent[1].ApplicationID != "APP1" {
		t.Fatalf("expected newest first, got %s then %s", recent[0].ApplicationID, recent[1].ApplicationID)
	}
}

func TestReceiptRepoBounded(t *testing.T) {
	repo := NewReceiptRepo(5)
	for i := 0; i < 12; i++ {
		repo.Add(&models.Receipt{ApplicationID: "APP" + strconv.Itoa(i)})
	}

	recent := repo.Recent(0)
	if len(recent) != 5 {
		t.Fatalf("expected ring capped at 5, got %d", len(recent))
	}
	if recent[0].ApplicationID != "APP11" {
		t.Fatalf("expected newest retained, got %s", recent[0].ApplicationID)
	}
	if repo.Count() != 12 {
		t.Fatalf("expected lifetime count 12, got %d", repo.Count())
	}
}
