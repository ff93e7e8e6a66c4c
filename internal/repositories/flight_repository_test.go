package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDecrementSeatsGuard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := FlightRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE FLIGHT").WithArgs(3, "FL1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE FLIGHT").WithArgs(3, "FL1", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}
	defer tx.Rollback()

	ok, err := repo.DecrementSeatsTx(context.Background(), tx, "FL1", 3)
	if err != nil {
		t.Fatalf("decrement error: %v", err)
	}
	if !ok {
		t.Fatalf("first decrement should succeed")
	}

	// Same statement once the seats are gone: the row no longer matches.
	ok, err = repo.DecrementSeatsTx(context.Background(), tx, "FL1", 3)
	if err != nil {
		t.Fatalf("decrement error: %v", err)
	}
	if ok {
		t.Fatalf("decrement past capacity must report no rows")
	}
}
