package route

import (
	"context"
	"testing"
	"time"

	"backend-pathpal/internal/poi"

	"github.com/pashagolub/pgxmock/v3"
)

func TestRouteServiceCreateGet(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO user_routes`).
		WithArgs(pgxmock.AnyArg(), "Morning Loop", "coffee first", "walk", []int32{0, 5, 6}, 25, "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	svc := NewService(mock)
	created, err := svc.CreateRoute(context.Background(), Route{
		Name:        "Morning Loop",
		Description: "coffee first",
		Mode:        poi.ModeWalk,
		Stops:       []int{0, 5, 6},
		BonusPoints: 25,
		CreatedBy:   "user-1",
	})
	if err != nil {
		t.Fatalf("create route: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	mock.ExpectQuery(`SELECT id, name, description, mode, stops, bonus_points, created_by, created_at`).
		WithArgs(created.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "mode", "stops", "bonus_points", "created_by", "created_at"}).
			AddRow(created.ID, "Morning Loop", "coffee first", "walk", []int32{0, 5, 6}, 25, "user-1", createdAt))

	loaded, err := svc.GetRoute(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get route: %v", err)
	}
	if loaded.Mode != poi.ModeWalk || len(loaded.Stops) != 3 || loaded.Stops[1] != 5 {
		t.Fatalf("unexpected route: %+v", loaded)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRouteServiceCreateRejectsInvalid(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.CreateRoute(context.Background(), Route{Mode: poi.ModeWalk, Stops: []int{99}}); err == nil {
		t.Fatalf("expected invalid route error")
	}
	if _, err := svc.CreateRoute(context.Background(), Route{Mode: poi.Mode("boat"), Stops: []int{0}}); err == nil {
		t.Fatalf("expected invalid mode error")
	}
}

func TestRouteServiceListDelete(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	svc := NewService(mock)

	mock.ExpectQuery(`SELECT id, name, description, mode, stops, bonus_points, created_by, created_at`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "mode", "stops", "bonus_points", "created_by", "created_at"}).
			AddRow("r-1", "Loop", "", "wheels", []int32{1, 4, 7}, 50, "user-1", time.Now()))

	routes, err := svc.ListRoutes(context.Background(), "user-1")
	if err != nil || len(routes) != 1 {
		t.Fatalf("list routes: %v", err)
	}

	mock.ExpectExec(`DELETE FROM user_routes`).
		WithArgs("r-1", "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := svc.DeleteRoute(context.Background(), "r-1", "user-1"); err != nil {
		t.Fatalf("delete route: %v", err)
	}

	mock.ExpectExec(`DELETE FROM user_routes`).
		WithArgs("r-1", "someone-else").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := svc.DeleteRoute(context.Background(), "r-1", "someone-else"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
