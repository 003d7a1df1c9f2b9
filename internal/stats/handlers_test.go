package stats

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func statsApp(svc *Service) *fiber.App {
	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-1")
		return c.Next()
	}
	RegisterRoutes(app.Group("/stats"), svc, auth)
	return app
}

func TestTotalsHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"count", "miles", "minutes", "points"}).
			AddRow(2, 4.0, 90, 110))

	app := statsApp(NewService(mock, nil))
	resp, err := app.Test(httptest.NewRequest("GET", "/stats/totals", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("totals: %v code=%d", err, resp.StatusCode)
	}

	var body struct {
		Totals   Totals   `json:"totals"`
		FunFacts []string `json:"fun_facts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Totals.CompletedRoutes != 2 || len(body.FunFacts) != 5 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestFavoritesHandlerEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT poi_name, COUNT\(\*\)`).
		WithArgs("user-1", 5).
		WillReturnRows(pgxmock.NewRows([]string{"poi_name", "visits"}))

	app := statsApp(NewService(mock, nil))
	resp, err := app.Test(httptest.NewRequest("GET", "/stats/favorites", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("favorites: %v code=%d", err, resp.StatusCode)
	}

	var favorites []BusinessVisits
	if err := json.NewDecoder(resp.Body).Decode(&favorites); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if favorites == nil || len(favorites) != 0 {
		t.Fatalf("expected empty array, got %v", favorites)
	}
}

func TestLeaderboardHandlerPublic(t *testing.T) {
	_, rdb := testRedis(t)
	if err := rdb.ZIncrBy(context.Background(), "leaderboard:points", 75, "alice").Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := statsApp(NewService(nil, rdb))
	resp, err := app.Test(httptest.NewRequest("GET", "/stats/leaderboard", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("leaderboard: %v code=%d", err, resp.StatusCode)
	}

	var entries []LeaderboardEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "alice" || entries[0].Points != 75 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
