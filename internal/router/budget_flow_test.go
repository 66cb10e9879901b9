package router

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"budgetly/internal/models"
)

func TestBudgetFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "budget@test.com", "password123")
	food := app.categoryID(t, token, "Food")
	rent := app.categoryID(t, token, "Utilities")
	salary := app.categoryID(t, token, "Salary")

	upsert := func(categoryID, amount string) map[string]interface{} {
		t.Helper()
		body := fmt.Sprintf(`{"categoryId":%q,"month":1,"year":2024,"amount":%q}`, categoryID, amount)
		rec := app.request("POST", "/api/v1/budgets", body, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("upsert failed: %d %s", rec.Code, rec.Body.String())
		}
		return parseJSON(t, rec)["budget"].(map[string]interface{})
	}

	first := upsert(food, "250")
	second := upsert(food, "300")
	if first["id"] != second["id"] {
		t.Errorf("expected upsert to keep id %v, got %v", first["id"], second["id"])
	}
	upsert(rent, "100")

	app.createTransaction(t, token, food, "expense", "200", "2024-01-01")
	app.createTransaction(t, token, food, "expense", "150", "2024-01-31")
	app.createTransaction(t, token, food, "expense", "999", "2024-02-01")
	app.createTransaction(t, token, salary, "income", "5000", "2024-01-15")

	t.Run("analysis", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/budgets/analysis?month=1&year=2024", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		a := parseJSON(t, rec)
		lines := a["budgets"].([]interface{})
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		byName := map[string]map[string]interface{}{}
		for _, l := range lines {
			line := l.(map[string]interface{})
			byName[line["category"].(map[string]interface{})["name"].(string)] = line
		}
		foodLine := byName["Food"]
		if foodLine["spent"] != "350" || foodLine["remaining"] != "-50" || foodLine["isOverBudget"] != true {
			t.Errorf("unexpected food line %v", foodLine)
		}
		if foodLine["percentage"] != float64(100) {
			t.Errorf("expected clamped percentage 100, got %v", foodLine["percentage"])
		}
		utilities := byName["Utilities"]
		if utilities["spent"] != "0" || utilities["isOverBudget"] != false {
			t.Errorf("unexpected utilities line %v", utilities)
		}

		summary := a["summary"].(map[string]interface{})
		if summary["totalBudget"] != "400" || summary["totalSpent"] != "350" || summary["totalRemaining"] != "50" {
			t.Errorf("unexpected summary %v", summary)
		}
		if summary["overallPercentage"] != 87.5 {
			t.Errorf("expected 87.5, got %v", summary["overallPercentage"])
		}
	})

	t.Run("analysis requires period", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/budgets/analysis?month=1", "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("income category rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/budgets",
			`{"categoryId":"`+salary+`","month":1,"year":2024,"amount":"10"}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("amount rounding to zero rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/budgets",
			`{"categoryId":"`+rent+`","month":2,"year":2024,"amount":"0.004"}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		if code := errorCode(parseJSON(t, rec)); code != "INVALID_INPUT" {
			t.Errorf("expected INVALID_INPUT, got %s", code)
		}
	})

	t.Run("analysis rejects year before 2000", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/budgets/analysis?month=1&year=1999", "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/budgets?month=1&year=2024", "", token)
		budgets := parseJSON(t, rec)["budgets"].([]interface{})
		if len(budgets) != 2 {
			t.Fatalf("expected 2 budgets, got %d", len(budgets))
		}
		id := budgets[0].(map[string]interface{})["id"].(string)

		other, _ := app.registerUser(t, "intruder@test.com", "password123")
		if rec := app.request("DELETE", "/api/v1/budgets/"+id, "", other); rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 for foreign delete, got %d", rec.Code)
		}
		if rec := app.request("DELETE", "/api/v1/budgets/"+id, "", token); rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if rec := app.request("DELETE", "/api/v1/budgets/"+id, "", token); rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 on second delete, got %d", rec.Code)
		}
	})
}

// SQLite runs writes one at a time, so this checks that overlapping requests
// for the same period all succeed and still leave a single row. It does not
// interleave two ON CONFLICT statements inside the database.
func TestBudgetFlow_ParallelUpsertsKeepOneRow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "race@test.com", "password123")
	food := app.categoryID(t, token, "Food")

	var wg sync.WaitGroup
	codes := make(chan int, 8)
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(amount int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"categoryId":%q,"month":3,"year":2024,"amount":"%d"}`, food, amount*10)
			codes <- app.request("POST", "/api/v1/budgets", body, token).Code
		}(i)
	}
	wg.Wait()
	close(codes)
	for code := range codes {
		if code != http.StatusOK {
			t.Errorf("expected 200 from every upsert, got %d", code)
		}
	}

	var count int64
	app.DB.Model(&models.Budget{}).Where("category_id = ? AND month = 3 AND year = 2024", food).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one budget row, got %d", count)
	}
}
