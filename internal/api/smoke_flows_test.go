package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lifeos-dev/lifeos/internal/nutrition"
)

func TestRegisterSetupHabitFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	registerResponse := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "flow@example.com",
		"password": "StrongPass1",
	})
	if registerResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", registerResponse.StatusCode)
	}
	registerBody := map[string]any{}
	decodeJSONBody(t, registerResponse, &registerBody)
	registerResponse.Body.Close()

	recoveryCode, _ := registerBody["recovery_code"].(string)
	if !recoveryCodeRegex.MatchString(recoveryCode) {
		t.Fatalf("expected one-time recovery code in register response, got %q", recoveryCode)
	}

	var authCookie string
	for _, cookie := range registerResponse.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			authCookie = cookie.Name + "=" + cookie.Value
		}
	}
	if authCookie == "" {
		t.Fatal("expected register to set the auth cookie")
	}

	setupResponse := doJSON(t, app, http.MethodPost, "/api/profile/setup", authCookie, map[string]any{
		"display_name": "Flow",
		"timezone":     "UTC",
	})
	if setupResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected setup status 200, got %d", setupResponse.StatusCode)
	}
	setupResponse.Body.Close()

	habitResponse := doJSON(t, app, http.MethodPost, "/api/habits", authCookie, map[string]any{
		"name":         "Water",
		"target_value": 8,
		"unit":         "glasses",
		"color":        "#3b82f6",
	})
	if habitResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected habit create status 201, got %d", habitResponse.StatusCode)
	}
	habit := struct {
		ID uint `json:"ID"`
	}{}
	decodeJSONBody(t, habitResponse, &habit)
	habitResponse.Body.Close()
	if habit.ID == 0 {
		t.Fatal("expected created habit to carry an id")
	}

	today := time.Now().UTC().Format("2006-01-02")
	logResponse := doJSON(t, app, http.MethodPost, "/api/habits/1/logs", authCookie, map[string]any{
		"date":  today,
		"value": 8,
	})
	if logResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected log upsert status 200, got %d", logResponse.StatusCode)
	}
	logResponse.Body.Close()

	// Logging the same day again must overwrite.
	logResponse = doJSON(t, app, http.MethodPost, "/api/habits/1/logs", authCookie, map[string]any{
		"date":  today,
		"value": 10,
	})
	if logResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected repeat upsert status 200, got %d", logResponse.StatusCode)
	}
	logResponse.Body.Close()

	statsResponse := doJSON(t, app, http.MethodGet, "/api/habits/stats?days=7", authCookie, nil)
	if statsResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected stats status 200, got %d", statsResponse.StatusCode)
	}
	stats := []struct {
		Name           string `json:"name"`
		CurrentStreak  int    `json:"current_streak"`
		CompletionRate int    `json:"completion_rate"`
		Logs           []struct {
			Date  string  `json:"date"`
			Value float64 `json:"value"`
		} `json:"logs"`
	}{}
	decodeJSONBody(t, statsResponse, &stats)
	statsResponse.Body.Close()

	if len(stats) != 1 {
		t.Fatalf("expected stats for one habit, got %d", len(stats))
	}
	if stats[0].CurrentStreak != 1 {
		t.Fatalf("expected current streak 1, got %d", stats[0].CurrentStreak)
	}
	if len(stats[0].Logs) != 7 {
		t.Fatalf("expected 7 log points, got %d", len(stats[0].Logs))
	}
	if got := stats[0].Logs[6]; got.Date != today || got.Value != 10 {
		t.Fatalf("expected today's point %s=10, got %s=%v", today, got.Date, got.Value)
	}
}

func TestNutritionGoalReplacementFlow(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "goals@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, "goals@example.com", "StrongPass1")

	for _, target := range []float64{2200, 1900} {
		response := doJSON(t, app, http.MethodPut, "/api/nutrition/goals", authCookie, map[string]any{
			"calories_target": target,
			"protein_g":       120,
		})
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected goal save status 200, got %d", response.StatusCode)
		}
		body := map[string]any{}
		decodeJSONBody(t, response, &body)
		response.Body.Close()
		if body["success"] != true {
			t.Fatalf("expected success response, got %v", body)
		}
	}

	response := doJSON(t, app, http.MethodGet, "/api/nutrition/goals", authCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected active goal status 200, got %d", response.StatusCode)
	}
	goal := struct {
		CaloriesTarget float64 `json:"CaloriesTarget"`
		IsActive       bool    `json:"IsActive"`
	}{}
	decodeJSONBody(t, response, &goal)
	response.Body.Close()

	if goal.CaloriesTarget != 1900 || !goal.IsActive {
		t.Fatalf("expected latest goal active, got %+v", goal)
	}
}

func TestMealsAndExportFlow(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "meals@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, "meals@example.com", "StrongPass1")

	today := time.Now().UTC().Format("2006-01-02")
	mealResponse := doJSON(t, app, http.MethodPost, "/api/nutrition/meals", authCookie, map[string]any{
		"name":      "Oatmeal",
		"date":      today,
		"meal_type": "breakfast",
		"calories":  350,
		"protein_g": 12,
	})
	if mealResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected meal create status 201, got %d", mealResponse.StatusCode)
	}
	mealResponse.Body.Close()

	historyResponse := doJSON(t, app, http.MethodGet, "/api/nutrition/history?start="+today+"&end="+today, authCookie, nil)
	if historyResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected history status 200, got %d", historyResponse.StatusCode)
	}
	history := []struct {
		Date     string `json:"date"`
		Calories int    `json:"calories"`
	}{}
	decodeJSONBody(t, historyResponse, &history)
	historyResponse.Body.Close()

	if len(history) != 1 || history[0].Calories != 350 {
		t.Fatalf("expected single 350-calorie day, got %+v", history)
	}

	summaryResponse := doJSON(t, app, http.MethodGet, "/api/export/summary", authCookie, nil)
	if summaryResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected export summary status 200, got %d", summaryResponse.StatusCode)
	}
	summary := struct {
		TotalMeals int  `json:"total_meals"`
		HasData    bool `json:"has_data"`
	}{}
	decodeJSONBody(t, summaryResponse, &summary)
	summaryResponse.Body.Close()

	if summary.TotalMeals != 1 || !summary.HasData {
		t.Fatalf("unexpected export summary: %+v", summary)
	}
}

type fixedLookupSource struct {
	macros nutrition.Macros
	found  bool
}

func (source fixedLookupSource) Name() string { return "fixed" }

func (source fixedLookupSource) Lookup(ctx context.Context, food string) (nutrition.Macros, bool, error) {
	return source.macros, source.found, nil
}

func TestNutritionLookupEndpoint(t *testing.T) {
	t.Parallel()

	resolver := nutrition.NewResolver(fixedLookupSource{
		macros: nutrition.Macros{Food: "Banana", Calories: 89, ProteinG: 1.1},
		found:  true,
	})
	app, database := newTestAppWithResolver(t, resolver)
	createTestUser(t, database, "lookup@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, "lookup@example.com", "StrongPass1")

	response := doJSON(t, app, http.MethodGet, "/api/nutrition/lookup?food=banana", authCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected lookup status 200, got %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	response.Body.Close()
	if err != nil {
		t.Fatalf("read lookup body: %v", err)
	}
	if !strings.Contains(string(body), `"Banana"`) {
		t.Fatalf("expected lookup hit in body, got %s", body)
	}

	response = doJSON(t, app, http.MethodGet, "/api/nutrition/lookup?food=a", authCookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for short query, got %d", response.StatusCode)
	}
}

func TestNutritionLookupNotFound(t *testing.T) {
	t.Parallel()

	resolver := nutrition.NewResolver(fixedLookupSource{})
	app, database := newTestAppWithResolver(t, resolver)
	createTestUser(t, database, "miss@example.com", "StrongPass1", true)
	authCookie := loginAndExtractAuthCookie(t, app, "miss@example.com", "StrongPass1")

	response := doJSON(t, app, http.MethodGet, "/api/nutrition/lookup?food=unobtainium", authCookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for exhausted chain, got %d", response.StatusCode)
	}
}

func TestRecoverPasswordFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	registerResponse := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "recover@example.com",
		"password": "StrongPass1",
	})
	if registerResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", registerResponse.StatusCode)
	}
	registerBody := map[string]any{}
	decodeJSONBody(t, registerResponse, &registerBody)
	registerResponse.Body.Close()
	recoveryCode, _ := registerBody["recovery_code"].(string)

	recoverResponse := doJSON(t, app, http.MethodPost, "/api/auth/recover", "", map[string]any{
		"recovery_code": recoveryCode,
		"new_password":  "FreshPass2",
	})
	if recoverResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected recover status 200, got %d", recoverResponse.StatusCode)
	}
	recoverBody := map[string]any{}
	decodeJSONBody(t, recoverResponse, &recoverBody)
	recoverResponse.Body.Close()

	replacementCode, _ := recoverBody["recovery_code"].(string)
	if !recoveryCodeRegex.MatchString(replacementCode) {
		t.Fatalf("expected replacement recovery code in recover response, got %q", replacementCode)
	}
	if replacementCode == recoveryCode {
		t.Fatal("expected the replacement code to differ from the consumed one")
	}

	// Old password is gone, the new one works.
	staleLogin := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "recover@example.com",
		"password": "StrongPass1",
	})
	staleLogin.Body.Close()
	if staleLogin.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected old password rejected, got %d", staleLogin.StatusCode)
	}
	loginAndExtractAuthCookie(t, app, "recover@example.com", "FreshPass2")
}

func TestRecoveryCodeIsSingleUse(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	registerResponse := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "replay@example.com",
		"password": "StrongPass1",
	})
	if registerResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", registerResponse.StatusCode)
	}
	registerBody := map[string]any{}
	decodeJSONBody(t, registerResponse, &registerBody)
	registerResponse.Body.Close()
	recoveryCode, _ := registerBody["recovery_code"].(string)

	firstRecover := doJSON(t, app, http.MethodPost, "/api/auth/recover", "", map[string]any{
		"recovery_code": recoveryCode,
		"new_password":  "FreshPass2",
	})
	firstRecover.Body.Close()
	if firstRecover.StatusCode != http.StatusOK {
		t.Fatalf("expected first recover status 200, got %d", firstRecover.StatusCode)
	}

	secondRecover := doJSON(t, app, http.MethodPost, "/api/auth/recover", "", map[string]any{
		"recovery_code": recoveryCode,
		"new_password":  "HijackPass3",
	})
	secondRecover.Body.Close()
	if secondRecover.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected replayed code rejected with 401, got %d", secondRecover.StatusCode)
	}

	// The replay must not have changed the password either.
	hijackLogin := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "replay@example.com",
		"password": "HijackPass3",
	})
	hijackLogin.Body.Close()
	if hijackLogin.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected replay password rejected, got %d", hijackLogin.StatusCode)
	}
	loginAndExtractAuthCookie(t, app, "replay@example.com", "FreshPass2")
}
