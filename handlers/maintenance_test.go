package handlers

import (
	"net/http"
	"os"
	"testing"
)

func TestCronRemovePromocoesSweep(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)
	seedProfile(t, router, token)

	// Expired yesterday, expiring today (kept), valid next week.
	do(router, jsonRequest("POST", "/api/sorveteria/promocao", promoPayload("Vencida", "2025-06-10", 2), token))
	do(router, jsonRequest("POST", "/api/sorveteria/promocao", promoPayload("Vence hoje", "2025-06-11", 3), token))
	do(router, jsonRequest("POST", "/api/sorveteria/promocao", promoPayload("Semana que vem", "2025-06-18", 4), token))

	w := do(router, jsonRequest("POST", "/api/sorveteria/cron/remove-promocoes", nil, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if data := dataField(parseResponse(w)); data["removidas"] != float64(1) {
		t.Errorf("expected 1 removed, got %v", data["removidas"])
	}

	// Second sweep with no new expiries removes nothing.
	w = do(router, jsonRequest("POST", "/api/sorveteria/cron/remove-promocoes", nil, ""))
	if data := dataField(parseResponse(w)); data["removidas"] != float64(0) {
		t.Errorf("expected 0 removed on second run, got %v", data["removidas"])
	}
}

func TestCronUpdateStatus(t *testing.T) {
	router := setupRouter(freshStore())
	seedProfile(t, router, adminToken(t))

	w := do(router, jsonRequest("POST", "/api/sorveteria/cron/update-status", nil, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if data := dataField(parseResponse(w)); data["status_funcionamento"] != "aberto" {
		t.Errorf("expected aberto at 15:00, got %v", data["status_funcionamento"])
	}
}

func TestCronUpdateStatusWithoutProfile(t *testing.T) {
	router := setupRouter(freshStore())

	w := do(router, jsonRequest("POST", "/api/sorveteria/cron/update-status", nil, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("maintenance must always succeed, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCronEndpointsHonorSecret(t *testing.T) {
	os.Setenv("CRON_SECRET", "segredo-do-cron")
	defer os.Unsetenv("CRON_SECRET")

	router := setupRouter(freshStore())

	w := do(router, jsonRequest("POST", "/api/sorveteria/cron/update-status", nil, ""))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without secret, got %d: %s", w.Code, w.Body.String())
	}

	w = do(router, jsonRequest("POST", "/api/sorveteria/cron/update-status", nil, "segredo-do-cron"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with secret, got %d: %s", w.Code, w.Body.String())
	}
}
