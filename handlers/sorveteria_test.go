package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestGetSorveteriaNotFound(t *testing.T) {
	router := setupRouter(freshStore())

	w := do(router, jsonRequest("GET", "/api/sorveteria", nil, ""))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["success"] != false {
		t.Error("expected success=false")
	}
	if errorCode(resp) != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %q", errorCode(resp))
	}
}

func TestCreateSorveteriaRequiresAuth(t *testing.T) {
	router := setupRouter(freshStore())

	w := do(router, jsonRequest("POST", "/api/sorveteria", validCreatePayload(), ""))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateSorveteriaSuccess(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)

	w := do(router, jsonRequest("POST", "/api/sorveteria", validCreatePayload(), token))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["success"] != true {
		t.Error("expected success=true")
	}
	data := dataField(resp)
	if data["id"] != float64(1) {
		t.Errorf("expected id 1, got %v", data["id"])
	}
	if data["nome"] != "Sorveteria Gelatto Real" {
		t.Errorf("unexpected nome: %v", data["nome"])
	}
	// 15:00 inside 10:00-22:00
	if data["status_funcionamento"] != "aberto" {
		t.Errorf("expected aberto, got %v", data["status_funcionamento"])
	}
}

func TestCreateSorveteriaStructuralValidation(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)

	payload := validCreatePayload()
	payload.Historia = "curta demais"

	w := do(router, jsonRequest("POST", "/api/sorveteria", payload, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if errorCode(resp) != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %q", errorCode(resp))
	}
	errObj := resp["error"].(map[string]interface{})
	if _, ok := errObj["details"]; !ok {
		t.Error("expected per-field details payload")
	}
}

func TestCreateSorveteriaMissingKeyword(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)

	payload := validCreatePayload()
	payload.Historia = strings.Replace(historiaValida, "origem", "receita", 1)

	w := do(router, jsonRequest("POST", "/api/sorveteria", payload, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "origem") {
		t.Errorf("expected the missing term to be named: %s", w.Body.String())
	}
}

func TestCreateSorveteriaTwiceReplaces(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)
	seedProfile(t, router, token)

	payload := validCreatePayload()
	payload.Nome = "Gelatto Real Matriz"
	w := do(router, jsonRequest("POST", "/api/sorveteria", payload, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := dataField(parseResponse(w))
	if data["id"] != float64(1) {
		t.Errorf("expected the singleton to keep id 1, got %v", data["id"])
	}
	if data["nome"] != "Gelatto Real Matriz" {
		t.Errorf("expected replaced nome, got %v", data["nome"])
	}
}

func TestPatchSorveteriaMergesFields(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)
	seedProfile(t, router, token)

	w := do(router, jsonRequest("PATCH", "/api/sorveteria", map[string]interface{}{
		"slogan": "O melhor gelato da cidade",
	}, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := dataField(parseResponse(w))
	if data["slogan"] != "O melhor gelato da cidade" {
		t.Errorf("expected merged slogan, got %v", data["slogan"])
	}
	if data["nome"] != "Sorveteria Gelatto Real" {
		t.Errorf("expected other fields untouched, got %v", data["nome"])
	}
}

func TestPatchSorveteriaNotFound(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)

	w := do(router, jsonRequest("PATCH", "/api/sorveteria", map[string]interface{}{
		"slogan": "Sem perfil ainda",
	}, token))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPatchSorveteriaValidation(t *testing.T) {
	router := setupRouter(freshStore())
	token := adminToken(t)
	seedProfile(t, router, token)

	w := do(router, jsonRequest("PATCH", "/api/sorveteria", map[string]interface{}{
		"ano_fundacao": 1500,
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if errorCode(parseResponse(w)) != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR")
	}
}
