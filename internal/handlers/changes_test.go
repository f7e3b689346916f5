package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"sentiview/internal/service"
	"sentiview/internal/service/mocks"
)

func TestChangesHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviews := mocks.NewMockReviewService(ctrl)
	mockReviews.EXPECT().
		Changes(gomock.Any()).
		Return(service.ChangeSummary{Count: 3, Summary: "3 changes made", Edits: 2, AdditionGroups: 1})
	handler := NewChangesHandler(mockReviews)

	req := httptest.NewRequest(http.MethodGet, "/api/changes", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp service.ChangeSummary
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 3 || resp.Summary != "3 changes made" || resp.Edits != 2 {
		t.Errorf("response = %+v", resp)
	}
}

func TestOverviewHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviews := mocks.NewMockReviewService(ctrl)
	mockReviews.EXPECT().
		Overview(gomock.Any()).
		Return(service.Overview{
			TotalRecords: 42,
			Companies:    []string{"Acme", "Globex"},
			DateFrom:     "2024-01-01",
			DateTo:       "2024-03-15",
		})
	handler := NewOverviewHandler(mockReviews)

	req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp service.Overview
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalRecords != 42 || len(resp.Companies) != 2 {
		t.Errorf("response = %+v", resp)
	}
}
