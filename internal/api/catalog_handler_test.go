package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parlo-app/parlo-api/internal/domain"
)

func TestNewCatalogHandler(t *testing.T) {
	t.Run("nil catalog panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic for nil catalog, got none")
			}
		}()
		NewCatalogHandler(nil, newTestLogger())
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		handler := NewCatalogHandler(newTestCatalog(t), nil)
		if handler == nil {
			t.Error("expected handler, got nil")
		}
	})
}

func TestListCards(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedError  string
		expectedIDs    []string
	}{
		{
			name:           "no filters returns all cards in catalog order",
			query:          "",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"good-morning", "thank-you", "where-is-the-station"},
		},
		{
			name:           "category filter",
			query:          "?category=greetings",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"good-morning", "thank-you"},
		},
		{
			name:           "difficulty filter",
			query:          "?difficulty=intermediate",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"where-is-the-station"},
		},
		{
			name:           "combined filters",
			query:          "?category=travel&difficulty=intermediate",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"where-is-the-station"},
		},
		{
			name:           "filters matching nothing yield empty list",
			query:          "?category=food",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{},
		},
		{
			name:           "unknown category",
			query:          "?category=music",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Unknown category",
		},
		{
			name:           "unknown difficulty",
			query:          "?difficulty=expert",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Unknown difficulty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCatalogHandler(newTestCatalog(t), newTestLogger())

			req := httptest.NewRequest("GET", "/api/catalog/cards"+tc.query, nil)
			rr := httptest.NewRecorder()

			handler.ListCards(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tc.expectedStatus)
			}

			if tc.expectedStatus == http.StatusOK {
				var resp CardListResponse
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if resp.Count != len(tc.expectedIDs) {
					t.Errorf("wrong count in response: got %v want %v", resp.Count, len(tc.expectedIDs))
				}
				if len(resp.Cards) != len(tc.expectedIDs) {
					t.Fatalf("wrong number of cards: got %v want %v", len(resp.Cards), len(tc.expectedIDs))
				}
				for i, id := range tc.expectedIDs {
					if resp.Cards[i].ID != id {
						t.Errorf("wrong card at position %d: got %v want %v", i, resp.Cards[i].ID, id)
					}
				}
				return
			}

			if got := decodeErrorMessage(t, rr); got != tc.expectedError {
				t.Errorf("wrong error message: got %q want %q", got, tc.expectedError)
			}
		})
	}
}

func TestGetCard(t *testing.T) {
	tests := []struct {
		name           string
		pathCardID     string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "known card",
			pathCardID:     "thank-you",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown card",
			pathCardID:     "no-such-card",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Card not found",
		},
		{
			name:           "missing card ID",
			pathCardID:     "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Card ID is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCatalogHandler(newTestCatalog(t), newTestLogger())

			req := httptest.NewRequest("GET", "/api/catalog/cards/"+tc.pathCardID, nil)
			params := map[string]string{}
			if tc.pathCardID != "" {
				params["cardID"] = tc.pathCardID
			}
			req = withChiParams(req, params)

			rr := httptest.NewRecorder()
			handler.GetCard(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tc.expectedStatus)
			}

			if tc.expectedStatus == http.StatusOK {
				var card domain.VocabularyCard
				if err := json.NewDecoder(rr.Body).Decode(&card); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if card.ID != tc.pathCardID {
					t.Errorf("wrong card ID in response: got %v want %v", card.ID, tc.pathCardID)
				}
				if card.Term != "Thank you" {
					t.Errorf("wrong term in response: got %q", card.Term)
				}
				return
			}

			if got := decodeErrorMessage(t, rr); got != tc.expectedError {
				t.Errorf("wrong error message: got %q want %q", got, tc.expectedError)
			}
		})
	}
}
