package credits

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fichahub/pkg/models"
)

func newTestRouter(store *Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(store, nil, nil, "").RegisterRoutes(router.Group("/credits"))
	return router
}

func TestHandler_View(t *testing.T) {
	store := NewStore()
	store.Replace(projectorDataset())
	router := newTestRouter(store)

	req := httptest.NewRequest("GET", "/credits?year=2025&segment=Ensino%20M%C3%A9dio&volume=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status=%d, want 200", w.Code)
	}

	var resp struct {
		Selection models.Selection `json:"selection"`
		Empty     bool             `json:"empty"`
		Options   Options          `json:"options"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Selection.Year != "2025" || resp.Selection.Volume != 1 {
		t.Fatalf("selection=%+v", resp.Selection)
	}
	if resp.Empty {
		t.Fatalf("empty=true for a populated selection")
	}
	if len(resp.Options.Years) == 0 || len(resp.Options.Segments) == 0 {
		t.Fatalf("options missing: %+v", resp.Options)
	}
}

func TestHandler_ViewEmptyDataset(t *testing.T) {
	router := newTestRouter(NewStore())

	req := httptest.NewRequest("GET", "/credits", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// No data is the empty state, never an error.
	if w.Code != 200 {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var resp struct {
		Empty bool `json:"empty"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Empty {
		t.Fatalf("empty=false for an empty dataset")
	}
}

func TestHandler_Options(t *testing.T) {
	store := NewStore()
	store.Replace(projectorDataset())
	router := newTestRouter(store)

	req := httptest.NewRequest("GET", "/credits/options?year=2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var resp struct {
		Options Options `json:"options"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Options.Years) != 1 || resp.Options.Years[0] != "2025" {
		t.Fatalf("years=%v", resp.Options.Years)
	}
}

func TestStore_ReplaceSwapsWholesale(t *testing.T) {
	store := NewStore()
	first := projectorDataset()
	store.Replace(first)
	if store.RowCount() == 0 {
		t.Fatalf("row count zero after replace")
	}

	empty := models.EmptyDataset()
	store.Replace(empty)
	if store.Snapshot() != empty {
		t.Fatalf("snapshot did not swap")
	}
	if store.RowCount() != 0 {
		t.Fatalf("reload must replace, not merge")
	}
}
