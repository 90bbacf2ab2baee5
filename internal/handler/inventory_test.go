package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/inventory"
)

// MockInventoryService mocks the inventory.Service interface
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) List(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) CashOut(ctx context.Context, playerID string, itemID int) (*inventory.CashOutResult, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.CashOutResult), args.Error(1)
}

func (m *MockInventoryService) Ship(ctx context.Context, playerID string, itemID int) (domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemID)
	return args.Get(0).(domain.InventoryItem), args.Error(1)
}

func testItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: 1, Product: "Holo Print", Rarity: domain.RarityUncommon, Value: 18, Status: domain.ItemStatusHeld},
		{ID: 2, Product: "Signed Art Cel", Rarity: domain.RarityRare, Value: 42, Status: domain.ItemStatusHeld},
		{ID: 3, Product: "Crystal Bust", Rarity: domain.RarityRare, Value: 30, Status: domain.ItemStatusHeld},
	}
}

func TestHandleGetInventory(t *testing.T) {
	svc := &MockInventoryService{}
	svc.On("List", mock.Anything, DefaultPlayerID).Return(testItems(), nil)

	req := httptest.NewRequest("GET", "/inventory", nil)
	w := httptest.NewRecorder()

	HandleGetInventory(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []domain.InventoryItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestHandleGetInventory_RarityFilter(t *testing.T) {
	svc := &MockInventoryService{}
	svc.On("List", mock.Anything, DefaultPlayerID).Return(testItems(), nil)

	req := httptest.NewRequest("GET", "/inventory?rarity=rare", nil)
	w := httptest.NewRecorder()

	HandleGetInventory(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []domain.InventoryItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	for _, item := range resp.Data {
		assert.Equal(t, domain.RarityRare, item.Rarity)
	}
}

func TestHandleGetInventory_RejectsUnknownRarity(t *testing.T) {
	svc := &MockInventoryService{}

	req := httptest.NewRequest("GET", "/inventory?rarity=mythic", nil)
	w := httptest.NewRecorder()

	HandleGetInventory(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
