package terminal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSepehrDriver_Purchase(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"resultCode": "00", "message": "approved"})
	}))
	defer srv.Close()

	driver := NewSepehrDriver(SepehrConfig{BaseURL: srv.URL})
	res, err := driver.Purchase(context.Background(), PurchaseRequest{Amount: "300000", Reference: "TX-1"})
	require.NoError(t, err)

	assert.Equal(t, "/purchase", gotPath)
	assert.Equal(t, "300000", gotBody["amount"])
	assert.True(t, res.Succeeded)
	assert.Equal(t, "00", res.Code)
}

func TestSepehrDriver_PurchaseSplit(t *testing.T) {
	var gotBody struct {
		Amount   string `json:"amount"`
		Accounts []struct {
			Sheba   string `json:"sheba"`
			Percent int    `json:"percent"`
		} `json:"accounts"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"resultCode": "55", "message": "declined"})
	}))
	defer srv.Close()

	driver := NewSepehrDriver(SepehrConfig{BaseURL: srv.URL})
	res, err := driver.PurchaseSplit(context.Background(), SplitPurchaseRequest{
		Amount:    "10000000",
		Reference: "TX-2",
		Percent1:  1,
		Percent2:  99,
		Sheba1:    "IR170180000000000306824171",
		Sheba2:    "IR430600500901007959216001",
	})
	require.NoError(t, err)

	require.Len(t, gotBody.Accounts, 2)
	assert.Equal(t, 1, gotBody.Accounts[0].Percent)
	assert.Equal(t, 99, gotBody.Accounts[1].Percent)
	assert.False(t, res.Succeeded)
	assert.Equal(t, "55", res.Code)
}

// a zero-percent slot must never reach the device
func TestSepehrDriver_PurchaseSplit_OmitsUnusedSlot(t *testing.T) {
	var gotBody struct {
		Accounts []map[string]interface{} `json:"accounts"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"resultCode": "00"})
	}))
	defer srv.Close()

	driver := NewSepehrDriver(SepehrConfig{BaseURL: srv.URL})
	_, err := driver.PurchaseSplit(context.Background(), SplitPurchaseRequest{
		Amount:    "500000",
		Reference: "TX-3",
		Percent1:  0,
		Percent2:  100,
		Sheba1:    "",
		Sheba2:    "IR430600500901007959216001",
	})
	require.NoError(t, err)
	assert.Len(t, gotBody.Accounts, 1)
}
