package view_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shopadmin/internal/domain"
	"shopadmin/internal/panel"
	"shopadmin/internal/store"
	"shopadmin/internal/view"
)

type listBackend struct{ list []domain.Shopkeeper }

func (b listBackend) SignIn(context.Context, domain.Credentials) (string, error) { return "tok", nil }

func (b listBackend) ListUnverified(context.Context) ([]domain.Shopkeeper, error) { return b.list, nil }

func (b listBackend) Accept(context.Context, string, []domain.ShopkeeperID) (domain.MutationResult, error) {
	return domain.MutationResult{}, nil
}

func (b listBackend) Delete(context.Context, string, []domain.ShopkeeperID) (domain.MutationResult, error) {
	return domain.MutationResult{}, nil
}

func restored(t *testing.T, list []domain.Shopkeeper) *panel.Panel {
	t.Helper()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(panel.TokenKey, "tok"))
	p := panel.New(listBackend{list: list}, kv, panel.Options{})
	t.Cleanup(p.Close)
	require.NoError(t, p.Restore(context.Background()))
	return p
}

func decodeList(t *testing.T, raw string) []domain.Shopkeeper {
	t.Helper()
	var env struct {
		Data []domain.Shopkeeper `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	return env.Data
}

func TestDashboard_SingleShopkeeperNoShops(t *testing.T) {
	list := decodeList(t, `{"data":[{"id":"1","name":"A","username":"a","phone":"555","createdAt":"2024-01-01","shops":[]}]}`)
	p := restored(t, list)

	var out strings.Builder
	require.NoError(t, view.Dashboard(&out, p.Snapshot()))
	text := out.String()

	lines := strings.Split(text, "\n")
	var header, values string
	for i, l := range lines {
		if strings.HasPrefix(l, "Total Pending") {
			header, values = l, lines[i+1]
			break
		}
	}
	require.Contains(t, header, "Total Shops")
	require.Equal(t, []string{"1", "0", "0"}, strings.Fields(values))

	require.Contains(t, text, "[ ] A  @a  (id 1)")
	require.Contains(t, text, "Phone:  555")
	require.Contains(t, text, "Shops:  0")
	require.Contains(t, text, "[Select All]  0 of 1 selected")
	require.NotContains(t, text, "Shop Details")
}

func TestDashboard_SelectionAndShops(t *testing.T) {
	p := restored(t, []domain.Shopkeeper{{
		ID: "7", Name: "Bea", Username: "bea", Phone: "123",
		Shops: []domain.Shop{{ID: "s", Name: "Bea's Bakes", Tagline: "warm bread", LocalArea: "Old Town"}},
	}})
	p.ToggleSelectAll()
	p.SetMessage("Successfully verified 1 shopkeepers!")

	var out strings.Builder
	require.NoError(t, view.Dashboard(&out, p.Snapshot()))
	text := out.String()

	require.Contains(t, text, "[x] Bea")
	require.Contains(t, text, "[Deselect All]  1 of 1 selected")
	require.Contains(t, text, "Shop Details:")
	require.Contains(t, text, "- Bea's Bakes")
	require.Contains(t, text, "warm bread")
	require.Contains(t, text, "Old Town")
	require.Contains(t, text, "* Successfully verified 1 shopkeepers!")
}

func TestDashboard_Empty(t *testing.T) {
	p := restored(t, nil)

	var out strings.Builder
	require.NoError(t, view.Dashboard(&out, p.Snapshot()))
	require.Contains(t, out.String(), "All Caught Up!")
	require.Contains(t, out.String(), "No unverified shopkeepers at the moment.")
}

func TestLogin(t *testing.T) {
	var out strings.Builder
	require.NoError(t, view.Login(&out, "Login failed"))
	require.Contains(t, out.String(), "Admin Portal")
	require.Contains(t, out.String(), "! Login failed")
}
