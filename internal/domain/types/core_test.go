package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shopadmin/internal/domain/types"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		zero bool
	}{
		{in: `"2024-01-01"`, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: `"2024-03-05T10:20:30Z"`, want: time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)},
		{in: `"2024-03-05T10:20:30.123Z"`, want: time.Date(2024, 3, 5, 10, 20, 30, 123000000, time.UTC)},
		{in: `"2024-01-01T10:00:00.000"`, want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{in: `"2024-01-01 10:00:00"`, want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{in: `1704067200000`, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: `null`, zero: true},
		{in: `""`, zero: true},
	}
	for _, tc := range cases {
		var ts types.Timestamp
		require.NoError(t, json.Unmarshal([]byte(tc.in), &ts), tc.in)
		if tc.zero {
			require.True(t, ts.IsZero(), tc.in)
			continue
		}
		require.True(t, tc.want.Equal(ts.Time), tc.in)
	}
}

func TestTimestamp_UnknownFormatKeptVerbatim(t *testing.T) {
	var ts types.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	require.True(t, ts.IsZero())
	require.Equal(t, "yesterday", ts.Raw)
	require.Equal(t, "yesterday", ts.Date())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	require.JSONEq(t, `"yesterday"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"when":true}`), &ts))
	require.Equal(t, `{"when":true}`, ts.Raw)
}

func TestTimestamp_Date(t *testing.T) {
	require.Equal(t, "-", types.Timestamp{}.Date())

	var ts types.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-15T12:00:00Z"`), &ts))
	require.Empty(t, ts.Raw)
	require.Equal(t, ts.Local().Format("2006-01-02"), ts.Date())
}

func TestShopkeeper_OddCreatedAtStillDecodes(t *testing.T) {
	var list []types.Shopkeeper
	body := `[{"id":"1","createdAt":"2024-01-01"},{"id":"2","createdAt":"last tuesday"}]`
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 2)
	require.Equal(t, "last tuesday", list[1].CreatedAt.Date())
}

func TestShopkeeper_MissingShopsIsEmpty(t *testing.T) {
	var sk types.Shopkeeper
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","name":"A","username":"a","phone":"555","createdAt":"2024-01-01"}`), &sk))
	require.NotNil(t, sk.Shops)
	require.Empty(t, sk.Shops)
	require.Equal(t, types.ShopkeeperID("1"), sk.ID)
	require.Equal(t, 0, types.CountShops([]types.Shopkeeper{sk}))
}

func TestCountShops(t *testing.T) {
	list := []types.Shopkeeper{
		{Shops: []types.Shop{{ID: "a"}, {ID: "b"}}},
		{Shops: []types.Shop{}},
		{Shops: []types.Shop{{ID: "c"}}},
	}
	require.Equal(t, 3, types.CountShops(list))
}

func TestPhase_String(t *testing.T) {
	require.Equal(t, "anonymous", types.Anonymous.String())
	require.Equal(t, "authenticating", types.Authenticating.String())
	require.Equal(t, "authenticated", types.Authenticated.String())
}
