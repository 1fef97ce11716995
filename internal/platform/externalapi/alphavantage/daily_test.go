package alphavantage_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stock_market/internal/feature/dailyprices/domain/entity"
	"stock_market/internal/platform/externalapi/alphavantage"
	"stock_market/internal/shared/apierr"
)

func newDailyRepository(t *testing.T, payload string) *alphavantage.Repository {
	t.Helper()

	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(json.RawMessage(payload), nil).Times(1)
	return alphavantage.NewRepository(fetcher)
}

func TestRepository_DailySeries_Transpose(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, params url.Values) (json.RawMessage, error) {
			assert.Equal(t, url.Values{
				"function":   {"TIME_SERIES_DAILY"},
				"symbol":     {"IBM"},
				"outputsize": {"compact"},
				"datatype":   {"json"},
			}, params)
			return json.RawMessage(`{
				"Meta Data": {"2. Symbol": "IBM"},
				"Time Series (Daily)": {
					"2024-01-02": {"1. open": "10.0", "2. high": "12.0", "3. low": "9.0", "4. close": "11.0"}
				}
			}`), nil
		}).
		Times(1)

	series, err := alphavantage.NewRepository(fetcher).DailySeries(context.Background(), "IBM")

	require.NoError(t, err)
	assert.Equal(t, entity.DailySeries{
		Symbol: "IBM",
		Bars: []entity.DailyBar{
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Open: 10.0, High: 12.0, Low: 9.0, Close: 11.0},
		},
	}, series)
}

func TestRepository_DailySeries_PreservesProviderOrder(t *testing.T) {
	t.Parallel()

	repo := newDailyRepository(t, `{"Time Series (Daily)": {
		"2024-01-05": {"1. open": "5", "2. high": "5", "3. low": "5", "4. close": "5", "5. volume": "100"},
		"2024-01-02": {"1. open": "2", "2. high": "2", "3. low": "2", "4. close": "2", "5. volume": "100"},
		"2024-01-04": {"1. open": "4", "2. high": "4", "3. low": "4", "4. close": "4", "5. volume": "100"}
	}}`)

	series, err := repo.DailySeries(context.Background(), "IBM")

	require.NoError(t, err)
	require.Equal(t, 3, series.Len())
	var dates []string
	for _, b := range series.Bars {
		dates = append(dates, b.Date.Format(time.DateOnly))
	}
	// Non-trading days are absent and nothing is re-sorted.
	assert.Equal(t, []string{"2024-01-05", "2024-01-02", "2024-01-04"}, dates)
	assert.Equal(t, 4.0, series.Bars[2].Close)
}

func TestRepository_DailySeries_DateTimeKey(t *testing.T) {
	t.Parallel()

	repo := newDailyRepository(t, `{"Time Series (Daily)": {
		"2024-01-02 16:00:00": {"1. open": "1", "2. high": "2", "3. low": "0.5", "4. close": "1.5"}
	}}`)

	series, err := repo.DailySeries(context.Background(), "IBM")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 16, 0, 0, 0, time.UTC), series.Bars[0].Date)
}

func TestRepository_DailySeries_EmptySeries(t *testing.T) {
	t.Parallel()

	repo := newDailyRepository(t, `{"Time Series (Daily)": {}}`)

	series, err := repo.DailySeries(context.Background(), "IBM")

	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())
}

func TestRepository_DailySeries_SchemaMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     string
		errContains string
	}{
		{
			name:        "missing time series",
			payload:     `{"Meta Data": {}}`,
			errContains: `"Time Series (Daily)" not found`,
		},
		{
			name:        "invalid symbol reported by provider",
			payload:     `{"Error Message": "Invalid API call. Please retry or visit the documentation for TIME_SERIES_DAILY."}`,
			errContains: "Invalid API call",
		},
		{
			name:        "time series is a list",
			payload:     `{"Time Series (Daily)": []}`,
			errContains: "Time Series (Daily)",
		},
		{
			name:        "invalid date key",
			payload:     `{"Time Series (Daily)": {"yesterday": {"1. open": "1", "2. high": "1", "3. low": "1", "4. close": "1"}}}`,
			errContains: `parse date "yesterday"`,
		},
		{
			name:        "row is not an object",
			payload:     `{"Time Series (Daily)": {"2024-01-02": "10.0"}}`,
			errContains: "row 2024-01-02",
		},
		{
			name:        "missing close",
			payload:     `{"Time Series (Daily)": {"2024-01-02": {"1. open": "1", "2. high": "1", "3. low": "1"}}}`,
			errContains: `"4. close" not found`,
		},
		{
			name:        "invalid open",
			payload:     `{"Time Series (Daily)": {"2024-01-02": {"1. open": "abc", "2. high": "1", "3. low": "1", "4. close": "1"}}}`,
			errContains: "parse 1. open",
		},
		{
			name:        "invalid high",
			payload:     `{"Time Series (Daily)": {"2024-01-02": {"1. open": "1", "2. high": "xyz", "3. low": "1", "4. close": "1"}}}`,
			errContains: "parse 2. high",
		},
		{
			name:        "invalid low",
			payload:     `{"Time Series (Daily)": {"2024-01-02": {"1. open": "1", "2. high": "1", "3. low": "bad", "4. close": "1"}}}`,
			errContains: "parse 3. low",
		},
		{
			name:        "non-finite close",
			payload:     `{"Time Series (Daily)": {"2024-01-02": {"1. open": "1", "2. high": "1", "3. low": "1", "4. close": "NaN"}}}`,
			errContains: "parse 4. close",
		},
		{
			name:        "boolean value",
			payload:     `{"Time Series (Daily)": {"2024-01-02": {"1. open": true, "2. high": "1", "3. low": "1", "4. close": "1"}}}`,
			errContains: "unexpected type bool",
		},
		{
			name: "one bad row discards the whole series",
			payload: `{"Time Series (Daily)": {
				"2024-01-03": {"1. open": "1", "2. high": "1", "3. low": "1", "4. close": "1"},
				"2024-01-02": {"1. open": "1", "2. high": "1", "3. low": "1", "4. close": ""}
			}}`,
			errContains: "row 2024-01-02",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newDailyRepository(t, tt.payload)

			series, err := repo.DailySeries(context.Background(), "IBM")

			require.ErrorIs(t, err, apierr.ErrSchemaMismatch)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Equal(t, entity.DailySeries{}, series)
		})
	}
}

func TestRepository_DailySeries_UpstreamFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection refused", apierr.ErrTransport))

	series, err := alphavantage.NewRepository(fetcher).DailySeries(context.Background(), "IBM")

	require.ErrorIs(t, err, apierr.ErrUpstream)
	assert.ErrorIs(t, err, apierr.ErrTransport)
	assert.Equal(t, entity.DailySeries{}, series)
}
