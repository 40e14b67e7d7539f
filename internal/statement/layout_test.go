package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/mkowalik/twrpulse/internal/domain/models"
)

func TestMapHeader(t *testing.T) {
	cases := []struct {
		name string
		row  []string
		want Layout
		ok   bool
	}{
		{
			name: "broker default order",
			row:  []string{"Trades", "Header", "DataDiscriminator", "Asset Category", "Currency", "Account", "Symbol", "Date/Time", "Quantity", "T. Price"},
			want: Layout{Category: 0, Ticker: 6, Timestamp: 7, Quantity: 8, Price: 9},
			ok:   true,
		},
		{
			name: "reordered columns",
			row:  []string{"Trades", "Quantity", "Symbol", "T. Price", "Date/Time"},
			want: Layout{Category: 0, Ticker: 2, Timestamp: 4, Quantity: 1, Price: 3},
			ok:   true,
		},
		{
			name: "not a header",
			row:  []string{"Trades", "Data", "Order", "Stocks", "USD", "U123", "FB", "2033-01-01, 00:00:00", "50", "130"},
			ok:   false,
		},
		{
			name: "partial header rejected",
			row:  []string{"Trades", "Symbol", "Quantity"},
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MapHeader(tc.row)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("layout %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestClassify_TableDriven(t *testing.T) {
	l := DefaultLayout()
	trade := func(ticker, ts, qty, price string) []string {
		return []string{"Trades", "Data", "Order", "Stocks", "USD", "U123", ticker, ts, qty, price}
	}

	cases := []struct {
		name    string
		row     []string
		want    models.Row
		wantErr string
	}{
		{
			name: "buy trade",
			row:  trade("FB", "2033-01-01, 00:00:00", "50", "130"),
			want: models.Row{Kind: models.KindTrade, Trade: models.TradeRow{
				Category:  "Trades",
				Ticker:    "FB",
				TradeDate: time.Date(2033, 1, 1, 0, 0, 0, 0, time.UTC),
				Quantity:  50,
				Price:     130,
			}},
		},
		{
			name: "timestamp without space after comma",
			row:  trade("FB", "2033-02-01,00:00:00", "100", "200"),
			want: models.Row{Kind: models.KindTrade, Trade: models.TradeRow{
				Category:  "Trades",
				Ticker:    "FB",
				TradeDate: time.Date(2033, 2, 1, 0, 0, 0, 0, time.UTC),
				Quantity:  100,
				Price:     200,
			}},
		},
		{
			name: "sell keeps negative quantity",
			row:  trade("FB", "2033-02-10, 09:30:00", "-20", "210.5"),
			want: models.Row{Kind: models.KindTrade, Trade: models.TradeRow{
				Category:  "Trades",
				Ticker:    "FB",
				TradeDate: time.Date(2033, 2, 10, 0, 0, 0, 0, time.UTC),
				Quantity:  -20,
				Price:     210.5,
			}},
		},
		{
			name: "empty timestamp is a boundary",
			row:  []string{"Trades", "SubTotal", "", "Stocks", "USD", "U123", "FB", "", "", ""},
			want: models.Row{Kind: models.KindGroupBoundary, Boundary: models.GroupBoundary{Ticker: "FB"}},
		},
		{
			name:    "malformed timestamp",
			row:     trade("FB", "01/02/2033 00:00", "50", "130"),
			wantErr: "invalid timestamp",
		},
		{
			name:    "malformed quantity",
			row:     trade("FB", "2033-01-01, 00:00:00", "fifty", "130"),
			wantErr: "invalid quantity",
		},
		{
			name:    "malformed price",
			row:     trade("FB", "2033-01-01, 00:00:00", "50", "$130"),
			wantErr: "invalid price",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.row, l)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err=%v, want containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Kind != tc.want.Kind {
				t.Fatalf("kind=%v, want %v", got.Kind, tc.want.Kind)
			}
			if got.Kind == models.KindTrade && got.Trade != tc.want.Trade {
				t.Fatalf("trade %+v, want %+v", got.Trade, tc.want.Trade)
			}
			if got.Kind == models.KindGroupBoundary && got.Boundary != tc.want.Boundary {
				t.Fatalf("boundary %+v, want %+v", got.Boundary, tc.want.Boundary)
			}
		})
	}
}

func TestReadTable_VariableWidth(t *testing.T) {
	in := "Statement,Header\nTrades,Data,Order,Stocks,USD,U123,FB,\"2033-01-01, 00:00:00\",50,130\nTotal\n"
	rows, err := ReadTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows=%d, want 3", len(rows))
	}
	if got := Cell(rows[1], 7); got != "2033-01-01, 00:00:00" {
		t.Fatalf("timestamp cell %q", got)
	}
}
