package money

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"392", JPY},
			{"jpy", JPY},
			{"JPY", JPY},
			{"840", USD},
			{"usd", USD},
			{"USD", USD},
			{"512", OMR},
			{"omr", OMR},
			{"OMR", OMR},
			{"978", EUR},
			{"eur", EUR},
			{"EUR", EUR},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "AU$", "BTC", "UsD",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int32
	}{
		{XXX, 0},
		{XTS, 0},
		{JPY, 0},
		{KRW, 0},
		{VND, 0},
		{AED, 2},
		{EUR, 2},
		{USD, 2},
		{BHD, 3},
		{KWD, 3},
		{OMR, 3},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Codes(t *testing.T) {
	tests := []struct {
		curr      Currency
		code, num string
	}{
		{XXX, "XXX", "999"},
		{USD, "USD", "840"},
		{EUR, "EUR", "978"},
		{JPY, "JPY", "392"},
		{OMR, "OMR", "512"},
	}
	for _, tt := range tests {
		if got := tt.curr.Code(); got != tt.code {
			t.Errorf("%v.Code() = %q, want %q", tt.curr, got, tt.code)
		}
		if got := tt.curr.Num(); got != tt.num {
			t.Errorf("%v.Num() = %q, want %q", tt.curr, got, tt.num)
		}
	}
}

func TestCurrency_Symbol(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "¤"},
		{USD, "$"},
		{EUR, "€"},
		{GBP, "£"},
		{JPY, "¥"},
	}
	for _, tt := range tests {
		if got := tt.curr.Symbol(); got != tt.want {
			t.Errorf("%v.Symbol() = %q, want %q", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Lookups(t *testing.T) {
	// Every currency must round-trip through all three parseable spellings.
	for c := XXX; c <= ZAR; c++ {
		for _, code := range []string{c.Code(), c.Num()} {
			got, err := ParseCurr(code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", code, err)
				continue
			}
			if got != c {
				t.Errorf("ParseCurr(%q) = %v, want %v", code, got, c)
			}
		}
		if c.Symbol() == "" {
			t.Errorf("%v.Symbol() is empty", c)
		}
		switch c.Scale() {
		case 0, 2, 3:
		default:
			t.Errorf("%v.Scale() = %v, want 0, 2, or 3", c, c.Scale())
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr Currency
			want string
		}{
			{USD, `"USD"`},
			{XXX, `"XXX"`},
		}
		for _, tt := range tests {
			data, err := json.Marshal(tt.curr)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", tt.curr, err)
				continue
			}
			if string(data) != tt.want {
				t.Errorf("json.Marshal(%v) = %s, want %s", tt.curr, data, tt.want)
			}
			var got Currency
			if err := json.Unmarshal(data, &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
				continue
			}
			if got != tt.curr {
				t.Errorf("round trip of %v = %v", tt.curr, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte(`"UUU"`), &c); err == nil {
			t.Errorf("json.Unmarshal(\"UUU\") did not fail")
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	data, err := USD.MarshalText()
	if err != nil {
		t.Fatalf("USD.MarshalText() failed: %v", err)
	}
	if string(data) != "USD" {
		t.Errorf("USD.MarshalText() = %q, want %q", data, "USD")
	}
	var c Currency
	if err := c.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", data, err)
	}
	if c != USD {
		t.Errorf("UnmarshalText(%q) = %v, want USD", data, c)
	}
	if err := c.UnmarshalText([]byte("UUU")); err == nil {
		t.Errorf("UnmarshalText(\"UUU\") did not fail")
	}
}

func TestCurrency_Binary(t *testing.T) {
	data, err := EUR.MarshalBinary()
	if err != nil {
		t.Fatalf("EUR.MarshalBinary() failed: %v", err)
	}
	var c Currency
	if err := c.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary(%q) failed: %v", data, err)
	}
	if c != EUR {
		t.Errorf("UnmarshalBinary(%q) = %v, want EUR", data, c)
	}
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []any{"USD", []byte("USD")}
		for _, tt := range tests {
			var got Currency
			if err := got.Scan(tt); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt, err)
				continue
			}
			if got != USD {
				t.Errorf("Scan(%v) = %v, want USD", tt, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 840, 84.0, "UUU"}
		for _, tt := range tests {
			var got Currency
			if err := got.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestCurrency_Value(t *testing.T) {
	got, err := USD.Value()
	if err != nil {
		t.Fatalf("USD.Value() failed: %v", err)
	}
	if got != "USD" {
		t.Errorf("USD.Value() = %v, want %q", got, "USD")
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		format, want string
	}{
		{"%s", "USD"},
		{"%v", "USD"},
		{"%c", "USD"},
		{"%q", "\"USD\""},
		{"%6s", "   USD"},
		{"%-6s", "USD   "},
		{"%d", "%!d(money.Currency=USD)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, USD); got != tt.want {
			t.Errorf("Sprintf(%q, USD) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestNullCurrency_Scan(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		var n NullCurrency
		if err := n.Scan(nil); err != nil {
			t.Fatalf("Scan(nil) failed: %v", err)
		}
		if n.Valid {
			t.Errorf("Scan(nil) = %v, want invalid", n)
		}
	})

	t.Run("value", func(t *testing.T) {
		var n NullCurrency
		if err := n.Scan("EUR"); err != nil {
			t.Fatalf("Scan(\"EUR\") failed: %v", err)
		}
		if !n.Valid || n.Currency != EUR {
			t.Errorf("Scan(\"EUR\") = %v, want valid EUR", n)
		}
	})
}

func TestNullCurrency_JSON(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		var n NullCurrency
		data, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("json.Marshal(%v) failed: %v", n, err)
		}
		if string(data) != "null" {
			t.Errorf("json.Marshal(%v) = %s, want null", n, data)
		}
		var got NullCurrency
		if err := json.Unmarshal([]byte("null"), &got); err != nil {
			t.Fatalf("json.Unmarshal(null) failed: %v", err)
		}
		if got.Valid {
			t.Errorf("json.Unmarshal(null) = %v, want invalid", got)
		}
	})

	t.Run("value", func(t *testing.T) {
		n := NullCurrency{Currency: JPY, Valid: true}
		data, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("json.Marshal(%v) failed: %v", n, err)
		}
		if string(data) != `"JPY"` {
			t.Errorf("json.Marshal(%v) = %s, want \"JPY\"", n, data)
		}
		var got NullCurrency
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
		}
		if got != n {
			t.Errorf("round trip of %v = %v", n, got)
		}
	})
}
