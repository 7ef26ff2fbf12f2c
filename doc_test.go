package money_test

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pushcoin/money"
	"github.com/shopspring/decimal"
)

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustParse("USD", "10.00", "half-even")
	taxRate := decimal.RequireFromString("0.065")

	one := decimal.New(1, 0)
	priceBeforeTax, err := priceAfterTax.Div(one.Add(taxRate))
	if err != nil {
		panic(err)
	}
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		panic(err)
	}

	fmt.Println(priceBeforeTax)
	fmt.Println(taxAmount)
	// Output:
	// 9.39 $
	// 0.61 $
}

// In this example, a bill is split evenly three ways, and the remainder
// that cannot be distributed is recovered exactly.
func Example_billSplit() {
	total := money.MustParse("USD", "100.00", "down")

	share, err := total.DivInt(3)
	if err != nil {
		panic(err)
	}
	remainder, err := total.Sub(share.MulInt(3))
	if err != nil {
		panic(err)
	}

	fmt.Println(share)
	fmt.Println(remainder)
	// Output:
	// 33.33 $
	// 0.01 $
}

func ExampleNew() {
	d := decimal.New(1299, -2)
	m, err := money.New(d, money.USD, money.RoundHalfEven)
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: 12.99 $
}

func ExampleParse() {
	m, err := money.Parse("EUR", "9.99", "half-even")
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: 9.99 €
}

func ExampleParseCurr() {
	c, err := money.ParseCurr("usd")
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: USD
}

func ExampleCurrency_Scale() {
	fmt.Println(money.USD.Scale())
	fmt.Println(money.JPY.Scale())
	fmt.Println(money.OMR.Scale())
	// Output:
	// 2
	// 0
	// 3
}

func ExampleMoney_Add() {
	a := money.MustParse("USD", "10.00", "half-even")
	b := money.MustParse("USD", "2.50", "half-even")
	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: 12.50 $
}

func ExampleMoney_Mul() {
	factor := decimal.RequireFromString("0.5")
	a := money.MustParse("USD", "1.05", "half-even")
	b := money.MustParse("USD", "1.05", "half-up")
	fmt.Println(a.Mul(factor))
	fmt.Println(b.Mul(factor))
	// Output:
	// 0.52 $
	// 0.53 $
}

func ExampleMoney_Div() {
	divisor := decimal.New(3, 0)
	a := money.MustParse("USD", "10.00", "half-even")
	b := money.MustParse("USD", "10.00", "ceiling")
	q, err := a.Div(divisor)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	q, err = b.Div(divisor)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output:
	// 3.33 $
	// 3.34 $
}

func ExampleSum() {
	moneys := []money.Money{
		money.MustParse("EUR", "1.10", "half-even"),
		money.MustParse("EUR", "2.20", "half-even"),
	}
	total, err := money.Sum(moneys, money.EUR, money.RoundHalfEven)
	if err != nil {
		panic(err)
	}
	fmt.Println(total)
	// Output: 3.30 €
}

func ExampleMoney_Equal() {
	a := money.MustParse("USD", "10", "half-even")
	b := money.MustParse("USD", "10.00", "half-even")
	fmt.Println(a.Equal(b))
	eq, err := a.Eq(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(eq)
	// Output:
	// false
	// true
}

func ExampleMoney_CmpTotal() {
	moneys := []money.Money{
		money.MustParse("USD", "10.00", "half-even"),
		money.MustParse("EUR", "2.50", "half-even"),
		money.MustParse("JPY", "5", "half-even"),
		money.MustParse("EUR", "10.00", "half-even"),
	}
	sort.Slice(moneys, func(i, j int) bool {
		return moneys[i].CmpTotal(moneys[j]) < 0
	})
	for _, m := range moneys {
		fmt.Println(m)
	}
	// Output:
	// 2.50 €
	// 5 ¥
	// 10.00 €
	// 10.00 $
}

func ExampleNewDefaults() {
	defaults := money.NewDefaults(money.EUR, money.RoundHalfEven)
	m, err := defaults.New(decimal.New(995, -2))
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: 9.95 €
}

func ExampleMoney_MarshalJSON() {
	m := money.MustParse("USD", "10.00", "half-even")
	data, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"amount":"10.00","currency":"USD","rounding":"half-even"}
}

func ExampleMoney_UnmarshalJSON() {
	var m money.Money
	err := json.Unmarshal([]byte(`{"amount":"5.67","currency":"USD","rounding":"floor"}`), &m)
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: 5.67 $
}

func ExampleMoney_Format() {
	m := money.MustParse("USD", "5.67", "half-even")
	fmt.Printf("%s\n", m)
	fmt.Printf("%q\n", m)
	fmt.Printf("%f\n", m)
	fmt.Printf("%.4f\n", m)
	fmt.Printf("%c\n", m)
	// Output:
	// 5.67 $
	// "5.67 $"
	// 5.67
	// 5.6700
	// USD
}
