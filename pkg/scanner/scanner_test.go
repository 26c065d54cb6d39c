package scanner

import (
	"errors"
	"testing"
)

func TestParseResponseObject(t *testing.T) {
	body := []byte(`{"cardName":"Charizard VMAX","updatedAt":"2026-03-15","tcgplayer":{"marketPrice":84.5}}`)

	card, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.CardName != "Charizard VMAX" {
		t.Errorf("expected card name, got %q", card.CardName)
	}
	if card.TCGPlayer == nil || card.TCGPlayer.MarketPrice != 84.5 {
		t.Errorf("expected market price 84.5, got %+v", card.TCGPlayer)
	}
}

func TestParseResponseUnwrapsArray(t *testing.T) {
	body := []byte(`[{"cardName":"Pikachu","tcgplayer":{"marketPrice":2.5}}]`)

	card, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.CardName != "Pikachu" {
		t.Errorf("expected Pikachu, got %q", card.CardName)
	}
}

func TestParseResponseEmptyArrayNotRecognized(t *testing.T) {
	_, err := ParseResponse([]byte(`[]`))
	if !errors.Is(err, ErrNotRecognized) {
		t.Errorf("expected ErrNotRecognized, got %v", err)
	}
}

func TestParseResponseMissingFieldsNotRecognized(t *testing.T) {
	cases := []string{
		`{"tcgplayer":{"marketPrice":1}}`,               // no cardName
		`{"cardName":"Mew"}`,                            // no tcgplayer
		`{"cardName":"","tcgplayer":{"marketPrice":1}}`, // empty cardName
	}

	for _, body := range cases {
		if _, err := ParseResponse([]byte(body)); !errors.Is(err, ErrNotRecognized) {
			t.Errorf("ParseResponse(%s): expected ErrNotRecognized, got %v", body, err)
		}
	}
}

func TestParseResponseInvalidJSON(t *testing.T) {
	if _, err := ParseResponse([]byte(`not json`)); err == nil {
		t.Error("expected an error for invalid JSON")
	}
	if _, err := ParseResponse(nil); err == nil {
		t.Error("expected an error for an empty body")
	}
}

func TestParseResponseGradedData(t *testing.T) {
	body := []byte(`{"cardName":"Umbreon VMAX","tcgplayer":{"marketPrice":450},"ebayGraded":{"totalFound":12,"averagePrice":812.3,"recentSales":[{"price":800,"date":"2026-03-01","title":"PSA 10","url":"https://example.com"}]}}`)

	card, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.EBay == nil || card.EBay.AveragePrice == nil || *card.EBay.AveragePrice != 812.3 {
		t.Errorf("expected graded average 812.3, got %+v", card.EBay)
	}
	if len(card.EBay.RecentSales) != 1 {
		t.Errorf("expected one recent sale, got %d", len(card.EBay.RecentSales))
	}
}
