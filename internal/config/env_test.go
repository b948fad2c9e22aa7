package config

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/diesir"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Prec: 64, MaxDice: 10000}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DIESIR_PREC", "128")
	t.Setenv("DIESIR_SEED", "42")
	t.Setenv("DIESIR_MAX_DICE", "0")
	t.Setenv("DIESIR_UPPERCASE_DIE", "true")
	t.Setenv("DIESIR_ECHO", "true")
	t.Setenv("DIESIR_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Prec: 128, Seed: 42, MaxDice: 0, UppercaseDie: true, Echo: true, JSON: true}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("DIESIR_SEED", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative seed")
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("DIESIR_MAX_DICE", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestOptionsSeed(t *testing.T) {
	cfg := Config{Prec: 64, Seed: 7}
	a, err := diesir.New(cfg.Options()...).Roll("10d20")
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	b, err := diesir.New(cfg.Options()...).Roll("10d20")
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	for i := range a.Rolls {
		if a.Rolls[i] != b.Rolls[i] {
			t.Fatalf("seeded rolls differ at %d: %+v vs %+v", i, a.Rolls, b.Rolls)
		}
	}
}

func TestOptionsUppercaseDie(t *testing.T) {
	if _, err := diesir.New(Config{Prec: 64}.Options()...).Roll("2D6"); !errors.Is(err, diesir.ErrInvalidCharacter) {
		t.Fatalf("expected 2D6 to be rejected by default, got %v", err)
	}
	if _, err := diesir.New(Config{Prec: 64, UppercaseDie: true}.Options()...).Roll("2D6"); err != nil {
		t.Fatalf("expected 2D6 to roll, got %v", err)
	}
}

func TestOptionsMaxDice(t *testing.T) {
	r := diesir.New(Config{Prec: 64, MaxDice: 5}.Options()...)
	if _, err := r.Roll("5d6"); err != nil {
		t.Fatalf("5d6: %v", err)
	}
	if _, err := r.Roll("6d6"); !errors.Is(err, diesir.ErrTooManyDice) {
		t.Fatalf("expected 6d6 to exceed the limit, got %v", err)
	}
	if _, err := diesir.New(Config{Prec: 64}.Options()...).Roll("20000d2"); err != nil {
		t.Fatalf("expected zero MaxDice to be unlimited, got %v", err)
	}
}

func TestOptionsPrec(t *testing.T) {
	o, err := diesir.New(Config{Prec: 256}.Options()...).Roll("2^(1/2)")
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if math.Abs(o.Total-math.Sqrt2) > 1e-15 {
		t.Fatalf("expected sqrt 2, got %g", o.Total)
	}
}
