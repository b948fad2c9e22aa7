package diesir

// Option configures a Roller.
type Option interface {
	option(settings) settings
}

// settings collects options. The zero value is the default configuration.
type settings struct {
	// prec is the precision of exponentiation in bits. Zero means 64.
	prec uint
	// rand draws dice. Nil means CryptoRand.
	rand Rand
	// max is the largest number of dice a single term may roll. Zero means
	// unlimited.
	max int64
	// upper enables D as a die marker alongside d.
	upper bool
}

type (
	precopt  uint
	randopt  struct{ r Rand }
	maxopt   int64
	upperopt struct{}
)

// Prec sets the precision in bits to which exponentiation is computed before
// rounding to float64. Zero selects the default of 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

func (o precopt) option(s settings) settings {
	s.prec = uint(o)
	return s
}

// WithRand sets the source of die rolls. A nil Rand selects CryptoRand.
func WithRand(r Rand) Option {
	return randopt{r}
}

func (o randopt) option(s settings) settings {
	s.rand = o.r
	return s
}

// Seed makes rolls reproducible. It is the same as WithRand(SeededRand(seed)).
func Seed(seed uint64) Option {
	return randopt{SeededRand(seed)}
}

// MaxDice limits the number of dice a single die term may roll. A term asking
// for more fails with ErrTooManyDice before any die is drawn. Zero or a
// negative value removes the limit.
func MaxDice(n int64) Option {
	return maxopt(n)
}

func (o maxopt) option(s settings) settings {
	s.max = max(int64(o), 0)
	return s
}

// UppercaseDie accepts D as a die marker in addition to d. By default only
// lowercase d is recognized and D is an invalid character.
func UppercaseDie() Option {
	return upperopt{}
}

func (upperopt) option(s settings) settings {
	s.upper = true
	return s
}

// settle applies options in order to the default settings.
func settle(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		s = opt.option(s)
	}
	if s.prec == 0 {
		s.prec = 64
	}
	return s
}
