// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

// PasswordOptions describes the password to compose.
type PasswordOptions struct {
	// Length is the exact number of characters produced.
	Length int `json:"length" yaml:"length" mapstructure:"length"`
	// Uppercase enables the A-Z class.
	Uppercase bool `json:"uppercase" yaml:"uppercase" mapstructure:"uppercase"`
	// Lowercase enables the a-z class.
	Lowercase bool `json:"lowercase" yaml:"lowercase" mapstructure:"lowercase"`
	// Numbers enables the 0-9 class.
	Numbers bool `json:"numbers" yaml:"numbers" mapstructure:"numbers"`
	// Special enables the punctuation class.
	Special bool `json:"special" yaml:"special" mapstructure:"special"`
	// Ambiguous keeps the confusable glyphs 0, O, 1, l and I.
	Ambiguous bool `json:"ambiguous" yaml:"ambiguous" mapstructure:"ambiguous"`
	// MinUppercase is the minimum count of uppercase characters.
	MinUppercase int `json:"min_uppercase" yaml:"min_uppercase" mapstructure:"min_uppercase"`
	// MinLowercase is the minimum count of lowercase characters.
	MinLowercase int `json:"min_lowercase" yaml:"min_lowercase" mapstructure:"min_lowercase"`
	// MinNumbers is the minimum count of digits.
	MinNumbers int `json:"min_numbers" yaml:"min_numbers" mapstructure:"min_numbers"`
	// MinSpecial is the minimum count of special characters.
	MinSpecial int `json:"min_special" yaml:"min_special" mapstructure:"min_special"`
}

// DefaultPasswordOptions returns a 16 character password with every class
// enabled, one of each required and confusable glyphs excluded.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:       16,
		Uppercase:    true,
		Lowercase:    true,
		Numbers:      true,
		Special:      true,
		Ambiguous:    false,
		MinUppercase: 1,
		MinLowercase: 1,
		MinNumbers:   1,
		MinSpecial:   1,
	}
}

// classRequirement pairs an enabled class with its minimum count.
type classRequirement struct {
	class   CharClass
	minimum int
}

func (o PasswordOptions) requirements() []classRequirement {
	var reqs []classRequirement
	if o.Uppercase {
		reqs = append(reqs, classRequirement{Uppercase, o.MinUppercase})
	}
	if o.Lowercase {
		reqs = append(reqs, classRequirement{Lowercase, o.MinLowercase})
	}
	if o.Numbers {
		reqs = append(reqs, classRequirement{Numbers, o.MinNumbers})
	}
	if o.Special {
		reqs = append(reqs, classRequirement{Special, o.MinSpecial})
	}
	return reqs
}

// Password composes a password of exactly opts.Length characters.
//
// Required characters are drawn from each enabled class's own alphabet, the
// remainder from the pooled alphabet, and the whole is shuffled. When the
// minimums exceed the length the shuffled result is truncated, so the
// per-class guarantee degrades instead of failing.
func (g *Generator) Password(opts PasswordOptions) (string, error) {
	if opts.Length <= 0 {
		return "", nil
	}

	var (
		pool     []rune
		required []rune
	)
	for _, req := range opts.requirements() {
		alphabet := []rune(req.class.Alphabet(opts.Ambiguous))
		pool = append(pool, alphabet...)

		for i := 0; i < req.minimum; i++ {
			r, err := g.pick(alphabet)
			if err != nil {
				return "", &operationError{"Password", err}
			}
			required = append(required, r)
		}
	}

	// No class selected, never fail on an empty pool.
	if len(pool) == 0 {
		pool = []rune(lowercaseUnambiguousAlphabet)
	}

	chars := required
	for i := len(required); i < opts.Length; i++ {
		r, err := g.pick(pool)
		if err != nil {
			return "", &operationError{"Password", err}
		}
		chars = append(chars, r)
	}

	if err := g.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	}); err != nil {
		return "", &operationError{"Password", err}
	}

	if len(chars) > opts.Length {
		chars = chars[:opts.Length]
	}

	return string(chars), nil
}

// GeneratePassword composes a password from crypto/rand. See Generator.Password.
func GeneratePassword(opts PasswordOptions) (string, error) {
	return defaultGenerator.Password(opts)
}
