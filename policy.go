// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrTooShort is returned when the password is below the minimum length.
	ErrTooShort = errors.New("password too short")
	// ErrTooLong is returned when the password exceeds the maximum length.
	ErrTooLong = errors.New("password too long")
	// ErrMissingUppercase is returned when an uppercase letter is required.
	ErrMissingUppercase = errors.New("missing uppercase letter")
	// ErrMissingLowercase is returned when a lowercase letter is required.
	ErrMissingLowercase = errors.New("missing lowercase letter")
	// ErrMissingNumber is returned when a digit is required.
	ErrMissingNumber = errors.New("missing number")
	// ErrMissingSpecial is returned when a special character is required.
	ErrMissingSpecial = errors.New("missing special character")
	// ErrTooWeak is returned when the strength score is below the minimum.
	ErrTooWeak = errors.New("password too weak")
)

// Policy lists the constraints a password must satisfy. Zero values
// disable the corresponding check.
type Policy struct {
	MinLength        int  `json:"min_length" yaml:"min_length" mapstructure:"min_length"`
	MaxLength        int  `json:"max_length" yaml:"max_length" mapstructure:"max_length"`
	RequireUppercase bool `json:"require_uppercase" yaml:"require_uppercase" mapstructure:"require_uppercase"`
	RequireLowercase bool `json:"require_lowercase" yaml:"require_lowercase" mapstructure:"require_lowercase"`
	RequireNumbers   bool `json:"require_numbers" yaml:"require_numbers" mapstructure:"require_numbers"`
	RequireSpecial   bool `json:"require_special" yaml:"require_special" mapstructure:"require_special"`
	MinScore         int  `json:"min_score" yaml:"min_score" mapstructure:"min_score"`
}

// ValidatePassword checks password against policy. It returns nil when
// every constraint holds, otherwise every violation joined together.
func ValidatePassword(password string, policy Policy) error {
	var (
		violations []error
		length     = utf8.RuneCountInString(password)
		comp       = compose(password)
	)

	if policy.MinLength > 0 && length < policy.MinLength {
		violations = append(violations, fmt.Errorf("%w: %d < %d", ErrTooShort, length, policy.MinLength))
	}
	if policy.MaxLength > 0 && length > policy.MaxLength {
		violations = append(violations, fmt.Errorf("%w: %d > %d", ErrTooLong, length, policy.MaxLength))
	}
	if policy.RequireUppercase && !comp.upper {
		violations = append(violations, ErrMissingUppercase)
	}
	if policy.RequireLowercase && !comp.lower {
		violations = append(violations, ErrMissingLowercase)
	}
	if policy.RequireNumbers && !comp.digit {
		violations = append(violations, ErrMissingNumber)
	}
	if policy.RequireSpecial && !comp.special {
		violations = append(violations, ErrMissingSpecial)
	}
	if policy.MinScore > 0 {
		if s := CalculateStrength(password); s.Score < policy.MinScore {
			violations = append(violations, fmt.Errorf("%w: score %d < %d", ErrTooWeak, s.Score, policy.MinScore))
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return &operationError{"ValidatePassword", errors.Join(violations...)}
}

// Violations splits the error returned by ValidatePassword into its
// individual violations.
func Violations(err error) []error {
	if err == nil {
		return nil
	}

	var opErr *operationError
	if errors.As(err, &opErr) {
		err = opErr.err
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
