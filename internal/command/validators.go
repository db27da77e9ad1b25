// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/staranto/tldrctl/internal/output"
	"github.com/staranto/tldrctl/internal/platform"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func PlatformValidator(value any) error {
	if _, err := platform.Parse(value.(string)); err != nil {
		return fmt.Errorf("must be one of [linux osx sunos]: %w", err)
	}
	return nil
}

var completionShells = []string{"bash", "zsh"}

func CompletionValidator(value any) error {
	if !slices.Contains(completionShells, value.(string)) {
		return fmt.Errorf("must be one of %v", completionShells)
	}
	return nil
}
