// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/netcfg-grep/netcfg-grep/internal/confparse"
	"github.com/netcfg-grep/netcfg-grep/internal/output"
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

func OutputValidator(value any) error {
	for _, v := range output.Formats {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", output.Formats)
}

// DialectValidator accepts an empty value (no override) or a known dialect.
func DialectValidator(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := confparse.LookupDialect(s); !ok {
		return fmt.Errorf("must be one of %v", confparse.DialectNames())
	}
	return nil
}
