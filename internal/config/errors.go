package config

import "github.com/pkg/errors"

var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}
