// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConfigError reports a fatal configuration problem: a missing input source,
// a missing output path, or an input file without the required topic column.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
