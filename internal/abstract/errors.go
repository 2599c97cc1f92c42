// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDegree is the cause of a ConfigurationError raised for a
	// minimum degree below 2.
	ErrInvalidDegree = errors.New("minimum degree must be at least 2")

	// ErrNilCompare is the cause of a ConfigurationError raised when no
	// comparison function was supplied.
	ErrNilCompare = errors.New("comparison function must not be nil")

	// ErrInvariant is the cause of every error returned by Map.Verify.
	ErrInvariant = errors.New("b-tree invariant violated")
)

// ConfigurationError is returned when a tree is constructed with settings
// that would break its capacity bounds. A tree is never built from an
// invalid configuration.
type ConfigurationError struct {
	Degree int
	cause  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("btree: invalid configuration (degree %d): %v", e.Degree, e.cause)
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *ConfigurationError) Cause() error { return e.cause }

func (e *ConfigurationError) Unwrap() error { return e.cause }

func newConfigurationError(degree int, cause error) error {
	return errors.WithStack(&ConfigurationError{Degree: degree, cause: cause})
}
