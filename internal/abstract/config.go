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
	"io"

	"github.com/sirupsen/logrus"
)

// Config is used to configure the tree. The minimum degree and comparison
// function are fixed for the lifetime of the tree and shared by every node
// it creates.
type Config[K any] struct {

	// Degree is the minimum degree t. Non-root nodes hold between t-1 and
	// 2t-1 keys. It must be at least 2.
	Degree int

	// Compare returns a negative number, zero or a positive number when the
	// first key sorts before, equal to or after the second.
	Compare func(K, K) int

	// Updater, if set, observes insertions, splits and root growth.
	Updater Updater[K]

	// Logger receives debug events about root growth. Logs are discarded
	// when it is nil.
	Logger logrus.FieldLogger
}

// Validate reports whether the configuration can be used to build a tree.
func (c *Config[K]) Validate() error {
	if c.Degree < 2 {
		return newConfigurationError(c.Degree, ErrInvalidDegree)
	}
	if c.Compare == nil {
		return newConfigurationError(c.Degree, ErrNilCompare)
	}
	return nil
}

// MaxKeys returns the capacity of a node, 2t-1.
func (c *Config[K]) MaxKeys() int { return 2*c.Degree - 1 }

// MinKeys returns the lower bound on keys held by a non-root node, t-1.
func (c *Config[K]) MinKeys() int { return c.Degree - 1 }

type config[K any] struct {
	Config[K]
	maxKeys int
	np      *nodePool[K]
}

func makeConfig[K any](c Config[K]) (config[K], error) {
	if err := c.Validate(); err != nil {
		return config[K]{}, err
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = l
	}
	return config[K]{
		Config:  c,
		maxKeys: c.MaxKeys(),
		np:      newNodePool[K](c.MaxKeys()),
	}, nil
}

func (c *config[K]) update(n *node[K], md UpdateMeta[K]) {
	if c.Updater != nil {
		c.Updater.Update(n, md)
	}
}
