// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/motype/pkg/common/concurrent"
	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/logutil"
	"github.com/matrixorigin/motype/pkg/vectorize/eq"
)

const (
	defaultMinRowsPerWorker = 4096

	ExecutorErrgroup = "errgroup"
	ExecutorAnts     = "ants"
)

// Config is the toml configuration of the motype tools.
type Config struct {
	// Log is the logger configuration
	Log logutil.LogConfig `toml:"log"`
	// Vectorize configures vectorized predicate evaluation
	Vectorize VectorizeConfig `toml:"vectorize"`
}

type VectorizeConfig struct {
	// Parallelism is the number of workers of a parallel evaluation. 0 means
	// runtime.NumCPU().
	Parallelism int `toml:"parallelism"`
	// MinRowsPerWorker is the smallest number of elements handed to one
	// worker. Shorter vectors use fewer workers.
	MinRowsPerWorker int `toml:"min-rows-per-worker"`
	// Executor is "errgroup" or "ants".
	Executor string `toml:"executor"`
	// Kernel selects the integer equality kernels: auto, pure or unroll.
	Kernel string `toml:"kernel"`
}

// NewConfig returns a Config with every default filled in.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.SetDefaultValues()
	return cfg
}

// LoadConfigFromFile decodes the toml file at path into cfg, fills the
// defaults of the fields the file leaves empty and validates the result.
// Unknown keys are rejected.
func LoadConfigFromFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return moerr.NewBadConfigNoCtx("decode %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return moerr.NewBadConfigNoCtx("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.SetDefaultValues()
	return cfg.Validate()
}

func (c *Config) SetDefaultValues() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Vectorize.MinRowsPerWorker == 0 {
		c.Vectorize.MinRowsPerWorker = defaultMinRowsPerWorker
	}
	if c.Vectorize.Executor == "" {
		c.Vectorize.Executor = ExecutorErrgroup
	}
	if c.Vectorize.Kernel == "" {
		c.Vectorize.Kernel = eq.KernelAuto
	}
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Vectorize.Validate()
}

// Apply installs the logger and the equality kernels described by c.
func (c *Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}
	logutil.SetupMOLogger(&c.Log)
	return eq.UseKernel(c.Vectorize.Kernel)
}

func (c *VectorizeConfig) Validate() error {
	if c.Parallelism < 0 {
		return moerr.NewBadConfigNoCtx("vectorize.parallelism must not be negative, got %d", c.Parallelism)
	}
	if c.MinRowsPerWorker < 0 {
		return moerr.NewBadConfigNoCtx("vectorize.min-rows-per-worker must not be negative, got %d", c.MinRowsPerWorker)
	}
	switch c.Executor {
	case ExecutorErrgroup, ExecutorAnts:
	default:
		return moerr.NewBadConfigNoCtx("vectorize.executor must be %s or %s, got %q", ExecutorErrgroup, ExecutorAnts, c.Executor)
	}
	switch c.Kernel {
	case eq.KernelAuto, eq.KernelPure, eq.KernelUnroll:
	default:
		return moerr.NewBadConfigNoCtx("vectorize.kernel must be auto, pure or unroll, got %q", c.Kernel)
	}
	return nil
}

// NewExecutor builds the executor for parallel evaluation. The returned
// func releases it and must be called once the executor is no longer used.
func (c *VectorizeConfig) NewExecutor() (concurrent.Executor, func(), error) {
	opt := concurrent.WithMinItemsPerThread(c.MinRowsPerWorker)
	switch c.Executor {
	case ExecutorAnts:
		exec, err := concurrent.NewPoolExecutor(c.Parallelism, opt)
		if err != nil {
			return nil, nil, err
		}
		return exec, exec.Release, nil
	case ExecutorErrgroup, "":
		return concurrent.NewThreadPoolExecutor(c.Parallelism, opt), func() {}, nil
	}
	return nil, nil, moerr.NewBadConfigNoCtx("unknown executor %q", c.Executor)
}
