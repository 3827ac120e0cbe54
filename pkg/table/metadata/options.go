// Copyright 2024 The BenchExec authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import "github.com/sim642/benchexec/pkg/logger"

type Option func(*Options)

type Options struct {
	Logger logger.Logger // used to report structural anomalies; default: logger.DefaultLogger()
}

func GetDefault() *Options {
	return &Options{
		Logger: logger.DefaultLogger(),
	}
}

// WithLogger sets the logger used to report structural anomalies
func WithLogger(l logger.Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}
