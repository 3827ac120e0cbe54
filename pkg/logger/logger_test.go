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

package logger

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	l := DefaultLogger()
	require.NotNil(t, l)

	oldLevel := l.GetLevel()
	defer l.SetLevel(oldLevel)

	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, l.GetLevel())
	assert.Equal(t, log.DebugLevel, log.StandardLogger().GetLevel())
}
