// Copyright 2025 go-sse2 Authors
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

package sse2

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "scalar", LevelScalar.String())
	assert.Equal(t, "sse2", LevelSSE2.String())
	assert.Equal(t, "neon", LevelNEON.String())
	assert.Equal(t, "unknown", Level(99).String())
	assert.Equal(t, HostLevel().String(), HostName())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("SSE2_NO_SIMD", tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
			if tt.want {
				assert.Equal(t, LevelScalar, detectHost())
			}
		})
	}
}

func TestDetectHost(t *testing.T) {
	t.Setenv("SSE2_NO_SIMD", "")
	switch {
	case runtime.GOARCH == "amd64":
		assert.Equal(t, LevelSSE2, detectHost())
	case runtime.GOARCH == "arm64" && runtime.GOOS == "linux":
		assert.Equal(t, LevelNEON, detectHost())
	}
}
