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
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints the host report so CI logs show what machine ran the
// suite. Results do not depend on it.
func TestMain(m *testing.M) {
	fmt.Printf("=== go-sse2 host ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("SSE2_NO_SIMD=%q\n", os.Getenv("SSE2_NO_SIMD"))
	fmt.Printf("Host level: %s\n", HostName())
	fmt.Printf("====================\n\n")

	os.Exit(m.Run())
}
