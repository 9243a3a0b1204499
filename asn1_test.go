// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"fmt"
	"testing"
)

func ExampleTag_String() {
	t1 := Tag{ClassApplication, 17}
	t2 := ContextSpecific(8)
	t3 := Universal(TagInteger)
	fmt.Println(t1.String())
	fmt.Println(t2.String())
	fmt.Println(t3.String())
	// Output:
	// [APPLICATION 17]
	// [8]
	// [UNIVERSAL 2]
}

func TestClass_String(t *testing.T) {
	tests := map[Class]string{
		ClassUniversal:       "Universal",
		ClassApplication:     "Application",
		ClassContextSpecific: "ContextSpecific",
		ClassPrivate:         "Private",
		Class(7):             "Class(7)",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Class.String() = %q, want %q", got, want)
		}
	}
}
