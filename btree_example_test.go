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

package btree_test

import (
	"fmt"

	btree "github.com/lMiaul/Hola-Jesus"
)

func ExampleBTree() {
	t := btree.MustNew[int](2)
	for k := 1; k <= 5; k++ {
		t.Insert(k)
	}
	fmt.Println(t.Height(), t)
	fmt.Println(t.Traverse())

	// Output:
	// 2 (1)2(3,4,5)
	// [1 2 3 4 5]
}

func ExampleBTree_MakeIter() {
	t := btree.MustNew[string](3)
	t.Insert("foo")
	t.Insert("bar")
	t.Insert("foo")
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Cur())
	}

	// Output:
	// bar
	// foo
	// foo
}
