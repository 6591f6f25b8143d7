// Copyright 2015 Google Inc.
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

package metadesk

// hashString computes Node.StringHash.  A downstream associative map
// keyed on Node strings is explicitly an external collaborator
// (spec.md §1), so only the hash value itself - not a map built on it -
// lives in this package.  FNV-1a is used because it is the standard
// library's own byte-string hash (hash/fnv) and needs no third-party
// dependency; nothing in the example pack's domain stack offers a more
// specialized string hash that this single scalar field would justify
// pulling in.
func hashString(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
