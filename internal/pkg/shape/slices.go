// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

// Copy returns a new slice holding the elements of v, nil stays nil.
func Copy[E any](v []E) []E {
	if v == nil {
		return nil
	}
	out := make([]E, len(v))
	copy(out, v)
	return out
}

// Append adds v to dst, allocating dst on first use so that appending nothing to a null
// list yields an empty, non-null list.
func Append[E any](dst []E, v ...E) []E {
	if dst == nil {
		dst = make([]E, 0, len(v))
	}
	return append(dst, v...)
}

// CopyStrings returns a deep copy of v: both the list and the strings it points to.
func CopyStrings(v []*string) []*string {
	if v == nil {
		return nil
	}
	out := make([]*string, len(v))
	for i, s := range v {
		if s == nil {
			continue
		}
		c := *s
		out[i] = &c
	}
	return out
}

// AppendStrings adds v to dst as pointers, allocating dst on first use.
func AppendStrings(dst []*string, v ...string) []*string {
	if dst == nil {
		dst = make([]*string, 0, len(v))
	}
	for i := range v {
		s := v[i]
		dst = append(dst, &s)
	}
	return dst
}

// CopyMap returns a new map holding the entries of v, nil stays nil.
func CopyMap[K comparable, V any](v map[K]V) map[K]V {
	if v == nil {
		return nil
	}
	out := make(map[K]V, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
