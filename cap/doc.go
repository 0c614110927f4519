// Copyright 2026 The gocap Authors
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

// Package cap models the compact Java Card CAP container format: a set of
// twelve tagged, length-prefixed binary components stored as named entries
// in an archive, plus the flat IJC transport encoding of the same
// components.
//
// The format is defined by the Java Card Platform Virtual Machine
// Specification, v3.2, chapter 6.
//
// A CapFile is constructed once from an ArchiveSource and is immutable
// afterward; distinct instances can be shared freely across goroutines.
// SplitIJC is a stateless transform from a flat IJC stream back to named
// components.
package cap
