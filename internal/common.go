// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal holds build switches shared by the packages of this module.
//
// Building with the gofuzz tag enables Debug, which makes packages verify
// their own output and panic on any violation.
package internal
