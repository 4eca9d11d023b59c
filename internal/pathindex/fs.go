// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pathindex

import "github.com/spf13/afero"

// FsFactory returns the filesystem Build reads directories from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
