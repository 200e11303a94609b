// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrNoInputs          = errors.New("no input files selected")
	ErrOutputDirMissing  = errors.New("output directory does not exist")
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrEncodeFailed      = errors.New("ogg encoding failed")
	ErrNoSelection       = errors.New("selected file is not in the list")
)
