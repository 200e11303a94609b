// SPDX-License-Identifier: EPL-2.0

package preview

import "errors"

var (
	ErrNothingLoaded     = errors.New("no clip loaded")
	ErrPlayerClosed      = errors.New("player is closed")
	ErrUnsupportedFormat = errors.New("unsupported clip format")
	ErrDeviceFormat      = errors.New("audio device already opened with another format")
)
