package settings

import "errors"

var ErrSettingsNotFound = errors.New("system settings not found")
