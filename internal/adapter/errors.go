package adapter

import "errors"

// ErrVendor is returned when the vendor API rejects a call or cannot be
// reached. The original cause is wrapped; callers branch with errors.Is.
var ErrVendor = errors.New("vendor request failed")
