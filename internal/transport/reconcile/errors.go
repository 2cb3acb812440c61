package reconcile

import "errors"

var ErrNoBills = errors.New("no bills to reconcile")
