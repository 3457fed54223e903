package intake

import "errors"

var ErrOrderAlreadyRegistered = errors.New("order already registered")
