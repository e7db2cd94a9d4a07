package menu

import "errors"

var ErrInvalidPrice = errors.New("stored price is not a valid amount")
