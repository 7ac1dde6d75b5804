package dashboard

import "errors"

var ErrInvalidDirection = errors.New("Direction must be 'best' or 'worst'")
