package model

import "errors"

var ErrParse = errors.New("malformed input")
var ErrInvalidDate = errors.New("no such calendar date")
