package models

import (
	"errors"
)

var ErrNoOutfit = errors.New("no outfit available")
