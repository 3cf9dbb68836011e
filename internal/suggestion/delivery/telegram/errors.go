package telegram

import "errors"

var errNotAnImage = errors.New("telegram: document is not an image")
