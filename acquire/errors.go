package acquire

import "errors"

var (
	errNilSession = errors.New("acquire: session must not be nil")
	errNilSource  = errors.New("acquire: source must not be nil")
)
